package illustrate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"guidegen/core/config"
	llmmocks "guidegen/core/llm/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.ImageConfig
		wantName string
		wantErr  bool
	}{
		{
			name:     "DefaultsToOpenAI",
			cfg:      config.ImageConfig{},
			wantName: "openai",
		},
		{
			name:     "OpenAI",
			cfg:      config.ImageConfig{Provider: "openai"},
			wantName: "openai",
		},
		{
			name:     "StabilityWithKey",
			cfg:      config.ImageConfig{Provider: "stability", StabilityKey: "sk-stab"},
			wantName: "stability",
		},
		{
			name:    "StabilityWithoutKey",
			cfg:     config.ImageConfig{Provider: "stability"},
			wantErr: true,
		},
		{
			name:    "Unknown",
			cfg:     config.ImageConfig{Provider: "dalle-9"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewProvider(tt.cfg, new(llmmocks.Client))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantName, provider.Name())
		})
	}
}

func TestOpenAIProvider_Generate(t *testing.T) {
	client := new(llmmocks.Client)
	client.On("GenerateImage", mock.Anything, "a prompt", "1024x1024").Return(pngBytes, nil)

	provider, err := NewProvider(config.ImageConfig{Provider: "openai", Size: "1024x1024"}, client)
	assert.NoError(t, err)

	img, err := provider.Generate(context.Background(), "a prompt")
	assert.NoError(t, err)
	assert.Equal(t, pngBytes, img)
	client.AssertExpectations(t)
}

func TestStabilityProvider_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer sk-stab", r.Header.Get("Authorization"))
		assert.Equal(t, "image/png", r.Header.Get("Accept"))

		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "a prompt", r.FormValue("prompt"))
		assert.Equal(t, "text-to-image", r.FormValue("mode"))
		assert.Equal(t, "png", r.FormValue("output_format"))
		assert.Equal(t, "1:1", r.FormValue("aspect_ratio"))

		w.Write(pngBytes)
	}))
	defer srv.Close()

	provider := &stabilityProvider{apiKey: "sk-stab", endpoint: srv.URL, http: srv.Client()}

	img, err := provider.Generate(context.Background(), "a prompt")
	assert.NoError(t, err)
	assert.Equal(t, pngBytes, img)
}

func TestStabilityProvider_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(strings.Repeat("x", 400)))
	}))
	defer srv.Close()

	provider := &stabilityProvider{apiKey: "sk-stab", endpoint: srv.URL, http: srv.Client()}

	_, err := provider.Generate(context.Background(), "a prompt")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "stability status 402")
	// Error bodies are capped at 300 bytes.
	assert.Equal(t, 300, strings.Count(err.Error(), "x"))
}
