package illustrate

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"guidegen/core/config"
	"guidegen/core/llm"
)

// stabilityEndpoint is the Stability text-to-image endpoint.
const stabilityEndpoint = "https://api.stability.ai/v2beta/stable-image/generate/core"

// Provider produces PNG bytes for an illustration prompt.
type Provider interface {
	// Name identifies the backend. It is part of the cache key.
	Name() string
	// Generate renders the prompt as a PNG image.
	Generate(ctx context.Context, prompt string) ([]byte, error)
}

// NewProvider selects the configured image backend.
func NewProvider(cfg config.ImageConfig, client llm.Client) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "openai":
		return &openaiProvider{client: client, size: cfg.Size}, nil
	case "stability":
		if cfg.StabilityKey == "" {
			return nil, fmt.Errorf("stability api key not configured")
		}
		return &stabilityProvider{
			apiKey:   cfg.StabilityKey,
			endpoint: stabilityEndpoint,
			http:     &http.Client{Timeout: 120 * time.Second},
		}, nil
	default:
		return nil, fmt.Errorf("unknown image provider %q", cfg.Provider)
	}
}

// openaiProvider renders images through the language model endpoint.
type openaiProvider struct {
	client llm.Client
	size   string
}

func (p *openaiProvider) Name() string { return "openai" }

func (p *openaiProvider) Generate(ctx context.Context, prompt string) ([]byte, error) {
	return p.client.GenerateImage(ctx, prompt, p.size)
}

// stabilityProvider renders images through the Stability REST API.
type stabilityProvider struct {
	apiKey   string
	endpoint string
	http     *http.Client
}

func (p *stabilityProvider) Name() string { return "stability" }

func (p *stabilityProvider) Generate(ctx context.Context, prompt string) ([]byte, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	fields := map[string]string{
		"prompt":        prompt,
		"mode":          "text-to-image",
		"output_format": "png",
		"aspect_ratio":  "1:1",
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Accept", "image/png")
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 300))
		return nil, fmt.Errorf("stability status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}
	return io.ReadAll(resp.Body)
}
