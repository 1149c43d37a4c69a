package illustrate

import (
	"context"
	"errors"
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\nfake")

type fakeProvider struct {
	name     string
	calls    int
	prompts  []string
	generate func(prompt string) ([]byte, error)
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Generate(ctx context.Context, prompt string) ([]byte, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.generate != nil {
		return f.generate(prompt)
	}
	return pngBytes, nil
}

func newTestAttacher(t *testing.T, provider *fakeProvider) (*Attacher, *Cache) {
	t.Helper()
	cache := NewCache(t.TempDir(), nil, "", "", zap.NewNop())
	return NewAttacher(provider, cache, "flat diagram", false, zap.NewNop()), cache
}

func TestAttacher_GeneratesOnceThenCaches(t *testing.T) {
	provider := &fakeProvider{name: "openai"}
	attacher, cache := newTestAttacher(t, provider)

	url, errMsg := attacher.Illustrate(context.Background(), "Open the cover", "Pull the latch.")
	assert.Empty(t, errMsg)

	key := Slug("Open the cover", "Pull the latch.", "flat diagram", "openai")
	assert.Equal(t, "/static/images/"+key+".png", url)
	assert.FileExists(t, cache.Path(key))

	data, err := os.ReadFile(cache.Path(key))
	assert.NoError(t, err)
	assert.Equal(t, pngBytes, data)

	url2, errMsg2 := attacher.Illustrate(context.Background(), "Open the cover", "Pull the latch.")
	assert.Equal(t, url, url2)
	assert.Empty(t, errMsg2)
	assert.Equal(t, 1, provider.calls)
}

func TestAttacher_SkipsStepWithoutText(t *testing.T) {
	provider := &fakeProvider{name: "openai"}
	attacher, _ := newTestAttacher(t, provider)

	url, errMsg := attacher.Illustrate(context.Background(), "  ", "")

	assert.Empty(t, url)
	assert.Empty(t, errMsg)
	assert.Zero(t, provider.calls)
}

func TestAttacher_ErrorStillReturnsURL(t *testing.T) {
	provider := &fakeProvider{
		name:     "openai",
		generate: func(string) ([]byte, error) { return nil, errors.New("provider exploded") },
	}
	attacher, cache := newTestAttacher(t, provider)

	url, errMsg := attacher.Illustrate(context.Background(), "Open the cover", "Pull the latch.")

	key := Slug("Open the cover", "Pull the latch.", "flat diagram", "openai")
	assert.Equal(t, "/static/images/"+key+".png", url)
	assert.Equal(t, "provider exploded", errMsg)
	assert.NoFileExists(t, cache.Path(key))
}

func TestAttacher_PromptComposition(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		action string
		want   string
	}{
		{
			name:   "TitleAndAction",
			title:  "Open the cover",
			action: "Pull the latch",
			want: "flat diagram. Show: Open the cover. Action: Pull the latch Perspective: simple, straight-on. " +
				"Background: white/neutral. Purpose: job-aid step illustration for technicians. " +
				"Use minimal, readable labels if helpful. Avoid decorative elements.",
		},
		{
			name:  "TitleOnly",
			title: "Open the cover",
			want: "flat diagram. Show: Open the cover. Perspective: simple, straight-on. " +
				"Background: white/neutral. Purpose: job-aid step illustration for technicians. " +
				"Use minimal, readable labels if helpful. Avoid decorative elements.",
		},
		{
			name:   "ActionOnly",
			action: "Pull the latch",
			want: "flat diagram. Show: Pull the latch. Perspective: simple, straight-on. " +
				"Background: white/neutral. Purpose: job-aid step illustration for technicians. " +
				"Use minimal, readable labels if helpful. Avoid decorative elements.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{name: "openai"}
			attacher, _ := newTestAttacher(t, provider)

			attacher.Illustrate(context.Background(), tt.title, tt.action)

			assert.Equal(t, []string{tt.want}, provider.prompts)
		})
	}
}

func TestSlug(t *testing.T) {
	key := Slug("Open the cover", "Pull the latch.", "flat", "openai")

	assert.Len(t, key, 16)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}$`), key)
	assert.Equal(t, key, Slug("Open the cover", "Pull the latch.", "flat", "openai"))
	assert.NotEqual(t, key, Slug("Open the cover", "Pull the latch.", "flat", "stability"))
	assert.NotEqual(t, key, Slug("Open the cover", "Pull the latch.", "sketch", "openai"))
}
