package illustrate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"guidegen/core/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// urlPrefix is the public path generated illustrations are served under.
const urlPrefix = "/static/images"

// Attacher generates and caches per-step illustrations.
type Attacher struct {
	provider   Provider
	cache      *Cache
	style      string
	logPrompts bool
	logger     *zap.Logger
	group      singleflight.Group
}

// NewAttacher creates an Attacher using the given provider and cache. When
// logPrompts is set, every composed prompt is echoed into the log.
func NewAttacher(provider Provider, cache *Cache, style string, logPrompts bool, logg *zap.Logger) *Attacher {
	return &Attacher{provider: provider, cache: cache, style: style, logPrompts: logPrompts, logger: logg}
}

// Slug derives the cache key for one step illustration. Style and provider
// are part of the key so changing either regenerates every image.
func Slug(title, action, style, provider string) string {
	sum := sha256.Sum256([]byte(title + "|" + action + "|" + style + "|" + provider))
	return hex.EncodeToString(sum[:])[:16]
}

// Illustrate returns the public URL for a step's illustration, generating
// and caching it when needed. Steps with no title and no action are skipped,
// both return values empty. On generation failure the URL is still returned
// alongside the error message; clients probe the URL and fall back on 404.
func (a *Attacher) Illustrate(ctx context.Context, title, action string) (string, string) {
	title = strings.TrimSpace(title)
	action = strings.TrimSpace(action)
	if title == "" && action == "" {
		return "", ""
	}

	key := Slug(title, action, a.style, a.provider.Name())
	url := urlPrefix + "/" + key + ".png"

	if a.cache.Has(ctx, key) {
		metrics.IllustrationsTotal.WithLabelValues(metrics.ResultCacheHit).Inc()
		return url, ""
	}

	_, err, _ := a.group.Do(key, func() (any, error) {
		prompt := a.buildPrompt(title, action)
		if a.logPrompts {
			echo := prompt
			if len(echo) > 180 {
				echo = echo[:180] + "..."
			}
			a.logger.Info("Illustration prompt",
				zap.String("provider", a.provider.Name()), zap.String("prompt", echo))
		}
		a.logger.Debug("Generating step illustration",
			zap.String("key", key), zap.String("provider", a.provider.Name()))

		img, genErr := a.provider.Generate(ctx, prompt)
		if genErr != nil {
			return nil, genErr
		}
		return nil, a.cache.Put(ctx, key, img)
	})
	if err != nil {
		metrics.IllustrationsTotal.WithLabelValues(metrics.ResultError).Inc()
		a.logger.Warn("Step illustration failed", zap.String("key", key), zap.Error(err))
		return url, err.Error()
	}

	metrics.IllustrationsTotal.WithLabelValues(metrics.ResultGenerated).Inc()
	return url, ""
}

// buildPrompt composes the provider prompt from the step and house style.
func (a *Attacher) buildPrompt(title, action string) string {
	core := title
	if core == "" {
		core = action
	}

	detail := ""
	if title != "" && action != "" {
		detail = " Action: " + action
	}

	return fmt.Sprintf("%s. Show: %s.%s Perspective: simple, straight-on. "+
		"Background: white/neutral. Purpose: job-aid step illustration for technicians. "+
		"Use minimal, readable labels if helpful. Avoid decorative elements.",
		a.style, core, detail)
}
