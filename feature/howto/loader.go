package howto

import (
	"guidegen/core/llm"
	"guidegen/core/vector"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new guide generation feature. store, attacher and
// renderer may each be nil; the feature degrades instead of failing.
func NewFeature(client llm.Client, store vector.Store, attacher Attacher, renderer *Renderer, logger *zap.Logger) *Feature {
	gen := NewGenerator(client, store, logger)
	svc := NewService(gen, attacher, logger)
	h := NewHandler(svc, renderer)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "howto"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
