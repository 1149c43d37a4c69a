package diag

import (
	"context"

	"guidegen/core/logger"
	"guidegen/core/probe"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Service runs the configured probes on demand.
type Service struct {
	probes []probe.Probe
	logger *zap.Logger
}

// NewService creates a new diagnostics service.
func NewService(probes []probe.Probe, logger *zap.Logger) *Service {
	return &Service{probes: probes, logger: logger}
}

// Snapshot runs every probe and returns the report.
func (s *Service) Snapshot(ctx context.Context) probe.Report {
	return probe.Run(ctx, s.logger, s.probes)
}

// Handler handles HTTP requests for diagnostics.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the diagnostics routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/diag", h.HandleDiag)
}

// HandleDiag runs all startup probes and returns their results.
// @Summary Diagnostics
// @Description Re-run the startup probes and report the outcome of each.
// @Tags diag
// @Produce json
// @Success 200 {object} probe.Report "Probe Report"
// @Router /diag [get]
func (h *Handler) HandleDiag(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Diagnostics requested")

	return c.JSON(h.service.Snapshot(c.Context()))
}
