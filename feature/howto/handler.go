package howto

import (
	"encoding/json"

	"guidegen/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for guides.
type Handler struct {
	service  *Service
	renderer *Renderer
}

// NewHandler creates a new HTTP handler. renderer may be nil when the
// template failed to load; the HTML endpoint then reports an error while the
// JSON endpoints keep working.
func NewHandler(service *Service, renderer *Renderer) *Handler {
	return &Handler{service: service, renderer: renderer}
}

// RegisterRoutes registers the guide routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealth)
	app.Post("/howto/json", h.HandleGuideJSON)
	app.Post("/howto/html", h.HandleGuideHTML)
	app.Post("/html-to-pdf", h.HandlePDFExport)
}

// parseRequest decodes the request body. An absent body is valid and yields
// an empty request, which generates a placeholder guide.
func (h *Handler) parseRequest(c *fiber.Ctx) (Request, error) {
	var req Request
	if len(c.Body()) == 0 {
		return req, nil
	}
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return req, err
	}
	return req, nil
}

// HandleHealth reports liveness.
// @Summary Health
// @Description Liveness check.
// @Tags howto
// @Produce json
// @Success 200 {object} map[string]bool "OK"
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}

// HandleGuideJSON builds a guide and returns it as JSON.
// @Summary Build Guide (JSON)
// @Description Generate a how-to guide for a question, or pass a prebuilt guide through while attaching step illustrations.
// @Tags howto
// @Accept json
// @Produce json
// @Param payload body Request false "Question, optional source filter, or a prebuilt guide"
// @Success 200 {object} Guide "Guide"
// @Failure 400 {object} map[string]string "Malformed Body"
// @Router /howto/json [post]
func (h *Handler) HandleGuideJSON(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	req, err := h.parseRequest(c)
	if err != nil {
		l.Warn("Malformed guide request", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(h.service.BuildGuide(c.Context(), req))
}

// HandleGuideHTML builds a guide and renders it as an HTML page.
// @Summary Build Guide (HTML)
// @Description Generate a how-to guide and render it as a standalone HTML page.
// @Tags howto
// @Accept json
// @Produce html
// @Param payload body Request false "Question, optional source filter, or a prebuilt guide"
// @Success 200 {string} string "Guide Page"
// @Failure 400 {object} map[string]string "Malformed Body"
// @Failure 500 {object} map[string]string "Template Unavailable"
// @Router /howto/html [post]
func (h *Handler) HandleGuideHTML(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	req, err := h.parseRequest(c)
	if err != nil {
		l.Warn("Malformed guide request", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if h.renderer == nil {
		l.Error("Guide template unavailable")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "guide template unavailable",
		})
	}

	guide := h.service.BuildGuide(c.Context(), req)

	page, err := h.renderer.Render(guide)
	if err != nil {
		l.Error("Guide rendering failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(page)
}

// HandlePDFExport is the PDF endpoint, disabled until the exporter is
// reworked.
// @Summary Export Guide (PDF)
// @Description PDF export is disabled and always returns 503.
// @Tags howto
// @Produce json
// @Failure 503 {object} map[string]string "Disabled"
// @Router /html-to-pdf [post]
func (h *Handler) HandlePDFExport(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": "PDF temporarily disabled for deploy sanity check",
	})
}
