package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"guidegen/core/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// TestRayID_GeneratesWhenMissing tests that a fresh ID is minted and echoed.
func TestRayID_GeneratesWhenMissing(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.RayID())

	var seen string
	app.Get("/", func(c *fiber.Ctx) error {
		seen = c.Locals("ray_id").(string)
		return c.SendString("ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req, 2000)

	assert.NoError(t, err)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, resp.Header.Get(middleware.RayIDHeader))

	_, err = uuid.Parse(seen)
	assert.NoError(t, err)
}

// TestRayID_KeepsCallerID tests that a caller-supplied ID is passed through.
func TestRayID_KeepsCallerID(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.RayID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RayIDHeader, "edge-7f3a")
	resp, err := app.Test(req, 2000)

	assert.NoError(t, err)
	assert.Equal(t, "edge-7f3a", resp.Header.Get(middleware.RayIDHeader))
}
