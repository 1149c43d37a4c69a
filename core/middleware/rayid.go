package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RayIDHeader is the header carrying the request's ray ID.
const RayIDHeader = "X-Ray-ID"

// RayID assigns every request a ray ID for tracing. An ID supplied by the
// caller is kept so upstream proxies can correlate their own logs; otherwise
// a fresh one is generated. The ID is stored in the request locals and echoed
// on the response.
func RayID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rayID := c.Get(RayIDHeader)
		if rayID == "" {
			rayID = uuid.NewString()
		}

		c.Locals("ray_id", rayID)
		c.Set(RayIDHeader, rayID)

		return c.Next()
	}
}
