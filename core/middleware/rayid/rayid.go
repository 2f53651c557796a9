// Package rayid provides request-ID middleware for Fiber.
//
// Every incoming request gets a "ray_id" stored in locals and echoed in the
// X-Ray-ID response header. The logger.WithRayID helper picks it up so all
// log lines for a request share the same identifier.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the request's ray ID.
const HeaderName = "X-Ray-ID"

// New creates the ray-id middleware. An incoming X-Ray-ID header is honored
// so upstream proxies can propagate their own correlation IDs.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
