package cors

import (
	"github.com/gofiber/fiber/v2"
)

// New returns a middleware that sets the CORS headers on every response.
//
// Headers are written before the rest of the chain runs, so responses produced
// by the error handler (404, 405, 500) carry them too. Unlike Fiber's cors
// middleware the method and header lists are not limited to preflight
// requests.
func New(cfg Config) fiber.Handler {
	cfg = cfg.withDefaults()

	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, cfg.AllowOrigin)
		c.Set(fiber.HeaderAccessControlAllowMethods, cfg.AllowMethods)
		c.Set(fiber.HeaderAccessControlAllowHeaders, cfg.AllowHeaders)
		return c.Next()
	}
}
