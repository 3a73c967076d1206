package security

import (
	"github.com/gofiber/fiber/v2"
)

// APIKeyGuard gates the public API surface.
func APIKeyGuard(apiKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get("X-API-Key") != apiKey {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "unauthorized"})
		}
		return c.Next()
	}
}

// UserGuard requires a caller identity. Token issuance and validation live
// with the external identity provider; by the time a request carries
// X-User-ID it has been authenticated upstream.
func UserGuard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid := c.Get("X-User-ID")
		if uid == "" {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "unauthorized"})
		}
		c.Locals("uid", uid)
		return c.Next()
	}
}

// AdminGuard gates the admin surface.
func AdminGuard(adminToken string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get("X-Admin-Token") != adminToken {
			return c.Status(403).JSON(fiber.Map{"success": false, "error": "forbidden"})
		}
		return c.Next()
	}
}
