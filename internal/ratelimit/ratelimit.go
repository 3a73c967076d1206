package ratelimit

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Limiter is the injected rate-limit capability: one call per request,
// keyed by the caller.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Middleware rejects requests over the limit with a 429. Limiter errors
// fail open: a broken limiter must not take the games down.
func Middleware(l Limiter, key func(c *fiber.Ctx) string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ok, err := l.Allow(c.Context(), key(c))
		if err == nil && !ok {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"error":   "Rate limit exceeded",
			})
		}
		return c.Next()
	}
}

// Window is a fixed counting window shared by the implementations.
type Window struct {
	Limit  int
	Period time.Duration
}
