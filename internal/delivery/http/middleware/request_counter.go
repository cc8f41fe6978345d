package middleware

import (
	"reels-service/internal/pkg/metrics"

	"github.com/gofiber/fiber/v2"
)

// CountRequests bumps counter once per request before the handler runs.
func CountRequests(counter *metrics.RequestCounter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		counter.Inc(c.Method() + " " + c.Path())
		return c.Next()
	}
}
