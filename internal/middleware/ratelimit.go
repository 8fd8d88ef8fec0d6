package middleware

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// RateLimit guards an endpoint with a process-wide token bucket. Used on
// login to slow down credential stuffing.
func RateLimit(r rate.Limit, burst int) fiber.Handler {
	limiter := rate.NewLimiter(r, burst)
	return func(c *fiber.Ctx) error {
		if !limiter.Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		}
		return c.Next()
	}
}
