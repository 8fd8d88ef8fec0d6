package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// internalError logs the underlying failure and returns a sanitized 500.
// Storage error text never reaches the client.
func internalError(c *fiber.Ctx, log zerolog.Logger, err error) error {
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")
	return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
}

func isValidationError(err error) bool {
	return strings.HasPrefix(err.Error(), "validation failed")
}
