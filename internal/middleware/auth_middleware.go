package middleware

import (
	"strings"

	"greenfood-api/internal/model"
	"greenfood-api/internal/service"
	"greenfood-api/pkg/token"

	"github.com/gofiber/fiber/v2"
)

const currentUserKey = "current_user"

// RequireAuth validates the bearer token and re-reads the user from
// storage. The token's role claim is never authoritative: a role change
// after issuance must take effect on the next request.
func RequireAuth(tokens *token.Manager, auth service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := resolveUser(c, tokens, auth)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": err.Error()})
		}

		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

// OptionalAuth resolves the user when a valid bearer token is present and
// lets the request through anonymously otherwise (anonymous checkout).
func OptionalAuth(tokens *token.Manager, auth service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if user, err := resolveUser(c, tokens, auth); err == nil {
			c.Locals(currentUserKey, user)
		}
		return c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}
		if !user.IsAdmin() {
			return c.Status(403).JSON(fiber.Map{"error": "Forbidden: admin role required"})
		}
		return c.Next()
	}
}

// CurrentUser returns the resolved user set by RequireAuth/OptionalAuth,
// or nil for anonymous requests.
func CurrentUser(c *fiber.Ctx) *model.User {
	user, _ := c.Locals(currentUserKey).(*model.User)
	return user
}

func resolveUser(c *fiber.Ctx, tokens *token.Manager, auth service.AuthService) (*model.User, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, fiber.NewError(401, "Missing authorization token")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, fiber.NewError(401, "Invalid authorization format. Use: Bearer <token>")
	}

	claims, err := tokens.Validate(parts[1])
	if err != nil {
		return nil, fiber.NewError(401, "Invalid or expired token")
	}

	user, err := auth.ResolveUser(c.Context(), claims.Email)
	if err != nil {
		return nil, fiber.NewError(401, "User not found")
	}

	return user, nil
}
