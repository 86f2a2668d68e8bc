package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/linkhoard/bookmark-service/internal/auth/domain"
)

// userLocalsKey is where RequireAuth stashes the resolved identity for the
// rest of the request chain.
const userLocalsKey = "authenticated_user"

// RequireAuth gates protected routes. It extracts the bearer token, resolves
// it to a user and rejects the request with 401 before any downstream
// handler runs. Invalid token, expired token and deleted user all collapse
// into the same response.
func (h *AuthHandler) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return unauthorized(c)
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c)
		}

		user, err := h.userService.Authenticate(c.Context(), parts[1])
		if err != nil {
			return unauthorized(c)
		}

		c.Locals(userLocalsKey, user)
		return c.Next()
	}
}

// UserFromCtx returns the identity stored by RequireAuth. The second return
// is false on routes that never went through the gate.
func UserFromCtx(c *fiber.Ctx) (*domain.User, bool) {
	user, ok := c.Locals(userLocalsKey).(*domain.User)
	return user, ok
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
}
