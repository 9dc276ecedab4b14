package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "catalogd/internal/log"
	"catalogd/internal/services"
)

// RequireUser enforces a logged-in session on guarded routes (uploads).
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Login required"})
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil {
			applog.Security(c, "access.denied", map[string]any{"sid": sid})
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Login required"})
		}
		c.Locals("user", u)
		return c.Next()
	}
}
