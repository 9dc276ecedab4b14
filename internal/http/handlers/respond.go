package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"catalogd/internal/domain"
	applog "catalogd/internal/log"
	"catalogd/internal/validate"
)

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": msg})
}

func unprocessable(c *fiber.Ctx, errs validate.Errors) error {
	applog.Security(c, "validation.fail", map[string]any{"fields": errs})
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": errs})
}

// fail maps a service error onto the response contract: absent ids become a
// not-found body, everything else propagates to the app error handler as a
// store failure.
func fail(c *fiber.Ctx, err error, notFoundMsg string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return notFound(c, notFoundMsg)
	}
	return err
}
