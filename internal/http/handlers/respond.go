package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"mandi/internal/domain"
	applog "mandi/internal/log"
)

// respondError is the one place a service error becomes a status code.
// Anything it does not recognize is a generic 500; nothing is swallowed.
func respondError(c *fiber.Ctx, action string, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		applog.Security(c, action+".invalid", map[string]any{"violations": verr.Violations})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":      "validation failed",
			"violations": verr.Violations,
		})
	}

	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": nf.Error()})
	}

	var dup *domain.DuplicateError
	if errors.As(err, &dup) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": dup.Error()})
	}

	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		// Catalogue corruption: log everything, tell the caller little.
		applog.Error(c, action+".integrity", err, map[string]any{
			"want": conflict.Want, "got": conflict.Got,
		})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "catalogue integrity fault",
		})
	}

	applog.Error(c, action+".fail", err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}

func badBody(c *fiber.Ctx, action string, err error) error {
	applog.Security(c, action+".badbody", map[string]any{"error": err.Error()})
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed JSON body"})
}
