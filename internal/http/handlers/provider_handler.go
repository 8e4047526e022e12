package handlers

import (
	"github.com/gofiber/fiber/v2"

	"mandi/internal/services"
)

type ProviderHandler struct {
	Providers *services.ProviderService
}

func (h *ProviderHandler) List(c *fiber.Ctx) error {
	ps, err := h.Providers.List()
	if err != nil {
		return respondError(c, "providers.list", err)
	}
	return c.JSON(ps)
}

func (h *ProviderHandler) Create(c *fiber.Ctx) error {
	var in services.ProviderInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, "providers.create", err)
	}
	p, err := h.Providers.Create(in)
	if err != nil {
		return respondError(c, "providers.create", err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}
