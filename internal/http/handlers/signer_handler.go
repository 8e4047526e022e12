package handlers

import (
	"github.com/gofiber/fiber/v2"

	"mandi/internal/services"
)

type SignerHandler struct {
	Signers *services.SignerService
}

func (h *SignerHandler) List(c *fiber.Ctx) error {
	ss, err := h.Signers.List()
	if err != nil {
		return respondError(c, "signers.list", err)
	}
	return c.JSON(ss)
}

func (h *SignerHandler) Create(c *fiber.Ctx) error {
	var in services.SignerInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, "signers.create", err)
	}
	s, err := h.Signers.Create(in)
	if err != nil {
		return respondError(c, "signers.create", err)
	}
	return c.Status(fiber.StatusCreated).JSON(s)
}
