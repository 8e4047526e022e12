package handlers

import (
	"github.com/gofiber/fiber/v2"

	"mandi/internal/services"
	"mandi/internal/validate"
)

type VegetableHandler struct {
	Veg *services.VegetableService
}

func (h *VegetableHandler) List(c *fiber.Ctx) error {
	veg, err := h.Veg.List()
	if err != nil {
		return respondError(c, "vegetables.list", err)
	}
	return c.JSON(veg)
}

func (h *VegetableHandler) Create(c *fiber.Ctx) error {
	var in services.VegetableInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, "vegetables.create", err)
	}
	v, err := h.Veg.Create(in)
	if err != nil {
		return respondError(c, "vegetables.create", err)
	}
	return c.Status(fiber.StatusCreated).JSON(v)
}

func (h *VegetableHandler) Patch(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "vegetable not found"})
	}
	var p services.VegetablePatch
	if err := c.BodyParser(&p); err != nil {
		return badBody(c, "vegetables.patch", err)
	}
	v, err := h.Veg.Patch(id, p)
	if err != nil {
		return respondError(c, "vegetables.patch", err)
	}
	return c.JSON(v)
}
