package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "mandi/internal/log"
	"mandi/internal/services"
	"mandi/internal/validate"
)

type BillHandler struct {
	Bills *services.BillService
}

func (h *BillHandler) List(c *fiber.Ctx) error {
	bills, err := h.Bills.List()
	if err != nil {
		return respondError(c, "bills.list", err)
	}
	return c.JSON(bills)
}

func (h *BillHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "bill not found"})
	}
	bill, err := h.Bills.Get(id)
	if err != nil {
		return respondError(c, "bills.get", err)
	}
	return c.JSON(bill)
}

func (h *BillHandler) Create(c *fiber.Ctx) error {
	var in services.BillInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, "bills.create", err)
	}
	bill, err := h.Bills.Create(in)
	if err != nil {
		return respondError(c, "bills.create", err)
	}
	applog.Audit(c, "bills.create", map[string]any{
		"bill_id": bill.ID, "provider": bill.ProviderName,
		"items": len(bill.Items), "total": bill.Total,
	})
	return c.Status(fiber.StatusCreated).JSON(bill)
}

// DeleteByProvider is the administrative bulk path: every bill recorded
// against ?provider=NAME goes at once.
func (h *BillHandler) DeleteByProvider(c *fiber.Ctx) error {
	name, ok := validate.Name(c.Query("provider"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "provider query parameter required"})
	}
	n, err := h.Bills.DeleteByProvider(name)
	if err != nil {
		return respondError(c, "bills.bulkdelete", err)
	}
	applog.Audit(c, "bills.bulkdelete", map[string]any{"provider": name, "deleted": n})
	return c.JSON(fiber.Map{"deleted": n})
}
