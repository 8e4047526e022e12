package handlers

import (
	"github.com/gofiber/fiber/v2"

	"mandi/internal/cache"
	applog "mandi/internal/log"
)

// CacheHandler exposes the administrative cache surface: inspect keys,
// reset everything. The read path self-heals, so a reset is always safe.
type CacheHandler struct {
	Cache *cache.Cache
}

func (h *CacheHandler) Keys(c *fiber.Ctx) error {
	keys := h.Cache.Keys()
	if keys == nil {
		keys = []string{}
	}
	return c.JSON(fiber.Map{"keys": keys})
}

func (h *CacheHandler) Reset(c *fiber.Ctx) error {
	n := h.Cache.Reset()
	applog.Audit(c, "cache.reset", map[string]any{"evicted": n})
	return c.JSON(fiber.Map{"evicted": n})
}
