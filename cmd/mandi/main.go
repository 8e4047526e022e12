package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"mandi/internal/cache"
	"mandi/internal/config"
	"mandi/internal/http/handlers"
	applog "mandi/internal/log"
	"mandi/internal/repos"
)

func main() {
	cfg := config.Load()
	applog.Init(cfg.LogLevel)

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	store := cache.New(cache.NewMemory(), cfg.CacheTTL)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": "request failed"})
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateMax,
		Expiration: cfg.RateWindow,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.limit.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}))

	// ---------- Routes ----------
	deps := handlers.NewDeps(db, store)
	api := app.Group("/api")

	api.Get("/vegetables", deps.VegetableHandler.List)
	api.Post("/vegetables", deps.VegetableHandler.Create)
	api.Patch("/vegetables/:id", deps.VegetableHandler.Patch)

	api.Get("/bills", deps.BillHandler.List)
	api.Get("/bills/:id", deps.BillHandler.Get)
	api.Post("/bills", deps.BillHandler.Create)
	api.Delete("/bills", deps.BillHandler.DeleteByProvider)

	api.Get("/providers", deps.ProviderHandler.List)
	api.Post("/providers", deps.ProviderHandler.Create)

	api.Get("/signers", deps.SignerHandler.List)
	api.Post("/signers", deps.SignerHandler.Create)

	api.Get("/cache/keys", deps.CacheHandler.Keys)
	api.Delete("/cache", deps.CacheHandler.Reset)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
