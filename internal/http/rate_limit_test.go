package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"mandi/internal/cache"
	"mandi/internal/http/handlers"
	"mandi/internal/repos"
)

// App with a tight limiter on the bill listing, like production wires it.
func newRateLimitedApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	deps := handlers.NewDeps(db, cache.New(cache.NewMemory(), time.Hour))
	app := fiber.New()
	app.Get("/api/bills", limiter.New(limiter.Config{
		Max:        3,
		Expiration: time.Second,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}), deps.BillHandler.List)
	return app
}

func TestBillListingRateLimit(t *testing.T) {
	app := newRateLimitedApp(t)

	for i := 0; i < 4; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/bills", nil))
		if err != nil {
			t.Fatal(err)
		}
		if i < 3 && resp.StatusCode == http.StatusTooManyRequests {
			t.Fatalf("hit rate limit too early at %d", i)
		}
		if i == 3 && resp.StatusCode != http.StatusTooManyRequests {
			t.Fatalf("expected 429 after limit, got %d", resp.StatusCode)
		}
	}
}
