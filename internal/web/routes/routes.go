package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tair/property-browser/internal/web/handler"
	"github.com/tair/property-browser/internal/web/health"
)

// SetupRoutes registers the pages, their actions and the health probes
func SetupRoutes(
	app *fiber.App,
	selector *handler.SelectorHandler,
	browser *handler.BrowserHandler,
	checker *health.Checker,
	likeLimiter fiber.Handler,
) {
	// Quick health check (no dependency checks)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(checker.QuickCheck())
	})

	// Liveness probe
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Readiness probe (checks the property API and Redis)
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		report := checker.CheckAll(ctx)

		statusCode := fiber.StatusOK
		if report.Status == health.StatusUnhealthy {
			statusCode = fiber.StatusServiceUnavailable
		}
		return c.Status(statusCode).JSON(report)
	})

	app.Get("/", selector.Index)
	app.Get("/login", selector.ShowLogin)
	app.Post("/login", selector.Login)
	app.Post("/logout", browser.Logout)

	properties := app.Group("/properties")
	properties.Get("/", browser.ShowProperties)
	properties.Post("/:id/like", likeLimiter, browser.Like)
	properties.Get("/:id/likers", browser.Likers)
}
