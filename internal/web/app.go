package web

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"

	"github.com/tair/property-browser/internal/config"
	"github.com/tair/property-browser/internal/session"
	"github.com/tair/property-browser/internal/web/handler"
	"github.com/tair/property-browser/internal/web/health"
	"github.com/tair/property-browser/internal/web/middleware"
	"github.com/tair/property-browser/internal/web/routes"
	"github.com/tair/property-browser/internal/web/views"
	"github.com/tair/property-browser/pkg/logger"
)

// Server is the page-serving fiber app and its health checker
type Server struct {
	App    *fiber.App
	Health *health.Checker
}

// NewServer builds the fiber app with middleware and routes
func NewServer(
	cfg *config.Config,
	store session.Store,
	redisClient *redis.Client,
	pageMetrics *middleware.PageMetrics,
	selector *handler.SelectorHandler,
	browser *handler.BrowserHandler,
	checker *health.Checker,
) (*Server, error) {
	engine := views.New()
	if err := engine.Load(); err != nil {
		return nil, fmt.Errorf("failed to load views: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Property Browser",
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		IdleTimeout:           30 * time.Second,
		Views:                 engine,
		ViewsLayout:           views.Layout,
		ErrorHandler:          handler.ErrorHandler,
		DisableStartupMessage: !cfg.IsDevelopment(),
	})

	setupMiddleware(app, cfg, store, pageMetrics)

	likeLimiter := middleware.LikeRateLimiter(redisClient, cfg.LikeRateLimit)
	if redisClient != nil && cfg.LikeRateLimit > 0 {
		logger.Logger.Info().Int("per_minute", cfg.LikeRateLimit).Msg("Like rate limiting enabled")
	} else {
		logger.Logger.Warn().Msg("Like rate limiting disabled")
	}

	routes.SetupRoutes(app, selector, browser, checker, likeLimiter)

	return &Server{App: app, Health: checker}, nil
}

func setupMiddleware(app *fiber.App, cfg *config.Config, store session.Store, pageMetrics *middleware.PageMetrics) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: cfg.IsDevelopment(),
	}))

	// Request ID (must be first)
	app.Use(requestid.New())

	// Tracing before logging so log lines carry the trace id
	app.Use(middleware.TracingMiddleware(cfg.ServiceName))
	app.Use(middleware.StructuredLoggingMiddleware())
	app.Use(pageMetrics.Middleware())

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	app.Use(middleware.SessionMiddleware(store, cfg.Session))
}
