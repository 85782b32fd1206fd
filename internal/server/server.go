package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/issuepilot/issuepilot/internal/config"
	"github.com/issuepilot/issuepilot/internal/github"
	"github.com/issuepilot/issuepilot/internal/service"
)

// Version is the API version reported by the info and health endpoints.
const Version = "1.0.0"

// New builds the Fiber application with all routes registered.
func New(cfg *config.Config, analyzer *service.Analyzer, gh *github.Client) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "issuepilot",
		ReadTimeout:  cfg.Server.ReadTimeout(),
		WriteTimeout: cfg.Server.WriteTimeout(),
	})

	app.Use(recover.New())
	app.Use(logger.New())

	var limiter rateLimiter
	if gh != nil {
		limiter = gh
	}
	h := newHandler(cfg, analyzer, limiter)
	h.Register(app)

	return app
}
