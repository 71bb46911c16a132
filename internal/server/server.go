package server

import (
	"WhereIsIt/cmd"
	"WhereIsIt/internal/routers"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// NewApp builds the fiber app with every route mounted. It does not listen.
func NewApp(server *cmd.Server) *fiber.App {
	cfg := server.Configuration
	app := fiber.New(fiber.Config{
		BodyLimit:   cfg.Server.RequestConfig.SizeLimit * 1024 * 1024,
		Concurrency: cfg.Server.Concurrency * 1024,
		AppName:     "WhereIsIt",
	})

	app.Use(logger.New(logger.Config{Output: server.LogService.Log.Out}))
	app.Use(server.Metrics.Middleware())

	routers.SetupRoutes(app, server)

	if cfg.Server.StaticPath != "" {
		if info, err := os.Stat(cfg.Server.StaticPath); err == nil && info.IsDir() {
			prefix := cfg.Server.BasePath
			if prefix == "" {
				prefix = "/"
			}
			app.Static(prefix, cfg.Server.StaticPath, fiber.Static{Index: "index.html"})
		} else {
			server.LogService.Log.WithField("static_path", cfg.Server.StaticPath).Warn("static path not found, frontend not served")
		}
	}
	return app
}
