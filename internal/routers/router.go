package routers

import (
	"WhereIsIt/cmd"
	"WhereIsIt/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes mounts the JSON API under <base path>/api and the metrics
// endpoint under <base path>/metrics.
func SetupRoutes(app *fiber.App, server *cmd.Server) {
	basePath := server.Configuration.Server.BasePath
	api := app.Group(basePath + "/api")

	api.Get("/health", handlers.Health)
	SetupUnitRouter(api, server)
	SetupBoxRouter(api, server)
	SetupItemRouter(api, server)
	SetupCategoryRouter(api, server)
	SetupSearchRouter(api, server)
	SetupPhotoRouter(api, server)
	SetupJanitorRouter(api, server)

	app.Get(basePath+"/metrics", server.Metrics.Handler())
}
