package routers

import (
	"WhereIsIt/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupSearchRouter(router fiber.Router, server *cmd.Server) {
	router.Get("/search", server.SearchHandler.Search)
}
