package routers

import (
	"WhereIsIt/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupCategoryRouter(router fiber.Router, server *cmd.Server) {
	categoryHandler := server.CategoryHandler
	router.Get("/categories", categoryHandler.ListCategories)
	router.Post("/categories", categoryHandler.CreateCategory)
	router.Put("/categories/:name", categoryHandler.RenameCategory)
	router.Delete("/categories/:name", categoryHandler.DeleteCategory)
}
