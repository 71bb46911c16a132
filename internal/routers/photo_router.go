package routers

import (
	"WhereIsIt/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupPhotoRouter(router fiber.Router, server *cmd.Server) {
	photoHandler := server.PhotoHandler
	router.Post("/items/:id/photo", photoHandler.UploadPhoto)
	router.Get("/photos/*", photoHandler.GetPhoto)
}
