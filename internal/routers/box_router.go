package routers

import (
	"WhereIsIt/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupBoxRouter(router fiber.Router, server *cmd.Server) {
	boxHandler := server.BoxHandler
	router.Get("/boxes", boxHandler.ListBoxes)
	router.Post("/boxes", boxHandler.CreateBox)
	router.Get("/boxes/slug/:slug", boxHandler.GetBoxBySlug)
	router.Get("/boxes/:id", boxHandler.GetBoxByID)
	router.Put("/boxes/:id", boxHandler.UpdateBox)
	router.Delete("/boxes/:id", boxHandler.DeleteBox)
	router.Get("/boxes/:id/qrcode", boxHandler.GetBoxQRCode)
	router.Get("/boxes/:id/items", boxHandler.ListBoxItems)
	router.Post("/boxes/:id/items", boxHandler.CreateBoxItem)
}
