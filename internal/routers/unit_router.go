package routers

import (
	"WhereIsIt/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupUnitRouter(router fiber.Router, server *cmd.Server) {
	unitHandler := server.UnitHandler
	router.Get("/units", unitHandler.ListUnits)
	router.Post("/units", unitHandler.CreateUnit)
	router.Get("/units/:id", unitHandler.GetUnitByID)
	router.Put("/units/:id", unitHandler.UpdateUnit)
	router.Delete("/units/:id", unitHandler.DeleteUnit)
}
