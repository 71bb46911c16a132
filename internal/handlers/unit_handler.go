package handlers

import (
	"WhereIsIt/internal/dto"
	"WhereIsIt/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type UnitHandler struct {
	service    services.UnitService
	logService services.LogService
}

func NewUnitHandler(service services.UnitService, logService services.LogService) *UnitHandler {
	return &UnitHandler{service: service, logService: logService}
}

func (h *UnitHandler) CreateUnit(c *fiber.Ctx) error {
	var req dto.UnitCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid input")
	}

	unit, err := h.service.CreateUnit(req)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.Status(http.StatusCreated).JSON(unit)
}

func (h *UnitHandler) ListUnits(c *fiber.Ctx) error {
	page, ok := parsePaging(c)
	if !ok {
		return invalidPaging(c)
	}

	units, err := h.service.GetUnits(page.skip, page.limit)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(units)
}

func (h *UnitHandler) GetUnitByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "unit")
	}

	unit, err := h.service.GetUnitByID(id)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(unit)
}

func (h *UnitHandler) UpdateUnit(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "unit")
	}
	var req dto.UnitUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid input")
	}

	unit, err := h.service.UpdateUnit(id, req)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(unit)
}

func (h *UnitHandler) DeleteUnit(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "unit")
	}

	unit, err := h.service.DeleteUnit(id)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(unit)
}
