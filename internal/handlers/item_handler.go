package handlers

import (
	"WhereIsIt/internal/dto"
	"WhereIsIt/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type ItemHandler struct {
	service    services.ItemService
	logService services.LogService
}

func NewItemHandler(service services.ItemService, logService services.LogService) *ItemHandler {
	return &ItemHandler{service: service, logService: logService}
}

func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	var req dto.ItemCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid input")
	}
	if req.BoxID == 0 {
		return errorJSON(c, http.StatusUnprocessableEntity, "box_id is required")
	}

	item, err := h.service.CreateItem(req.BoxID, req)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.Status(http.StatusCreated).JSON(item)
}

func (h *ItemHandler) ListItems(c *fiber.Ctx) error {
	page, ok := parsePaging(c)
	if !ok {
		return invalidPaging(c)
	}

	items, err := h.service.GetItems(page.skip, page.limit)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(items)
}

func (h *ItemHandler) GetItemByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "item")
	}

	item, err := h.service.GetItemByID(id)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(item)
}

func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "item")
	}
	var req dto.ItemUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid input")
	}

	item, err := h.service.UpdateItem(id, req)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(item)
}

func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "item")
	}

	item, err := h.service.DeleteItem(id)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(item)
}
