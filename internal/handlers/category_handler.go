package handlers

import (
	"WhereIsIt/internal/dto"
	"WhereIsIt/internal/services"
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	service    services.CategoryService
	logService services.LogService
}

func NewCategoryHandler(service services.CategoryService, logService services.LogService) *CategoryHandler {
	return &CategoryHandler{service: service, logService: logService}
}

func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	names, err := h.service.ListCategories()
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(names)
}

func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req dto.CategoryCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid input")
	}

	category, created, err := h.service.CreateCategory(req.Name)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	if !created {
		return c.JSON(dto.MessageDTO{Message: "Category already exists"})
	}
	return c.Status(http.StatusCreated).JSON(category)
}

// RenameCategory reads the new name from ?new_name= or a JSON body.
func (h *CategoryHandler) RenameCategory(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid category name")
	}
	newName := c.Query("new_name")
	if newName == "" && len(c.Body()) > 0 {
		var req dto.CategoryRenameDTO
		if err = c.BodyParser(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid input")
		}
		newName = req.NewName
	}

	if err = h.service.RenameCategory(name, newName); err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(dto.MessageDTO{Message: "Category renamed"})
}

func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid category name")
	}

	if err = h.service.DeleteCategory(name); err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(dto.MessageDTO{Message: "Category deleted"})
}
