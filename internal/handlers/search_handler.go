package handlers

import (
	"WhereIsIt/internal/services"

	"github.com/gofiber/fiber/v2"
)

type SearchHandler struct {
	service    services.SearchService
	logService services.LogService
}

func NewSearchHandler(service services.SearchService, logService services.LogService) *SearchHandler {
	return &SearchHandler{service: service, logService: logService}
}

// Search matches ?q= against box and item names and item categories;
// ?category= restricts items to that exact category.
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	var category *string
	if value := c.Query("category"); value != "" {
		category = &value
	}

	result, err := h.service.Search(c.Query("q"), category)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(result)
}
