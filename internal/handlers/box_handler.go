package handlers

import (
	"WhereIsIt/internal/dto"
	"WhereIsIt/internal/services"
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"
)

type BoxHandler struct {
	service     services.BoxService
	itemService services.ItemService
	qrService   services.QRService
	logService  services.LogService
}

func NewBoxHandler(
	service services.BoxService,
	itemService services.ItemService,
	qrService services.QRService,
	logService services.LogService,
) *BoxHandler {
	return &BoxHandler{service: service, itemService: itemService, qrService: qrService, logService: logService}
}

func (h *BoxHandler) CreateBox(c *fiber.Ctx) error {
	var req dto.BoxCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid input")
	}

	box, err := h.service.CreateBox(req)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.Status(http.StatusCreated).JSON(box)
}

func (h *BoxHandler) ListBoxes(c *fiber.Ctx) error {
	page, ok := parsePaging(c)
	if !ok {
		return invalidPaging(c)
	}

	boxes, err := h.service.GetBoxes(page.skip, page.limit)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(boxes)
}

func (h *BoxHandler) GetBoxByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "box")
	}

	box, err := h.service.GetBoxByID(id)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(box)
}

func (h *BoxHandler) GetBoxBySlug(c *fiber.Ctx) error {
	slug, err := url.PathUnescape(c.Params("slug"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid slug")
	}

	box, err := h.service.GetBoxBySlug(slug)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(box)
}

// GetBoxQRCode renders the label for a box as a PNG.
func (h *BoxHandler) GetBoxQRCode(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "box")
	}

	png, err := h.qrService.BoxQRCode(id)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

func (h *BoxHandler) UpdateBox(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "box")
	}
	var req dto.BoxUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid input")
	}

	box, err := h.service.UpdateBox(id, req)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(box)
}

func (h *BoxHandler) DeleteBox(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "box")
	}

	box, err := h.service.DeleteBox(id)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(box)
}

func (h *BoxHandler) ListBoxItems(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "box")
	}

	items, err := h.itemService.GetItemsByBoxID(id)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(items)
}

// CreateBoxItem creates an item in the box named by the path; a box_id in
// the body is ignored.
func (h *BoxHandler) CreateBoxItem(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "box")
	}
	var req dto.ItemCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid input")
	}

	item, err := h.itemService.CreateItem(id, req)
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.Status(http.StatusCreated).JSON(item)
}
