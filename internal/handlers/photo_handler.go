package handlers

import (
	"WhereIsIt/internal/dto"
	"WhereIsIt/internal/services"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type PhotoHandler struct {
	service    services.PhotoService
	logService services.LogService
}

func NewPhotoHandler(service services.PhotoService, logService services.LogService) *PhotoHandler {
	return &PhotoHandler{service: service, logService: logService}
}

// UploadPhoto takes a multipart "file" field and attaches it to the item.
func (h *PhotoHandler) UploadPhoto(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c, "item")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid file")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get(fiber.HeaderContentType)
	if contentType == "" || contentType == fiber.MIMEOctetStream {
		contentType = mime.TypeByExtension(path.Ext(fileHeader.Filename))
	}

	item, err := h.service.UploadPhoto(c.UserContext(), id, dto.PhotoUploadDTO{
		FileName:    fileHeader.Filename,
		ContentType: contentType,
		Size:        fileHeader.Size,
		Content:     file,
	})
	if err != nil {
		return serviceError(c, h.logService, err)
	}
	return c.JSON(item)
}

func (h *PhotoHandler) GetPhoto(c *fiber.Ctx) error {
	key := strings.TrimLeft(c.Params("*"), "/")

	info, body, err := h.service.OpenPhoto(c.UserContext(), key)
	if err != nil {
		return serviceError(c, h.logService, err)
	}

	contentType := info.ContentType
	if contentType == "" {
		contentType = fiber.MIMEOctetStream
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderCacheControl, "public, max-age=31536000, immutable")
	return c.SendStream(body, int(info.Size))
}
