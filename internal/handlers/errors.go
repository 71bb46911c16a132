package handlers

import (
	"WhereIsIt/internal/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

func errorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(map[string]interface{}{"error": message})
}

// serviceError maps service errors to a status code. Anything unexpected is
// logged and reported as a 500.
func serviceError(c *fiber.Ctx, logService services.LogService, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return errorJSON(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrConflict):
		return errorJSON(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrValidation):
		return errorJSON(c, http.StatusUnprocessableEntity, err.Error())
	}
	logService.Log.WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"error":  err.Error(),
	}).Error("request failed")
	return errorJSON(c, http.StatusInternalServerError, "internal server error")
}

func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func invalidID(c *fiber.Ctx, entity string) error {
	return errorJSON(c, http.StatusBadRequest, "invalid "+entity+" ID")
}

type paging struct {
	skip  int
	limit int
}

func parsePaging(c *fiber.Ctx) (paging, bool) {
	p := paging{skip: 0, limit: defaultLimit}
	if raw := c.Query("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil || skip < 0 {
			return p, false
		}
		p.skip = skip
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return p, false
		}
		p.limit = min(limit, maxLimit)
	}
	return p, true
}

func invalidPaging(c *fiber.Ctx) error {
	return errorJSON(c, http.StatusBadRequest, "skip must be >= 0 and limit between 1 and 1000")
}
