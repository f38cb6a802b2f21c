package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/kolocal/kolocal-api/internal/domain"
	apperrors "github.com/kolocal/kolocal-api/internal/pkg/errors"
)

// pagedResponse is the JSON envelope for every paged collection.
type pagedResponse struct {
	Data       any               `json:"data"`
	Pagination domain.Pagination `json:"pagination"`
}

func parseIntParam(c *fiber.Ctx, name string, def int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func parseFloatParam(c *fiber.Ctx, name string) float64 {
	f, err := strconv.ParseFloat(c.Query(name), 64)
	if err != nil {
		return 0
	}
	return f
}

// parseBoolParam returns nil when the parameter is absent, so an omitted
// flag filter stays omitted rather than defaulting to false.
func parseBoolParam(c *fiber.Ctx, name string) *bool {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}

func parseSort(c *fiber.Ctx) domain.Sort {
	return domain.Sort{
		Field: c.Query("sort"),
		Order: c.Query("order"),
	}
}

func parsePage(c *fiber.Ctx) domain.Page {
	return domain.Page{
		Page:  parseIntParam(c, "page", 1),
		Limit: parseIntParam(c, "limit", 0),
	}
}

// respondError maps a persistence error onto an HTTP response: typed
// AppErrors carry their own status, anything else is a 500.
func respondError(c *fiber.Ctx, log *zap.Logger, err error, msg string) error {
	log.Error(msg, zap.Error(err))
	status := apperrors.GetStatusCode(err)
	if appErr := apperrors.GetAppError(err); appErr != nil {
		return c.Status(status).JSON(fiber.Map{
			"error":   appErr.Code,
			"message": appErr.Message,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"message": msg,
	})
}

func respondNotFound(c *fiber.Ctx, resource string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error":   "Not Found",
		"message": resource + " not found",
	})
}
