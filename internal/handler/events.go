package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/kolocal/kolocal-api/internal/domain"
	"github.com/kolocal/kolocal-api/internal/repository"
)

// EventsHandler handles event read endpoints
type EventsHandler struct {
	repo   *repository.EventRepository
	logger *zap.Logger
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(repo *repository.EventRepository, logger *zap.Logger) *EventsHandler {
	return &EventsHandler{repo: repo, logger: logger}
}

// ListEvents handles GET /v1/events
func (h *EventsHandler) ListEvents(c *fiber.Ctx) error {
	filters := domain.EventFilters{
		Sido:      c.Query("sido"),
		Sigungu:   c.Query("sigungu"),
		EventType: c.Query("type"),
		Search:    c.Query("search"),
	}

	events, pagination, err := h.repo.List(c.Context(), filters, parseSort(c), parsePage(c))
	if err != nil {
		return respondError(c, h.logger, err, "failed to list events")
	}
	return c.JSON(pagedResponse{Data: events, Pagination: pagination})
}

// GetEvent handles GET /v1/events/:slug
func (h *EventsHandler) GetEvent(c *fiber.Ctx) error {
	event, err := h.repo.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondError(c, h.logger, err, "failed to get event")
	}
	if event == nil {
		return respondNotFound(c, "event")
	}
	return c.JSON(event)
}

// SearchEvents handles GET /v1/events/search
func (h *EventsHandler) SearchEvents(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Bad Request",
			"message": "search term required",
		})
	}

	events, pagination, err := h.repo.Search(c.Context(), term, parsePage(c))
	if err != nil {
		return respondError(c, h.logger, err, "failed to search events")
	}
	return c.JSON(pagedResponse{Data: events, Pagination: pagination})
}

// EventStats handles GET /v1/events/stats
func (h *EventsHandler) EventStats(c *fiber.Ctx) error {
	regions, err := h.repo.CountByRegion(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "failed to count events by region")
	}
	types, err := h.repo.CountByType(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "failed to count events by type")
	}
	return c.JSON(fiber.Map{
		"regions": regions,
		"types":   types,
	})
}
