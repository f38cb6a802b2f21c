package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/kolocal/kolocal-api/internal/domain"
	"github.com/kolocal/kolocal-api/internal/repository"
)

// PlacesHandler handles place read endpoints
type PlacesHandler struct {
	repo   *repository.PlaceRepository
	logger *zap.Logger
}

// NewPlacesHandler creates a new places handler
func NewPlacesHandler(repo *repository.PlaceRepository, logger *zap.Logger) *PlacesHandler {
	return &PlacesHandler{repo: repo, logger: logger}
}

// ListPlaces handles GET /v1/places
func (h *PlacesHandler) ListPlaces(c *fiber.Ctx) error {
	filters := domain.PlaceFilters{
		Sido:      c.Query("sido"),
		Sigungu:   c.Query("sigungu"),
		Category:  c.Query("category"),
		Verified:  parseBoolParam(c, "verified"),
		Featured:  parseBoolParam(c, "featured"),
		MinRating: parseFloatParam(c, "minRating"),
		Search:    c.Query("search"),
	}

	places, pagination, err := h.repo.List(c.Context(), filters, parseSort(c), parsePage(c))
	if err != nil {
		return respondError(c, h.logger, err, "failed to list places")
	}
	return c.JSON(pagedResponse{Data: places, Pagination: pagination})
}

// GetPlace handles GET /v1/places/:slug
func (h *PlacesHandler) GetPlace(c *fiber.Ctx) error {
	place, err := h.repo.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondError(c, h.logger, err, "failed to get place")
	}
	if place == nil {
		return respondNotFound(c, "place")
	}
	return c.JSON(place)
}

// SearchPlaces handles GET /v1/places/search
func (h *PlacesHandler) SearchPlaces(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Bad Request",
			"message": "search term required",
		})
	}

	places, pagination, err := h.repo.Search(c.Context(), term, parsePage(c))
	if err != nil {
		return respondError(c, h.logger, err, "failed to search places")
	}
	return c.JSON(pagedResponse{Data: places, Pagination: pagination})
}

// PlaceStats handles GET /v1/places/stats
func (h *PlacesHandler) PlaceStats(c *fiber.Ctx) error {
	regions, err := h.repo.CountByRegion(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "failed to count places by region")
	}
	categories, err := h.repo.CountByCategory(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "failed to count places by category")
	}
	return c.JSON(fiber.Map{
		"regions":    regions,
		"categories": categories,
	})
}
