package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/kolocal/kolocal-api/internal/domain"
	"github.com/kolocal/kolocal-api/internal/repository"
)

// PostsHandler handles blog post read endpoints
type PostsHandler struct {
	repo   *repository.PostRepository
	logger *zap.Logger
}

// NewPostsHandler creates a new posts handler
func NewPostsHandler(repo *repository.PostRepository, logger *zap.Logger) *PostsHandler {
	return &PostsHandler{repo: repo, logger: logger}
}

// ListPosts handles GET /v1/posts
func (h *PostsHandler) ListPosts(c *fiber.Ctx) error {
	filters := domain.PostFilters{
		Category: c.Query("category"),
		Author:   c.Query("author"),
		Featured: parseBoolParam(c, "featured"),
		Search:   c.Query("search"),
	}

	posts, pagination, err := h.repo.List(c.Context(), filters, parseSort(c), parsePage(c))
	if err != nil {
		return respondError(c, h.logger, err, "failed to list posts")
	}
	return c.JSON(pagedResponse{Data: posts, Pagination: pagination})
}

// GetPost handles GET /v1/posts/:slug
func (h *PostsHandler) GetPost(c *fiber.Ctx) error {
	post, err := h.repo.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondError(c, h.logger, err, "failed to get post")
	}
	if post == nil {
		return respondNotFound(c, "post")
	}
	return c.JSON(post)
}

// SearchPosts handles GET /v1/posts/search
func (h *PostsHandler) SearchPosts(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Bad Request",
			"message": "search term required",
		})
	}

	posts, pagination, err := h.repo.Search(c.Context(), term, parsePage(c))
	if err != nil {
		return respondError(c, h.logger, err, "failed to search posts")
	}
	return c.JSON(pagedResponse{Data: posts, Pagination: pagination})
}

// PostStats handles GET /v1/posts/stats
func (h *PostsHandler) PostStats(c *fiber.Ctx) error {
	categories, err := h.repo.CountByCategory(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "failed to count posts by category")
	}
	return c.JSON(fiber.Map{"categories": categories})
}
