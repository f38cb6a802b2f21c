package repository

import (
	"context"
	"time"

	"github.com/kolocal/kolocal-api/internal/domain"
	"github.com/kolocal/kolocal-api/internal/pkg/database"
	"github.com/kolocal/kolocal-api/internal/pkg/id"
)

var postSpec = querySpec{
	table: "posts",
	columns: []string{
		"id", "title", "slug", "excerpt", "content", "author", "date",
		"category", "image", "tags", "featured", "thumbnail_url",
		"thumbnail_prompt", "created_at", "updated_at",
	},
	sortable:    sortableSet("date", "created_at", "updated_at", "title", "featured"),
	defaultSort: "date",
	searchable:  []string{"title", "excerpt", "content"},
	primary:     "title",
	searchRank:  "featured DESC, date DESC",
	updatable: []string{
		"title", "excerpt", "content", "author", "date", "category",
		"image", "tags", "featured", "thumbnail_url", "thumbnail_prompt",
	},
	defaultLimit: 12,
}

// PostRepository handles blog post persistence on the bound backend.
type PostRepository struct {
	db database.Conn
}

// NewPostRepository creates a new post repository
func NewPostRepository(db database.Conn) *PostRepository {
	return &PostRepository{db: db}
}

func postFilterList(f domain.PostFilters) []filter {
	var filters []filter
	if f.Category != "" {
		filters = append(filters, filter{"category", "=", f.Category})
	}
	if f.Author != "" {
		filters = append(filters, filter{"author", "=", f.Author})
	}
	if f.Featured != nil {
		filters = append(filters, filter{"featured", "=", *f.Featured})
	}
	return filters
}

// List returns one page of posts matching the filters plus pagination
// metadata; the count query reuses the data query's WHERE clause.
func (r *PostRepository) List(ctx context.Context, f domain.PostFilters, sort domain.Sort, page domain.Page) ([]domain.Post, domain.Pagination, error) {
	where, whereArgs := buildWhere(postFilterList(f), f.Search, postSpec.searchable)
	limitSQL, limitArgs, pageN, limitN := postSpec.paginate(page)

	query := joinSQL("SELECT "+postSpec.selectList()+" FROM posts", where, postSpec.orderBy(sort), limitSQL)
	args := make([]any, 0, len(whereArgs)+len(limitArgs))
	args = append(args, whereArgs...)
	args = append(args, limitArgs...)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	posts := make([]domain.Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, rowToPost(row))
	}

	total, err := countRows(ctx, r.db, "posts", where, whereArgs)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	return posts, domain.NewPagination(pageN, limitN, total), nil
}

// GetBySlug returns the post with the given slug, or nil when absent.
func (r *PostRepository) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	return r.getOne(ctx, "slug = ?", slug)
}

// GetByID returns the post with the given id, or nil when absent.
func (r *PostRepository) GetByID(ctx context.Context, postID string) (*domain.Post, error) {
	return r.getOne(ctx, "id = ?", postID)
}

func (r *PostRepository) getOne(ctx context.Context, cond string, args ...any) (*domain.Post, error) {
	query := "SELECT " + postSpec.selectList() + " FROM posts WHERE " + cond + " LIMIT 1"
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	post := rowToPost(rows[0])
	return &post, nil
}

// Search returns posts matching the free-text term, title matches first,
// featured and recent posts breaking ties.
func (r *PostRepository) Search(ctx context.Context, term string, page domain.Page) ([]domain.Post, domain.Pagination, error) {
	where, whereArgs := buildWhere(nil, term, postSpec.searchable)
	orderSQL, orderArgs := postSpec.searchOrder(term)
	limitSQL, limitArgs, pageN, limitN := postSpec.paginate(page)

	query := joinSQL("SELECT "+postSpec.selectList()+" FROM posts", where, orderSQL, limitSQL)
	args := make([]any, 0, len(whereArgs)+len(orderArgs)+len(limitArgs))
	args = append(args, whereArgs...)
	args = append(args, orderArgs...)
	args = append(args, limitArgs...)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	posts := make([]domain.Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, rowToPost(row))
	}

	total, err := countRows(ctx, r.db, "posts", where, whereArgs)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	return posts, domain.NewPagination(pageN, limitN, total), nil
}

// Create inserts a post and returns the freshly read-back row.
func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	if post.ID == "" {
		post.ID = id.NewUUID()
	}
	if post.Slug == "" {
		post.Slug = id.Slugify(post.Title)
	}
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	query := "INSERT INTO posts (" + postSpec.selectList() + ") VALUES (" +
		placeholders(len(postSpec.columns)) + ")"
	_, err := r.db.Exec(ctx, query,
		post.ID,
		post.Title,
		post.Slug,
		post.Excerpt,
		post.Content,
		post.Author,
		post.Date,
		post.Category,
		post.Image,
		encodeTags(post.Tags),
		post.Featured,
		post.ThumbnailURL,
		post.ThumbnailPrompt,
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, post.ID)
}

// Update applies the whitelisted subset of fields to the post and returns
// the read-back row, or nil when the id matched nothing.
func (r *PostRepository) Update(ctx context.Context, postID string, fields map[string]any) (*domain.Post, error) {
	if tags, ok := fields["tags"].([]string); ok {
		fields["tags"] = encodeTags(tags)
	}

	query, args := postSpec.buildUpdate(fields, time.Now().UTC())
	args = append(args, postID)

	affected, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, postID)
}

// CountByCategory returns post counts grouped by category.
func (r *PostRepository) CountByCategory(ctx context.Context) ([]domain.CategoryCount, error) {
	rows, err := r.db.Query(ctx,
		"SELECT category, COUNT(*) AS total FROM posts GROUP BY category ORDER BY total DESC")
	if err != nil {
		return nil, err
	}
	counts := make([]domain.CategoryCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, domain.CategoryCount{
			Category: asString(row.Get("category")),
			Count:    asInt(row.Get("total")),
		})
	}
	return counts, nil
}

func rowToPost(row database.Row) domain.Post {
	return domain.Post{
		ID:              asString(row.Get("id")),
		Title:           asString(row.Get("title")),
		Slug:            asString(row.Get("slug")),
		Excerpt:         asString(row.Get("excerpt")),
		Content:         asString(row.Get("content")),
		Author:          asString(row.Get("author")),
		Date:            asString(row.Get("date")),
		Category:        asString(row.Get("category")),
		Image:           asString(row.Get("image")),
		Tags:            asTags(row.Get("tags")),
		Featured:        asBool(row.Get("featured")),
		ThumbnailURL:    asString(row.Get("thumbnail_url")),
		ThumbnailPrompt: asString(row.Get("thumbnail_prompt")),
		CreatedAt:       asTime(row.Get("created_at")),
		UpdatedAt:       asTime(row.Get("updated_at")),
	}
}
