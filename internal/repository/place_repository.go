package repository

import (
	"context"
	"time"

	"github.com/kolocal/kolocal-api/internal/domain"
	"github.com/kolocal/kolocal-api/internal/pkg/database"
	"github.com/kolocal/kolocal-api/internal/pkg/id"
)

var placeSpec = querySpec{
	table: "places",
	columns: []string{
		"id", "name", "slug", "category", "subcategory", "description",
		"address", "sido", "sigungu", "latitude", "longitude", "phone",
		"website", "overall_rating", "review_count", "verified", "featured",
		"source", "created_at", "updated_at",
	},
	sortable: sortableSet(
		"created_at", "updated_at", "overall_rating", "review_count",
		"name", "featured",
	),
	defaultSort: "created_at",
	searchable:  []string{"name", "description", "address", "category"},
	primary:     "name",
	searchRank:  "overall_rating DESC",
	updatable: []string{
		"name", "category", "subcategory", "description", "address",
		"sido", "sigungu", "latitude", "longitude", "phone", "website",
		"overall_rating", "review_count", "verified", "featured", "source",
	},
	defaultLimit: 20,
}

// PlaceRepository handles place persistence on the bound backend.
type PlaceRepository struct {
	db database.Conn
}

// NewPlaceRepository creates a new place repository
func NewPlaceRepository(db database.Conn) *PlaceRepository {
	return &PlaceRepository{db: db}
}

// placeFilterList maps the closed filter set to predicates. Absent fields
// contribute nothing.
func placeFilterList(f domain.PlaceFilters) []filter {
	var filters []filter
	if f.Sido != "" {
		filters = append(filters, filter{"sido", "=", f.Sido})
	}
	if f.Sigungu != "" {
		filters = append(filters, filter{"sigungu", "=", f.Sigungu})
	}
	if f.Category != "" {
		filters = append(filters, filter{"category", "=", f.Category})
	}
	if f.Verified != nil {
		filters = append(filters, filter{"verified", "=", *f.Verified})
	}
	if f.Featured != nil {
		filters = append(filters, filter{"featured", "=", *f.Featured})
	}
	if f.MinRating > 0 {
		filters = append(filters, filter{"overall_rating", ">=", f.MinRating})
	}
	return filters
}

// List returns one page of places matching the filters, plus pagination
// metadata. The data and count queries share the same WHERE clause and
// parameters; the count runs after the data page on the same handle, so
// total matches the filtered universe, though a concurrent writer between
// the two queries is not excluded.
func (r *PlaceRepository) List(ctx context.Context, f domain.PlaceFilters, sort domain.Sort, page domain.Page) ([]domain.Place, domain.Pagination, error) {
	where, whereArgs := buildWhere(placeFilterList(f), f.Search, placeSpec.searchable)
	limitSQL, limitArgs, pageN, limitN := placeSpec.paginate(page)

	query := joinSQL("SELECT "+placeSpec.selectList()+" FROM places", where, placeSpec.orderBy(sort), limitSQL)
	args := make([]any, 0, len(whereArgs)+len(limitArgs))
	args = append(args, whereArgs...)
	args = append(args, limitArgs...)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	places := make([]domain.Place, 0, len(rows))
	for _, row := range rows {
		places = append(places, rowToPlace(row))
	}

	total, err := countRows(ctx, r.db, "places", where, whereArgs)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	return places, domain.NewPagination(pageN, limitN, total), nil
}

// GetBySlug returns the place with the given slug, or nil when absent.
func (r *PlaceRepository) GetBySlug(ctx context.Context, slug string) (*domain.Place, error) {
	return r.getOne(ctx, "slug = ?", slug)
}

// GetByID returns the place with the given id, or nil when absent.
func (r *PlaceRepository) GetByID(ctx context.Context, placeID string) (*domain.Place, error) {
	return r.getOne(ctx, "id = ?", placeID)
}

func (r *PlaceRepository) getOne(ctx context.Context, cond string, args ...any) (*domain.Place, error) {
	query := "SELECT " + placeSpec.selectList() + " FROM places WHERE " + cond + " LIMIT 1"
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	place := rowToPlace(rows[0])
	return &place, nil
}

// Search returns places matching the free-text term, ranked so that name
// matches come before matches in secondary text columns, ties broken by
// rating descending.
func (r *PlaceRepository) Search(ctx context.Context, term string, page domain.Page) ([]domain.Place, domain.Pagination, error) {
	where, whereArgs := buildWhere(nil, term, placeSpec.searchable)
	orderSQL, orderArgs := placeSpec.searchOrder(term)
	limitSQL, limitArgs, pageN, limitN := placeSpec.paginate(page)

	query := joinSQL("SELECT "+placeSpec.selectList()+" FROM places", where, orderSQL, limitSQL)
	args := make([]any, 0, len(whereArgs)+len(orderArgs)+len(limitArgs))
	args = append(args, whereArgs...)
	args = append(args, orderArgs...)
	args = append(args, limitArgs...)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	places := make([]domain.Place, 0, len(rows))
	for _, row := range rows {
		places = append(places, rowToPlace(row))
	}

	total, err := countRows(ctx, r.db, "places", where, whereArgs)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	return places, domain.NewPagination(pageN, limitN, total), nil
}

// Create inserts a place and returns the freshly read-back row, so the
// caller observes exactly what was persisted including backend-side
// coercions. A place with the same (name, address) pair already present
// is returned as-is instead of being duplicated.
func (r *PlaceRepository) Create(ctx context.Context, place *domain.Place) (*domain.Place, error) {
	existing, err := r.getOne(ctx, "name = ? AND address = ?", place.Name, place.Address)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	if place.ID == "" {
		place.ID = id.NewUUID()
	}
	if place.Slug == "" {
		place.Slug = id.Slugify(place.Name)
	}
	now := time.Now().UTC()
	place.CreatedAt = now
	place.UpdatedAt = now

	query := "INSERT INTO places (" + placeSpec.selectList() + ") VALUES (" +
		placeholders(len(placeSpec.columns)) + ")"
	_, err = r.db.Exec(ctx, query,
		place.ID,
		place.Name,
		place.Slug,
		place.Category,
		place.Subcategory,
		place.Description,
		place.Address,
		place.Sido,
		place.Sigungu,
		place.Latitude,
		place.Longitude,
		place.Phone,
		place.Website,
		place.OverallRating,
		place.ReviewCount,
		place.Verified,
		place.Featured,
		place.Source,
		place.CreatedAt,
		place.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, place.ID)
}

// Update applies the whitelisted subset of fields to the place and returns
// the read-back row, or nil when the id matched nothing. updated_at is
// always re-stamped.
func (r *PlaceRepository) Update(ctx context.Context, placeID string, fields map[string]any) (*domain.Place, error) {
	query, args := placeSpec.buildUpdate(fields, time.Now().UTC())
	args = append(args, placeID)

	affected, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, placeID)
}

// Delete removes a place. Used only by maintenance tooling; deleting an
// unknown id is not an error.
func (r *PlaceRepository) Delete(ctx context.Context, placeID string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM places WHERE id = ?", placeID)
	return err
}

// CountByRegion returns place counts grouped by sido for the statistics
// displays.
func (r *PlaceRepository) CountByRegion(ctx context.Context) ([]domain.RegionCount, error) {
	rows, err := r.db.Query(ctx,
		"SELECT sido, COUNT(*) AS total FROM places GROUP BY sido ORDER BY total DESC")
	if err != nil {
		return nil, err
	}
	counts := make([]domain.RegionCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, domain.RegionCount{
			Sido:  asString(row.Get("sido")),
			Count: asInt(row.Get("total")),
		})
	}
	return counts, nil
}

// CountByCategory returns place counts grouped by category.
func (r *PlaceRepository) CountByCategory(ctx context.Context) ([]domain.CategoryCount, error) {
	rows, err := r.db.Query(ctx,
		"SELECT category, COUNT(*) AS total FROM places GROUP BY category ORDER BY total DESC")
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

func rowToPlace(row database.Row) domain.Place {
	return domain.Place{
		ID:            asString(row.Get("id")),
		Name:          asString(row.Get("name")),
		Slug:          asString(row.Get("slug")),
		Category:      asString(row.Get("category")),
		Subcategory:   asString(row.Get("subcategory")),
		Description:   asString(row.Get("description")),
		Address:       asString(row.Get("address")),
		Sido:          asString(row.Get("sido")),
		Sigungu:       asString(row.Get("sigungu")),
		Latitude:      asFloat(row.Get("latitude")),
		Longitude:     asFloat(row.Get("longitude")),
		Phone:         asString(row.Get("phone")),
		Website:       asString(row.Get("website")),
		OverallRating: asFloat(row.Get("overall_rating")),
		ReviewCount:   asInt(row.Get("review_count")),
		Verified:      asBool(row.Get("verified")),
		Featured:      asBool(row.Get("featured")),
		Source:        asString(row.Get("source")),
		CreatedAt:     asTime(row.Get("created_at")),
		UpdatedAt:     asTime(row.Get("updated_at")),
	}
}
