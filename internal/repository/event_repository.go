package repository

import (
	"context"
	"time"

	"github.com/kolocal/kolocal-api/internal/domain"
	"github.com/kolocal/kolocal-api/internal/pkg/database"
	apperrors "github.com/kolocal/kolocal-api/internal/pkg/errors"
	"github.com/kolocal/kolocal-api/internal/pkg/id"
)

var eventSpec = querySpec{
	table: "events",
	columns: []string{
		"id", "name", "slug", "event_type", "address", "sido", "sigungu",
		"latitude", "longitude", "start_date", "end_date", "website",
		"created_at", "updated_at",
	},
	sortable:    sortableSet("start_date", "end_date", "created_at", "updated_at", "name"),
	defaultSort: "created_at",
	searchable:  []string{"name", "address", "event_type"},
	primary:     "name",
	searchRank:  "start_date DESC",
	updatable: []string{
		"name", "event_type", "address", "sido", "sigungu", "latitude",
		"longitude", "start_date", "end_date", "website",
	},
	defaultLimit: 20,
}

// EventRepository handles event persistence on the bound backend.
type EventRepository struct {
	db database.Conn
}

// NewEventRepository creates a new event repository
func NewEventRepository(db database.Conn) *EventRepository {
	return &EventRepository{db: db}
}

func eventFilterList(f domain.EventFilters) []filter {
	var filters []filter
	if f.Sido != "" {
		filters = append(filters, filter{"sido", "=", f.Sido})
	}
	if f.Sigungu != "" {
		filters = append(filters, filter{"sigungu", "=", f.Sigungu})
	}
	if f.EventType != "" {
		filters = append(filters, filter{"event_type", "=", f.EventType})
	}
	return filters
}

// List returns one page of events matching the filters plus pagination
// metadata; the count query reuses the data query's WHERE clause.
func (r *EventRepository) List(ctx context.Context, f domain.EventFilters, sort domain.Sort, page domain.Page) ([]domain.Event, domain.Pagination, error) {
	where, whereArgs := buildWhere(eventFilterList(f), f.Search, eventSpec.searchable)
	limitSQL, limitArgs, pageN, limitN := eventSpec.paginate(page)

	query := joinSQL("SELECT "+eventSpec.selectList()+" FROM events", where, eventSpec.orderBy(sort), limitSQL)
	args := make([]any, 0, len(whereArgs)+len(limitArgs))
	args = append(args, whereArgs...)
	args = append(args, limitArgs...)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	events := make([]domain.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, rowToEvent(row))
	}

	total, err := countRows(ctx, r.db, "events", where, whereArgs)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	return events, domain.NewPagination(pageN, limitN, total), nil
}

// GetBySlug returns the event with the given slug, or nil when absent.
func (r *EventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	return r.getOne(ctx, "slug = ?", slug)
}

// GetByID returns the event with the given id, or nil when absent.
func (r *EventRepository) GetByID(ctx context.Context, eventID string) (*domain.Event, error) {
	return r.getOne(ctx, "id = ?", eventID)
}

func (r *EventRepository) getOne(ctx context.Context, cond string, args ...any) (*domain.Event, error) {
	query := "SELECT " + eventSpec.selectList() + " FROM events WHERE " + cond + " LIMIT 1"
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	event := rowToEvent(rows[0])
	return &event, nil
}

// Search returns events matching the free-text term, name matches first,
// soonest-starting events breaking ties.
func (r *EventRepository) Search(ctx context.Context, term string, page domain.Page) ([]domain.Event, domain.Pagination, error) {
	where, whereArgs := buildWhere(nil, term, eventSpec.searchable)
	orderSQL, orderArgs := eventSpec.searchOrder(term)
	limitSQL, limitArgs, pageN, limitN := eventSpec.paginate(page)

	query := joinSQL("SELECT "+eventSpec.selectList()+" FROM events", where, orderSQL, limitSQL)
	args := make([]any, 0, len(whereArgs)+len(orderArgs)+len(limitArgs))
	args = append(args, whereArgs...)
	args = append(args, orderArgs...)
	args = append(args, limitArgs...)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	events := make([]domain.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, rowToEvent(row))
	}

	total, err := countRows(ctx, r.db, "events", where, whereArgs)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	return events, domain.NewPagination(pageN, limitN, total), nil
}

// Create inserts an event and returns the freshly read-back row. An event
// whose start date falls after its end date is rejected.
func (r *EventRepository) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if event.StartDate != "" && event.EndDate != "" && event.StartDate > event.EndDate {
		return nil, apperrors.Validation("event start_date must not be after end_date")
	}

	if event.ID == "" {
		event.ID = id.NewUUID()
	}
	if event.Slug == "" {
		event.Slug = id.Slugify(event.Name)
	}
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now

	query := "INSERT INTO events (" + eventSpec.selectList() + ") VALUES (" +
		placeholders(len(eventSpec.columns)) + ")"
	_, err := r.db.Exec(ctx, query,
		event.ID,
		event.Name,
		event.Slug,
		event.EventType,
		event.Address,
		event.Sido,
		event.Sigungu,
		event.Latitude,
		event.Longitude,
		event.StartDate,
		event.EndDate,
		event.Website,
		event.CreatedAt,
		event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, event.ID)
}

// Update applies the whitelisted subset of fields to the event and returns
// the read-back row, or nil when the id matched nothing.
func (r *EventRepository) Update(ctx context.Context, eventID string, fields map[string]any) (*domain.Event, error) {
	query, args := eventSpec.buildUpdate(fields, time.Now().UTC())
	args = append(args, eventID)

	affected, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, eventID)
}

// CountByRegion returns event counts grouped by sido.
func (r *EventRepository) CountByRegion(ctx context.Context) ([]domain.RegionCount, error) {
	rows, err := r.db.Query(ctx,
		"SELECT sido, COUNT(*) AS total FROM events GROUP BY sido ORDER BY total DESC")
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

// CountByType returns event counts grouped by event type.
func (r *EventRepository) CountByType(ctx context.Context) ([]domain.CategoryCount, error) {
	rows, err := r.db.Query(ctx,
		"SELECT event_type, COUNT(*) AS total FROM events GROUP BY event_type ORDER BY total DESC")
	if err != nil {
		return nil, err
	}
	counts := make([]domain.CategoryCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, domain.CategoryCount{
			Category: asString(row.Get("event_type")),
			Count:    asInt(row.Get("total")),
		})
	}
	return counts, nil
}

func rowToEvent(row database.Row) domain.Event {
	return domain.Event{
		ID:        asString(row.Get("id")),
		Name:      asString(row.Get("name")),
		Slug:      asString(row.Get("slug")),
		EventType: asString(row.Get("event_type")),
		Address:   asString(row.Get("address")),
		Sido:      asString(row.Get("sido")),
		Sigungu:   asString(row.Get("sigungu")),
		Latitude:  asFloat(row.Get("latitude")),
		Longitude: asFloat(row.Get("longitude")),
		StartDate: asString(row.Get("start_date")),
		EndDate:   asString(row.Get("end_date")),
		Website:   asString(row.Get("website")),
		CreatedAt: asTime(row.Get("created_at")),
		UpdatedAt: asTime(row.Get("updated_at")),
	}
}
