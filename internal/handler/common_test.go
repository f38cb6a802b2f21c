package handler

import (
	"context"
	"strings"

	"github.com/kolocal/kolocal-api/internal/pkg/database"
)

// stubConn is a canned backend: data queries return rows, COUNT companions
// return total, Exec reports affected.
type stubConn struct {
	rows     []database.Row
	total    int64
	affected int64
	queryErr error
	pingErr  error
	queries  []string
}

func (s *stubConn) Kind() database.Kind { return database.KindSQLite }

func (s *stubConn) Query(ctx context.Context, query string, args ...any) ([]database.Row, error) {
	s.queries = append(s.queries, query)
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	if strings.HasPrefix(query, "SELECT COUNT(*)") {
		return []database.Row{database.NewRow([]string{"total"}, []any{s.total})}, nil
	}
	return s.rows, nil
}

func (s *stubConn) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	s.queries = append(s.queries, query)
	return s.affected, s.queryErr
}

func (s *stubConn) Ping(ctx context.Context) error { return s.pingErr }
func (s *stubConn) Close() error                   { return nil }

func placeRow(slug string) database.Row {
	return database.NewRow(
		[]string{"id", "name", "slug", "sido", "overall_rating", "verified"},
		[]any{"place-" + slug, "Place " + slug, slug, "서울특별시", 4.5, int64(1)},
	)
}

func postRow(slug string) database.Row {
	return database.NewRow(
		[]string{"id", "title", "slug", "category", "tags", "featured"},
		[]any{"post-" + slug, "Post " + slug, slug, "travel", `["camping"]`, int64(0)},
	)
}

func eventRow(slug string) database.Row {
	return database.NewRow(
		[]string{"id", "name", "slug", "event_type", "start_date", "end_date"},
		[]any{"event-" + slug, "Event " + slug, slug, "festival", "2025-06-01", "2025-06-03"},
	)
}
