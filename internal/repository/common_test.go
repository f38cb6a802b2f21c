package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/kolocal/kolocal-api/internal/pkg/database"
)

// newMockConn returns a Conn backed by sqlmock with exact query matching,
// so tests can assert the generated SQL verbatim, placeholders included.
func newMockConn(t *testing.T) (database.Conn, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return database.NewSQLiteFromDB(db, "sqlmock"), mock
}

// countResult builds the single-row result of a COUNT(*) companion query.
func countResult(total int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"total"}).AddRow(total)
}

// placeResult builds full place rows, one per slug, shaped the way the
// embedded backend returns them: integer booleans and text timestamps.
func placeResult(slugs ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows(placeSpec.columns)
	for i, slug := range slugs {
		rows.AddRow(
			"place-"+slug, "Place "+slug, slug, "restaurant", "korean",
			"A place worth the trip.", "123 Teheran-ro", "서울특별시", "강남구",
			37.4979, 127.0276, "02-1234-5678", "https://example.com",
			4.5, int64(10+i), int64(1), int64(0), "seed",
			"2025-03-01 12:00:00", "2025-03-01 12:00:00",
		)
	}
	return rows
}

// postResult builds full post rows, one per slug.
func postResult(slugs ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows(postSpec.columns)
	for _, slug := range slugs {
		rows.AddRow(
			"post-"+slug, "Post "+slug, slug, "Short excerpt.", "Long body.",
			"editor", "2025-02-14", "travel", "cover.jpg",
			`["camping","family"]`, int64(1), "", "",
			"2025-02-14 09:00:00", "2025-02-14 09:00:00",
		)
	}
	return rows
}

// eventResult builds full event rows, one per slug.
func eventResult(slugs ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows(eventSpec.columns)
	for _, slug := range slugs {
		rows.AddRow(
			"event-"+slug, "Event "+slug, slug, "festival", "1 Haeundae-ro",
			"부산광역시", "해운대구", 35.1587, 129.1604,
			"2025-06-01", "2025-06-03", "https://example.com/festival",
			"2025-03-01 12:00:00", "2025-03-01 12:00:00",
		)
	}
	return rows
}
