package database

import (
	"github.com/jackc/pgx/v5"
	"github.com/jmoiron/sqlx"
)

// Row is the canonical result-row representation shared by every
// repository: an ordered mapping of column name to value. Values pass
// through exactly as the backend returned them; interpreting a 0/1
// integer as a boolean is the caller's job.
type Row struct {
	columns []string
	values  map[string]any
}

// NewRow builds a Row from parallel column and value slices. When the
// slices disagree in length the extra entries on either side are dropped,
// so a column the backend never returned is simply absent.
func NewRow(columns []string, values []any) Row {
	n := len(columns)
	if len(values) < n {
		n = len(values)
	}
	r := Row{
		columns: make([]string, n),
		values:  make(map[string]any, n),
	}
	copy(r.columns, columns[:n])
	for i := 0; i < n; i++ {
		r.values[columns[i]] = values[i]
	}
	return r
}

// Columns returns the column names in backend order.
func (r Row) Columns() []string {
	return r.columns
}

// Get returns the value for a column, or nil when the column is absent.
func (r Row) Get(name string) any {
	return r.values[name]
}

// Has reports whether the backend returned the column at all, which is
// distinct from the column being present with a NULL value.
func (r Row) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Len returns the number of columns in the row.
func (r Row) Len() int {
	return len(r.columns)
}

// NormalizePgxRows converts a pgx result set, which exposes column
// descriptors and row values as separate parallel sequences, into
// normalized rows. Row order is preserved. The caller retains ownership
// of rows and must close it.
func NormalizePgxRows(rows pgx.Rows) ([]Row, error) {
	descs := rows.FieldDescriptions()
	columns := make([]string, len(descs))
	for i, d := range descs {
		columns[i] = d.Name
	}

	var out []Row
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		out = append(out, NewRow(columns, values))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// NormalizeMapRows converts a database/sql result set, whose rows arrive
// already keyed by column name via sqlx MapScan, into normalized rows.
// Column order comes from the result set itself.
func NormalizeMapRows(rows *sqlx.Rows) ([]Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []Row
	for rows.Next() {
		m := make(map[string]any, len(columns))
		if err := rows.MapScan(m); err != nil {
			return nil, err
		}
		r := Row{
			columns: make([]string, 0, len(columns)),
			values:  make(map[string]any, len(m)),
		}
		for _, c := range columns {
			if v, ok := m[c]; ok {
				r.columns = append(r.columns, c)
				r.values[c] = v
			}
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
