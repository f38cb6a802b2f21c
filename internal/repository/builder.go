package repository

import (
	"context"
	"strings"

	"github.com/kolocal/kolocal-api/internal/domain"
	"github.com/kolocal/kolocal-api/internal/pkg/database"
)

// filter is one predicate of an entity's closed filter set. Column names
// come only from the per-entity specs below, never from callers.
type filter struct {
	column string
	op     string // "=" or ">="
	value  any
}

// querySpec declares, once per entity, every column name that may appear
// in dynamic SQL: the select list, the sortable and updatable whitelists,
// and the searchable text columns. The whitelists are the sole injection
// defense for the dynamic part of a query; caller input is only ever
// matched against them or bound as a parameter.
type querySpec struct {
	table       string
	columns     []string
	sortable    map[string]struct{}
	defaultSort string
	searchable  []string
	// primary is the display column ranked first in search results;
	// searchRank breaks ties between rows matching only secondary columns.
	primary    string
	searchRank string
	// updatable is ordered so generated UPDATE statements are deterministic.
	updatable    []string
	defaultLimit int
}

func sortableSet(columns ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		m[c] = struct{}{}
	}
	return m
}

// buildWhere assembles the WHERE clause from present filters plus an
// optional free-text search term. Filters join with AND; the search term
// expands to an OR group of LIKE predicates over the fixed searchable
// columns, combined with the filters via AND so search narrows within
// them. Every value is a bound parameter.
func buildWhere(filters []filter, search string, searchable []string) (string, []any) {
	var conditions []string
	var args []any

	for _, f := range filters {
		conditions = append(conditions, f.column+" "+f.op+" ?")
		args = append(args, f.value)
	}

	if search != "" && len(searchable) > 0 {
		pattern := "%" + search + "%"
		likes := make([]string, len(searchable))
		for i, col := range searchable {
			likes[i] = col + " LIKE ?"
			args = append(args, pattern)
		}
		conditions = append(conditions, "("+strings.Join(likes, " OR ")+")")
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// orderBy validates the requested sort field against the whitelist and
// silently falls back to the entity default, descending, when the field is
// unknown. Direction is normalized to exactly ASC or DESC.
func (s querySpec) orderBy(sort domain.Sort) string {
	field := sort.Field
	order := strings.ToUpper(strings.TrimSpace(sort.Order))
	if order != "ASC" && order != "DESC" {
		order = "DESC"
	}
	if _, ok := s.sortable[field]; !ok {
		field = s.defaultSort
		order = "DESC"
	}
	return "ORDER BY " + field + " " + order
}

// searchOrder ranks rows whose primary display column matches the term
// ahead of rows matching only secondary columns, then applies the entity's
// tie-break ordering. The term is bound, not interpolated.
func (s querySpec) searchOrder(term string) (string, []any) {
	return "ORDER BY CASE WHEN " + s.primary + " LIKE ? THEN 0 ELSE 1 END, " + s.searchRank,
		[]any{"%" + term + "%"}
}

// paginate converts a 1-based page request into LIMIT/OFFSET parameters.
// Non-positive pages clamp to 1 and non-positive limits to the entity
// default; an over-large page simply yields an empty page, never an error.
func (s querySpec) paginate(p domain.Page) (string, []any, int, int) {
	page := p.Page
	if page < 1 {
		page = 1
	}
	limit := p.Limit
	if limit < 1 {
		limit = s.defaultLimit
	}
	offset := (page - 1) * limit
	return "LIMIT ? OFFSET ?", []any{limit, offset}, page, limit
}

// selectList returns the entity's full column list for SELECT statements.
func (s querySpec) selectList() string {
	return strings.Join(s.columns, ", ")
}

// buildUpdate assembles an UPDATE restricted to the entity's mutable
// columns. Keys of fields that are not whitelisted are dropped, mirroring
// the sort whitelist rationale. updated_at is always re-stamped; the
// returned args end with the updated_at value, leaving the caller to
// append the WHERE key.
func (s querySpec) buildUpdate(fields map[string]any, updatedAt any) (string, []any) {
	var sets []string
	var args []any
	for _, col := range s.updatable {
		if v, ok := fields[col]; ok {
			sets = append(sets, col+" = ?")
			args = append(args, v)
		}
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, updatedAt)
	return "UPDATE " + s.table + " SET " + strings.Join(sets, ", ") + " WHERE id = ?", args
}

// joinSQL joins non-empty SQL fragments with single spaces, so an absent
// WHERE clause does not leave double spacing behind.
func joinSQL(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// placeholders returns n comma-separated '?' markers.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?, ", n-1) + "?"
}

// countRows runs the COUNT(*) companion of a data query, reusing the
// already-built WHERE clause and its parameters so the reported total
// describes the same universe the page was drawn from.
func countRows(ctx context.Context, db database.Conn, table, where string, args []any) (int, error) {
	query := "SELECT COUNT(*) AS total FROM " + table
	if where != "" {
		query += " " + where
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return asInt(rows[0].Get("total")), nil
}
