// Package database provides the two interchangeable SQL backends of the
// platform and the selection logic that picks one of them per process.
//
// Repositories speak to a backend only through the Conn interface. SQL is
// written with '?' placeholders; each adapter rebinds to its native
// placeholder style, executes, and hands rows back in the normalized Row
// representation regardless of what shape the client library produced.
package database

import (
	"context"
	"strings"
)

// Kind identifies a backend family.
type Kind string

const (
	// KindPostgres is the remote PostgreSQL backend (pgx pool).
	KindPostgres Kind = "postgres"
	// KindSQLite is the embedded SQLite backend.
	KindSQLite Kind = "sqlite"
)

// Conn is a handle to one backend. A Conn is a process-wide singleton once
// constructed; callers issue queries through it and never mutate it.
// Cancellation and timeouts are delegated to the underlying client.
type Conn interface {
	// Kind reports which backend family this handle belongs to.
	Kind() Kind
	// Query executes a statement with '?' placeholders and bound args and
	// returns the normalized result rows in backend order.
	Query(ctx context.Context, query string, args ...any) ([]Row, error)
	// Exec executes a statement that returns no rows and reports the
	// number of rows affected.
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases the underlying client.
	Close() error
}

// operation derives the metrics label from the leading SQL verb.
func operation(query string) string {
	q := strings.TrimSpace(query)
	if i := strings.IndexAny(q, " \t\n"); i > 0 {
		q = q[:i]
	}
	return strings.ToLower(q)
}
