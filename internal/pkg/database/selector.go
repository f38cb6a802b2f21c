package database

import (
	"context"
	"sync"

	"github.com/kolocal/kolocal-api/internal/config"
	apperrors "github.com/kolocal/kolocal-api/internal/pkg/errors"
)

// Construction hooks, replaced in tests with fake handles.
var (
	openPostgres = func(ctx context.Context, cfg config.PostgresConfig) (Conn, error) {
		return NewPostgres(ctx, cfg)
	}
	openSQLite = func(cfg config.SQLiteConfig) (Conn, error) {
		return NewSQLite(cfg)
	}
)

var (
	selectMu sync.Mutex
	// One memoized handle per backend kind, so repeated selection within a
	// process reuses the connection instead of redialing.
	selected map[Kind]Conn
)

// Select resolves the process backend in fixed priority order: the remote
// PostgreSQL backend when its URL and auth token are configured, otherwise
// the embedded SQLite backend, otherwise a configuration error. The caller
// can always tell "no data" from "no database": an unconfigured process
// never gets a handle that silently returns empty results.
func Select(ctx context.Context, cfg *config.Config) (Conn, error) {
	selectMu.Lock()
	defer selectMu.Unlock()

	if selected == nil {
		selected = make(map[Kind]Conn)
	}

	switch {
	case cfg.Postgres.Configured():
		if conn, ok := selected[KindPostgres]; ok {
			return conn, nil
		}
		conn, err := openPostgres(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		selected[KindPostgres] = conn
		return conn, nil

	case cfg.SQLite.Configured():
		if conn, ok := selected[KindSQLite]; ok {
			return conn, nil
		}
		conn, err := openSQLite(cfg.SQLite)
		if err != nil {
			return nil, err
		}
		selected[KindSQLite] = conn
		return conn, nil

	default:
		return nil, apperrors.Configuration(
			"no database backend configured: set DATABASE_URL and DATABASE_AUTH_TOKEN, or SQLITE_PATH")
	}
}

// resetSelection drops memoized handles. Test helper.
func resetSelection() {
	selectMu.Lock()
	defer selectMu.Unlock()
	selected = nil
}
