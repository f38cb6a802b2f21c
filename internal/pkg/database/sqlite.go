package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/kolocal/kolocal-api/internal/config"
	apperrors "github.com/kolocal/kolocal-api/internal/pkg/errors"
	"github.com/kolocal/kolocal-api/internal/pkg/logger"
	"github.com/kolocal/kolocal-api/internal/pkg/metrics"
)

// SQLiteDB wraps the embedded SQLite database. SQLite serializes writers
// itself; the handle is safe for concurrent use without extra locking.
type SQLiteDB struct {
	DB *sqlx.DB
}

// NewSQLite opens (or creates) the embedded database file.
func NewSQLite(cfg config.SQLiteConfig) (*SQLiteDB, error) {
	db, err := sqlx.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, apperrors.Connection("failed to open sqlite database").WithError(err)
	}

	// A single writer plus WAL readers is the sweet spot for this driver.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		_ = db.Close()
		return nil, apperrors.Connection("failed to configure sqlite").WithError(err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, apperrors.Connection("failed to configure sqlite").WithError(err)
	}

	logger.Info("opened SQLite database", zap.String("path", cfg.Path))

	return &SQLiteDB{DB: db}, nil
}

// NewSQLiteFromDB wraps an existing database/sql handle. Tests inject
// sqlmock through here; the selector never uses it.
func NewSQLiteFromDB(db *sql.DB, driverName string) *SQLiteDB {
	return &SQLiteDB{DB: sqlx.NewDb(db, driverName)}
}

// Kind reports the backend family.
func (db *SQLiteDB) Kind() Kind {
	return KindSQLite
}

// Query executes a query and returns normalized rows. SQLite consumes the
// '?' placeholders as-is.
func (db *SQLiteDB) Query(ctx context.Context, query string, args ...any) ([]Row, error) {
	op := operation(query)

	start := time.Now()
	rows, err := db.DB.QueryxContext(ctx, query, args...)
	if err != nil {
		metrics.RecordDBError(string(KindSQLite), op)
		return nil, apperrors.Query("sqlite query failed").WithError(err)
	}
	defer rows.Close()

	out, err := NormalizeMapRows(rows)
	metrics.RecordDBQuery(string(KindSQLite), op, time.Since(start))
	if err != nil {
		metrics.RecordDBError(string(KindSQLite), op)
		return nil, apperrors.Query("sqlite query failed").WithError(err)
	}
	return out, nil
}

// Exec executes a statement and returns the number of rows affected.
func (db *SQLiteDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	op := operation(query)

	start := time.Now()
	res, err := db.DB.ExecContext(ctx, query, args...)
	metrics.RecordDBQuery(string(KindSQLite), op, time.Since(start))
	if err != nil {
		metrics.RecordDBError(string(KindSQLite), op)
		return 0, apperrors.Query("sqlite exec failed").WithError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, apperrors.Query("sqlite exec failed").WithError(err)
	}
	return affected, nil
}

// Ping verifies the database file is usable.
func (db *SQLiteDB) Ping(ctx context.Context) error {
	if err := db.DB.PingContext(ctx); err != nil {
		return apperrors.Connection("sqlite unreachable").WithError(err)
	}
	return nil
}

// Close closes the database handle.
func (db *SQLiteDB) Close() error {
	return db.DB.Close()
}
