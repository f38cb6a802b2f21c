package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/kolocal/kolocal-api/internal/config"
	apperrors "github.com/kolocal/kolocal-api/internal/pkg/errors"
	"github.com/kolocal/kolocal-api/internal/pkg/logger"
	"github.com/kolocal/kolocal-api/internal/pkg/metrics"
)

// PostgresDB wraps a PostgreSQL connection pool
type PostgresDB struct {
	Pool *pgxpool.Pool
}

// NewPostgres creates a new PostgreSQL connection pool from the configured
// URL and auth token.
func NewPostgres(ctx context.Context, cfg config.PostgresConfig) (*PostgresDB, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, apperrors.Configuration("invalid database URL").WithError(err)
	}

	// The auth token doubles as the password when the URL carries none.
	if poolConfig.ConnConfig.Password == "" {
		poolConfig.ConnConfig.Password = cfg.AuthToken
	}

	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConfig.MinConns = cfg.MinConns
	}
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, apperrors.Connection("failed to create postgres pool").WithError(err)
	}

	// Test connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, apperrors.Connection("failed to ping postgres").WithError(err)
	}

	logger.Info("connected to PostgreSQL",
		zap.String("host", poolConfig.ConnConfig.Host),
		zap.String("database", poolConfig.ConnConfig.Database),
		zap.Int32("max_conns", poolConfig.MaxConns),
	)

	return &PostgresDB{Pool: pool}, nil
}

// Kind reports the backend family.
func (db *PostgresDB) Kind() Kind {
	return KindPostgres
}

// Query executes a query and returns normalized rows. The incoming SQL
// uses '?' placeholders and is rebound to $n here.
func (db *PostgresDB) Query(ctx context.Context, query string, args ...any) ([]Row, error) {
	op := operation(query)
	bound := sqlx.Rebind(sqlx.DOLLAR, query)

	start := time.Now()
	rows, err := db.Pool.Query(ctx, bound, args...)
	if err != nil {
		metrics.RecordDBError(string(KindPostgres), op)
		return nil, apperrors.Query("postgres query failed").WithError(err)
	}
	defer rows.Close()

	out, err := NormalizePgxRows(rows)
	metrics.RecordDBQuery(string(KindPostgres), op, time.Since(start))
	if err != nil {
		metrics.RecordDBError(string(KindPostgres), op)
		return nil, apperrors.Query("postgres query failed").WithError(err)
	}
	return out, nil
}

// Exec executes a statement and returns the number of rows affected.
func (db *PostgresDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	op := operation(query)
	bound := sqlx.Rebind(sqlx.DOLLAR, query)

	start := time.Now()
	tag, err := db.Pool.Exec(ctx, bound, args...)
	metrics.RecordDBQuery(string(KindPostgres), op, time.Since(start))
	if err != nil {
		metrics.RecordDBError(string(KindPostgres), op)
		return 0, apperrors.Query("postgres exec failed").WithError(err)
	}
	return tag.RowsAffected(), nil
}

// Ping verifies the backend is reachable.
func (db *PostgresDB) Ping(ctx context.Context) error {
	if err := db.Pool.Ping(ctx); err != nil {
		return apperrors.Connection("postgres unreachable").WithError(err)
	}
	return nil
}

// Close closes the connection pool
func (db *PostgresDB) Close() error {
	if db.Pool != nil {
		db.Pool.Close()
	}
	return nil
}
