package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.IsDevelopment())

	// Neither backend may default to a usable location.
	assert.False(t, cfg.Postgres.Configured())
	assert.False(t, cfg.SQLite.Configured())
	assert.Equal(t, int32(25), cfg.Postgres.MaxConns)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db.example.com/kolocal")
	t.Setenv("DATABASE_AUTH_TOKEN", "secret")
	t.Setenv("SQLITE_PATH", "/var/lib/kolocal/local.db")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://db.example.com/kolocal", cfg.Postgres.URL)
	assert.Equal(t, "secret", cfg.Postgres.AuthToken)
	assert.True(t, cfg.Postgres.Configured())
	assert.Equal(t, "/var/lib/kolocal/local.db", cfg.SQLite.Path)
	assert.True(t, cfg.SQLite.Configured())
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestPostgresConfig_Configured(t *testing.T) {
	assert.False(t, PostgresConfig{URL: "postgres://db"}.Configured())
	assert.False(t, PostgresConfig{AuthToken: "secret"}.Configured())
	assert.True(t, PostgresConfig{URL: "postgres://db", AuthToken: "secret"}.Configured())
}
