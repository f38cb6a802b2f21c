package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read from environment variables
	v.SetEnvPrefix("")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Optionally read from config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/kolocal")

	// Ignore error if config file not found
	_ = v.ReadInConfig()

	var cfg Config

	// Server
	cfg.Server.Host = v.GetString("server_host")
	cfg.Server.Port = v.GetInt("server_port")
	cfg.Server.Env = v.GetString("server_env")

	// PostgreSQL (remote backend)
	cfg.Postgres.URL = v.GetString("database_url")
	cfg.Postgres.AuthToken = v.GetString("database_auth_token")
	cfg.Postgres.MaxConns = int32(v.GetInt("database_max_conns"))
	cfg.Postgres.MinConns = int32(v.GetInt("database_min_conns"))

	// SQLite (embedded backend)
	cfg.SQLite.Path = v.GetString("sqlite_path")

	// Logging
	cfg.Log.Level = v.GetString("log_level")
	cfg.Log.Format = v.GetString("log_format")

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server_host", "0.0.0.0")
	v.SetDefault("server_port", 8080)
	v.SetDefault("server_env", "development")

	// Database defaults. Neither backend has a default location: the
	// selector must be able to tell "nothing configured" apart from a
	// default that happens to be unreachable.
	v.SetDefault("database_url", "")
	v.SetDefault("database_auth_token", "")
	v.SetDefault("database_max_conns", 25)
	v.SetDefault("database_min_conns", 5)
	v.SetDefault("sqlite_path", "")

	// Logging defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
}
