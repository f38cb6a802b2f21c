package config

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	SQLite   SQLiteConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Env  string `mapstructure:"env"`
}

// PostgresConfig holds configuration for the remote PostgreSQL backend.
// The backend counts as configured only when both the URL and the auth
// token are present; a URL alone is treated as absent.
type PostgresConfig struct {
	URL       string `mapstructure:"url"`
	AuthToken string `mapstructure:"auth_token"`
	MaxConns  int32  `mapstructure:"max_conns"`
	MinConns  int32  `mapstructure:"min_conns"`
}

// Configured reports whether the remote backend credentials are present.
func (c PostgresConfig) Configured() bool {
	return c.URL != "" && c.AuthToken != ""
}

// SQLiteConfig holds configuration for the embedded SQLite backend.
type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

// Configured reports whether the embedded backend is usable.
func (c SQLiteConfig) Configured() bool {
	return c.Path != ""
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// IsDevelopment returns true if running in development mode
func (c Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c Config) IsProduction() bool {
	return c.Server.Env == "production"
}
