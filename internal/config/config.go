package config

import "time"

// Supported values of DatabaseConfig.Driver.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	// DefaultDriver is used when no driver is configured.
	DefaultDriver = DriverSQLite
)

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig selects the storage engine and holds the settings of both.
// Driver is read once at startup and never changes at runtime.
type DatabaseConfig struct {
	Driver   string         `yaml:"driver" env:"DATABASE_DRIVER" env-default:"sqlite"`
	Postgres PostgresConfig `yaml:"postgres"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
}

// PostgresConfig holds PostgreSQL connection pool settings.
type PostgresConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"0"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30s"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"5s"`
	RetryBackoff    time.Duration `yaml:"retry_backoff"      env:"DATABASE_RETRY_BACKOFF"      env-default:"1s"`
}

// SQLiteConfig holds embedded database settings.
type SQLiteConfig struct {
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"./data/callsign.db"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// EffectiveDriver returns the configured driver, or DefaultDriver when empty.
func (c DatabaseConfig) EffectiveDriver() string {
	if c.Driver == "" {
		return DefaultDriver
	}
	return c.Driver
}
