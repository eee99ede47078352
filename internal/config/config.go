// Package config loads itemsvc configuration from defaults, an optional YAML file,
// .env files and environment variables, in that order of precedence.
package config

import "time"

// Config is the complete runtime configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Logging  LoggingConfig  `yaml:"logging"`
	Tracing  TracingConfig  `yaml:"tracing"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"ITEMSVC_ADDR"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"ITEMSVC_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"ITEMSVC_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"ITEMSVC_SHUTDOWN_TIMEOUT"`
}

// Driver selects the items store implementation.
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

// DatabaseConfig configures the relational items store. The Postgres fields keep
// the environment names used by the postgres container image.
type DatabaseConfig struct {
	Driver   Driver `yaml:"driver" env:"DB_DRIVER"`
	Host     string `yaml:"host" env:"DB_HOST"`
	Port     int    `yaml:"port" env:"DB_PORT"`
	Name     string `yaml:"name" env:"POSTGRES_DB"`
	User     string `yaml:"user" env:"POSTGRES_USER"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE"`

	// Path is the database file for the sqlite driver.
	Path string `yaml:"path" env:"SQLITE_PATH"`
}

// MetricsConfig configures request instrumentation and exposition.
type MetricsConfig struct {
	Path              string   `yaml:"path" env:"METRICS_PATH"`
	ExcludedPaths     []string `yaml:"excluded_paths" env:"METRICS_EXCLUDED_PATHS" envSeparator:","`
	RuntimeCollectors bool     `yaml:"runtime_collectors" env:"METRICS_RUNTIME_COLLECTORS"`
}

// LoggingConfig configures the process-wide slog logger.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level" env:"LOG_LEVEL"`
	Format LogFormat `yaml:"format" env:"LOG_FORMAT"`
}

// TracingConfig configures optional OpenTelemetry trace export. An empty Endpoint
// disables tracing.
type TracingConfig struct {
	Endpoint    string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `yaml:"service_name" env:"OTEL_SERVICE_NAME"`
}
