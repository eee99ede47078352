package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultAddr            = ":8000"
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultDriver          = DriverPostgres
	DefaultDBHost          = "postgres"
	DefaultDBPort          = 5432
	DefaultDBName          = "observability"
	DefaultDBUser          = "postgres"
	DefaultDBPassword      = "postgres"
	DefaultDBSSLMode       = "disable"
	DefaultSQLitePath      = "items.db"
	DefaultMetricsPath     = "/metrics"
	DefaultHealthPath      = "/health"
	DefaultServiceName     = "itemsvc"
)

// Default returns a Config populated with every default.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	// Server defaults
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = DefaultReadTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = DefaultWriteTimeout
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	applyDBDefaults(&c.Database)

	// Metrics defaults
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
	if c.Metrics.ExcludedPaths == nil {
		c.Metrics.ExcludedPaths = []string{DefaultHealthPath, c.Metrics.Path}
	}

	// Logging defaults
	if c.Logging.Level == "" {
		c.Logging.Level = LogLevelInfo
	}
	if c.Logging.Format == "" {
		c.Logging.Format = LogFormatText
	}

	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = DefaultServiceName
	}
}

func applyDBDefaults(db *DatabaseConfig) {
	if db.Driver == "" {
		db.Driver = DefaultDriver
	}
	if db.Host == "" {
		db.Host = DefaultDBHost
	}
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.Name == "" {
		db.Name = DefaultDBName
	}
	if db.User == "" {
		db.User = DefaultDBUser
	}
	if db.Password == "" {
		db.Password = DefaultDBPassword
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.Path == "" {
		db.Path = DefaultSQLitePath
	}
}
