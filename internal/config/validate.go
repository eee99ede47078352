package config

import (
	"slices"
	"strings"

	ferrors "git.home.luguber.info/inful/itemsvc/internal/foundation/errors"
)

// APIPaths are the routes served besides the metrics endpoint.
var APIPaths = []string{"/health", "/items", "/error", "/boom", "/boom-unhandled"}

// Validate checks the configuration for values the service cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return invalid("server.addr", "must not be empty")
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		return invalid("server", "timeouts must not be negative")
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return invalid("metrics.path", "must start with /")
	}
	if slices.Contains(APIPaths, c.Metrics.Path) {
		return invalid("metrics.path", "collides with an API route").
			WithContext("value", c.Metrics.Path)
	}
	for _, p := range c.Metrics.ExcludedPaths {
		if !strings.HasPrefix(p, "/") {
			return invalid("metrics.excluded_paths", "entries must start with /").
				WithContext("value", p)
		}
	}
	return nil
}

func (c *Config) validateDatabase() error {
	db := c.Database
	switch db.Driver {
	case DriverPostgres:
		if db.Host == "" {
			return invalid("database.host", "required for postgres")
		}
		if db.Port <= 0 || db.Port > 65535 {
			return invalid("database.port", "must be between 1 and 65535")
		}
		if db.Name == "" {
			return invalid("database.name", "required for postgres")
		}
	case DriverSQLite:
		if db.Path == "" {
			return invalid("database.path", "required for sqlite")
		}
	default:
		return invalid("database.driver", "must be one of "+strings.Join(DriverNames(), ", ")).
			WithContext("value", string(db.Driver))
	}
	return nil
}

func invalid(field, reason string) *ferrors.ClassifiedError {
	return ferrors.ConfigError("invalid "+field+": "+reason).
		WithContext("field", field).
		Build()
}
