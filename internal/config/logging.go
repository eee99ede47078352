package config

import (
	"git.home.luguber.info/inful/itemsvc/internal/foundation/normalization"
)

// LogLevel enumerates supported logging levels.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

var logLevelNormalizer = normalization.NewNormalizer(map[string]LogLevel{
	"debug":   LogLevelDebug,
	"info":    LogLevelInfo,
	"warn":    LogLevelWarn,
	"warning": LogLevelWarn,
	"error":   LogLevelError,
}, LogLevelInfo)

func NormalizeLogLevel(raw string) LogLevel {
	return logLevelNormalizer.Normalize(raw)
}

// LogFormat enumerates supported log output formats.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

var logFormatNormalizer = normalization.NewNormalizer(map[string]LogFormat{
	"json": LogFormatJSON,
	"text": LogFormatText,
}, LogFormatText)

func NormalizeLogFormat(raw string) LogFormat {
	return logFormatNormalizer.Normalize(raw)
}

var driverNormalizer = normalization.NewEnumNormalizer("database.driver", map[string]Driver{
	"postgres":   DriverPostgres,
	"postgresql": DriverPostgres,
	"pg":         DriverPostgres,
	"sqlite":     DriverSQLite,
	"sqlite3":    DriverSQLite,
}, DefaultDriver)

// DriverNames lists the accepted database.driver spellings, sorted.
func DriverNames() []string {
	return driverNormalizer.ValidKeys()
}

// NormalizeDriver maps driver aliases to a Driver, rejecting unknown values.
func NormalizeDriver(raw string) (Driver, error) {
	return driverNormalizer.NormalizeWithValidation(raw)
}
