package httpserver

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Options carries optional dependencies for New.
type Options struct {
	// Registry receives the request instruments and backs the metrics endpoint.
	// Nil gets a private registry.
	Registry *prometheus.Registry
	// Logger defaults to slog.Default.
	Logger *slog.Logger
}
