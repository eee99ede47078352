package items

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"git.home.luguber.info/inful/itemsvc/internal/config"
	ferrors "git.home.luguber.info/inful/itemsvc/internal/foundation/errors"
)

// Store reads and writes items.
type Store interface {
	// List returns every item in store order. An empty table yields an empty slice.
	List(ctx context.Context) ([]Item, error)
	// Insert adds one item and commits it.
	Insert(ctx context.Context, name string) error
}

const (
	selectItemsSQL = "SELECT id, name FROM items ORDER BY id"
	tracerName     = "git.home.luguber.info/inful/itemsvc/internal/items"
)

// NewStore returns the Store for the configured driver.
func NewStore(cfg config.DatabaseConfig) (Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewPostgresStore(cfg), nil
	case config.DriverSQLite:
		return NewSQLiteStore(cfg.Path), nil
	default:
		return nil, ferrors.ConfigError(fmt.Sprintf("unsupported database driver %q", cfg.Driver)).
			WithContext("field", "database.driver").
			Build()
	}
}

func startSpan(ctx context.Context, op, system string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "items."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("db.system", system)))
}

// storeFailure classifies err as a store error and marks the span failed.
func storeFailure(span trace.Span, err error, op, driver string) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, op)
	return ferrors.StoreError(err, op).
		WithContext("driver", driver).
		Build()
}
