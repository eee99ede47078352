package items

import (
	"context"

	"github.com/jackc/pgx/v5"

	"git.home.luguber.info/inful/itemsvc/internal/config"
)

// PostgresStore implements Store on PostgreSQL.
type PostgresStore struct {
	connString string
}

// NewPostgresStore creates a store for cfg. No connection is made until the first call.
func NewPostgresStore(cfg config.DatabaseConfig) *PostgresStore {
	return &PostgresStore{connString: BuildConnString(cfg)}
}

func (s *PostgresStore) connect(ctx context.Context) (*pgx.Conn, error) {
	return pgx.Connect(ctx, s.connString)
}

// List returns all items.
func (s *PostgresStore) List(ctx context.Context) ([]Item, error) {
	ctx, span := startSpan(ctx, "List", "postgresql")
	defer span.End()

	conn, err := s.connect(ctx)
	if err != nil {
		return nil, storeFailure(span, err, "connect", string(config.DriverPostgres))
	}
	defer func() { _ = conn.Close(ctx) }()

	rows, err := conn.Query(ctx, selectItemsSQL)
	if err != nil {
		return nil, storeFailure(span, err, "list items", string(config.DriverPostgres))
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Item, error) {
		var it Item
		err := row.Scan(&it.ID, &it.Name)
		return it, err
	})
	if err != nil {
		return nil, storeFailure(span, err, "scan items", string(config.DriverPostgres))
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

// Insert adds an item inside a transaction and commits it. The name is bound as a
// parameter, never interpolated.
func (s *PostgresStore) Insert(ctx context.Context, name string) error {
	ctx, span := startSpan(ctx, "Insert", "postgresql")
	defer span.End()

	conn, err := s.connect(ctx)
	if err != nil {
		return storeFailure(span, err, "connect", string(config.DriverPostgres))
	}
	defer func() { _ = conn.Close(ctx) }()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return storeFailure(span, err, "begin", string(config.DriverPostgres))
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "INSERT INTO items (name) VALUES ($1)", name); err != nil {
		return storeFailure(span, err, "insert item", string(config.DriverPostgres))
	}
	if err := tx.Commit(ctx); err != nil {
		return storeFailure(span, err, "commit", string(config.DriverPostgres))
	}
	return nil
}
