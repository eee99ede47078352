package items

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"git.home.luguber.info/inful/itemsvc/internal/config"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS items (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT
);`

// SQLiteStore implements Store on a SQLite database file.
type SQLiteStore struct {
	dsn string
}

// NewSQLiteStore creates a store for the database file at path.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{dsn: fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)}
}

func (s *SQLiteStore) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// EnsureSchema creates the items table when it does not exist.
func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("initialize schema: %w", err)
	}
	return nil
}

// List returns all items.
func (s *SQLiteStore) List(ctx context.Context) ([]Item, error) {
	ctx, span := startSpan(ctx, "List", "sqlite")
	defer span.End()

	db, err := s.open()
	if err != nil {
		return nil, storeFailure(span, err, "connect", string(config.DriverSQLite))
	}
	defer func() { _ = db.Close() }()

	rows, err := db.QueryContext(ctx, selectItemsSQL)
	if err != nil {
		return nil, storeFailure(span, err, "list items", string(config.DriverSQLite))
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Name); err != nil {
			return nil, storeFailure(span, err, "scan items", string(config.DriverSQLite))
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, storeFailure(span, err, "scan items", string(config.DriverSQLite))
	}
	return items, nil
}

// Insert adds an item inside a transaction and commits it.
func (s *SQLiteStore) Insert(ctx context.Context, name string) error {
	ctx, span := startSpan(ctx, "Insert", "sqlite")
	defer span.End()

	db, err := s.open()
	if err != nil {
		return storeFailure(span, err, "connect", string(config.DriverSQLite))
	}
	defer func() { _ = db.Close() }()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return storeFailure(span, err, "begin", string(config.DriverSQLite))
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "INSERT INTO items (name) VALUES (?)", name); err != nil {
		return storeFailure(span, err, "insert item", string(config.DriverSQLite))
	}
	if err := tx.Commit(); err != nil {
		return storeFailure(span, err, "commit", string(config.DriverSQLite))
	}
	return nil
}
