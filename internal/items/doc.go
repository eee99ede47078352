// Package items provides access to the relational items table.
//
// Two Store implementations exist:
//   - PostgresStore: production store backed by pgx. Every call opens a fresh
//     connection, runs one statement and closes the connection (no pooling).
//   - SQLiteStore: file-backed store for local development and tests, with the
//     same per-call connection lifecycle.
//
// The table schema is `items(id serial primary key, name text)`. Creating it is
// the operator's job for Postgres; SQLiteStore.EnsureSchema exists for local use.
package items
