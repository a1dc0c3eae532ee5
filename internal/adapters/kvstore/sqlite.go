// Package kvstore provides scoped key-value store adapters: a sqlite-backed
// one for the console binary and an in-memory one for tests. Both satisfy
// ports.KVStore, so callers never see which backend they got.
package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/arale275/autix-sub001/internal/apperrors"
	"github.com/arale275/autix-sub001/internal/core/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	scope      TEXT NOT NULL,
	key        TEXT NOT NULL,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL,
	PRIMARY KEY (scope, key)
);`

// SQLite is a file-backed scoped key-value store.
type SQLite struct {
	db *sqlx.DB
}

var _ ports.KVStore = (*SQLite)(nil)

// OpenSQLite opens (and initializes, if needed) the store at path.
// Use ":memory:" for a throwaway store.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("kvstore: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("kvstore: init schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Get returns the value for (scope, key), or apperrors.ErrNotFound.
func (s *SQLite) Get(ctx context.Context, scope, key string) (string, error) {
	var value string
	err := s.db.GetContext(ctx, &value, `SELECT value FROM kv WHERE scope = ? AND key = ?`, scope, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", apperrors.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("kvstore: get %s/%s: %w", scope, key, err)
	}
	return value, nil
}

// Set stores the value for (scope, key), overwriting any previous one.
func (s *SQLite) Set(ctx context.Context, scope, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (scope, key, value, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (scope, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		scope, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("kvstore: set %s/%s: %w", scope, key, err)
	}
	return nil
}

// Remove deletes (scope, key). Removing a missing key is not an error.
func (s *SQLite) Remove(ctx context.Context, scope, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE scope = ? AND key = ?`, scope, key); err != nil {
		return fmt.Errorf("kvstore: remove %s/%s: %w", scope, key, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}
