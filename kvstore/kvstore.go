// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrVersionConflict is returned by PutVersion when the stored version no
// longer matches the caller's snapshot.
var ErrVersionConflict = errors.New("kvstore: version conflict")

// Store is a versioned string-to-string mapping backed by a single SQL table.
// It works against both sqlite and postgres through database/sql.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateSchema creates the kv table. Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    version BIGINT NOT NULL DEFAULT 1
);
`

// Get returns the stored value and its version. ok is false when the key is absent.
func (s *Store) Get(ctx context.Context, key string) (value string, version int64, ok bool, err error) {
	err = s.db.QueryRowContext(ctx,
		"SELECT value, version FROM kv WHERE key = $1", key,
	).Scan(&value, &version)
	if err == sql.ErrNoRows {
		return "", 0, false, nil
	}
	if err != nil {
		return "", 0, false, fmt.Errorf("failed to get %q: %w", key, err)
	}
	return value, version, true, nil
}

// Put writes key unconditionally, creating it or bumping its version.
func (s *Store) Put(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, version) VALUES ($1, $2, 1)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, version = version + 1
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to put %q: %w", key, err)
	}
	return nil
}

// PutVersion writes key only if the stored version still equals expected,
// closing the read-modify-write race between concurrent writers. An expected
// version of 0 means the key must not exist yet.
func (s *Store) PutVersion(ctx context.Context, key, value string, expected int64) error {
	var res sql.Result
	var err error

	if expected == 0 {
		res, err = s.db.ExecContext(ctx, `
			INSERT INTO kv (key, value, version) VALUES ($1, $2, 1)
			ON CONFLICT (key) DO NOTHING
		`, key, value)
	} else {
		// Placeholders stay in occurrence order: sqlite numbers $N
		// parameters by first appearance, postgres by the N itself.
		res, err = s.db.ExecContext(ctx, `
			UPDATE kv SET value = $1, version = version + 1
			WHERE key = $2 AND version = $3
		`, value, key, expected)
	}
	if err != nil {
		return fmt.Errorf("failed to put %q: %w", key, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to put %q: %w", key, err)
	}
	if affected == 0 {
		return ErrVersionConflict
	}
	return nil
}
