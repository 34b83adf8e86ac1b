package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Prefix namespaces every key the tracker owns. Unprefixed keys are never
// touched, and backup/restore filters on it.
const Prefix = "prodtrk_"

// Store is a namespaced JSON key-value store over a single sqlite table.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) DB() *sql.DB { return s.db }

// ReadRaw returns the stored JSON string for key, with found=false when the
// key is absent.
func (s *Store) ReadRaw(ctx context.Context, key string) (string, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key)
	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("kv get %s: %w", key, err)
	}
	return value, true, nil
}

// WriteRaw stores a pre-serialized JSON string under key.
func (s *Store) WriteRaw(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("kv put %s: %w", key, err)
	}
	return nil
}

// ReadJSON unmarshals the value at key into dest. Absent keys report
// found=false and leave dest untouched; corrupt JSON is an error so callers
// can fall back to their default value.
func (s *Store) ReadJSON(ctx context.Context, key string, dest any) (bool, error) {
	raw, found, err := s.ReadRaw(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("kv decode %s: %w", key, err)
	}
	return true, nil
}

// WriteJSON marshals v and stores it under key.
func (s *Store) WriteJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("kv encode %s: %w", key, err)
	}
	return s.WriteRaw(ctx, key, string(data))
}

// Keys returns all stored keys with the given prefix, sorted.
func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM kv WHERE key LIKE ? || '%' ORDER BY key`, prefix)
	if err != nil {
		return nil, fmt.Errorf("kv keys: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("kv keys scan: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("kv keys: %w", err)
	}
	return keys, nil
}

// ApplyAll writes every entry inside one transaction. Used by restore so a
// backup either lands completely or not at all.
func (s *Store) ApplyAll(ctx context.Context, entries map[string]string) error {
	return WithTx(ctx, s.db, func(tx *sql.Tx) error {
		for key, value := range entries {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO kv (key, value) VALUES (?, ?)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value
			`, key, value); err != nil {
				return fmt.Errorf("kv restore %s: %w", key, err)
			}
		}
		return nil
	})
}
