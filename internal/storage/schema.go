package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate creates the key-value table. Every record is a JSON string keyed
// by its full namespaced key, mirroring the legacy web-storage layout so old
// backups restore without translation.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
