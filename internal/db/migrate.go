package db

import (
	"database/sql"
	"fmt"
)

// migrations are applied in order on every open. All statements are
// idempotent (IF NOT EXISTS), so re-running the full list is safe.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS list_options (
		kind     TEXT NOT NULL
		         CHECK(kind IN ('platform','format','status','topic')),
		value    TEXT NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (kind, value)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_list_options_order
		ON list_options(kind, position)`,

	`CREATE TABLE IF NOT EXISTS themes (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		prompt     TEXT NOT NULL,
		examples   TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
