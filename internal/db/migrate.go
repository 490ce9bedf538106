package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent and re-run
// on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		username      TEXT PRIMARY KEY,
		password_hash TEXT NOT NULL,
		created_at    TEXT NOT NULL
	)`,

	// One JSON document per (user, namespace): weeks, schedules, progress,
	// base_schedule, hidden_subjects, progress_order.
	`CREATE TABLE IF NOT EXISTS state_docs (
		username   TEXT NOT NULL REFERENCES users(username) ON DELETE CASCADE,
		namespace  TEXT NOT NULL,
		doc        TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (username, namespace)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_state_docs_user ON state_docs(username)`,

	// Single-row table holding the logged-in user, if any.
	`CREATE TABLE IF NOT EXISTS auth_session (
		id       TEXT PRIMARY KEY DEFAULT 'default',
		username TEXT NOT NULL REFERENCES users(username) ON DELETE CASCADE
	)`,
}
