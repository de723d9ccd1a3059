package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies every schema statement. Statements are idempotent so the
// whole list is re-run on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS auth_sessions (
		token      TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at TEXT NOT NULL,
		expires_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_auth_sessions_user ON auth_sessions(user_id)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id         TEXT PRIMARY KEY,
		owner_id   TEXT NOT NULL,
		title      TEXT NOT NULL,
		priority   TEXT NOT NULL DEFAULT 'medium'
		           CHECK(priority IN ('low','medium','high')),
		status     TEXT NOT NULL DEFAULT 'pending'
		           CHECK(status IN ('pending','completed')),
		date       TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_owner_date ON tasks(owner_id, date)`,

	// Daily rituals were added after the first release.
	`ALTER TABLE tasks ADD COLUMN is_daily INTEGER NOT NULL DEFAULT 0`,

	`CREATE TABLE IF NOT EXISTS ledger_entries (
		id          TEXT PRIMARY KEY,
		owner_id    TEXT NOT NULL,
		type        TEXT NOT NULL CHECK(type IN ('income','expense','saving')),
		category    TEXT NOT NULL,
		amount      TEXT NOT NULL,
		description TEXT NOT NULL,
		date        TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_ledger_owner_date ON ledger_entries(owner_id, date)`,

	`CREATE TABLE IF NOT EXISTS profiles (
		owner_id   TEXT PRIMARY KEY,
		nickname   TEXT NOT NULL DEFAULT '',
		age        TEXT NOT NULL DEFAULT '',
		fav_quote  TEXT NOT NULL DEFAULT '',
		goal       TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL
	)`,
}
