package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the full
// list re-runs safely on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		status     TEXT NOT NULL DEFAULT 'planning'
		           CHECK(status IN ('planning','in_progress','on_hold','completed','cancelled')),
		start_date TEXT NOT NULL,
		end_date   TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id              TEXT PRIMARY KEY,
		project_id      TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		title           TEXT NOT NULL,
		status          TEXT NOT NULL DEFAULT 'new'
		                CHECK(status IN ('new','in_progress','blocked','completed','cancelled')),
		priority        TEXT NOT NULL DEFAULT 'none'
		                CHECK(priority IN ('none','low','medium','high','critical')),
		due_date        TEXT,
		completed_at    TEXT,
		estimated_hours REAL NOT NULL DEFAULT 0,
		actual_hours    REAL NOT NULL DEFAULT 0,
		assignee_id     TEXT,
		assignee_name   TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_assignee ON tasks(assignee_id)`,

	`CREATE TABLE IF NOT EXISTS audit_events (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		user_name  TEXT NOT NULL DEFAULT '',
		action     TEXT NOT NULL,
		success    INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_audit_events_user ON audit_events(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_audit_events_created ON audit_events(created_at)`,
}
