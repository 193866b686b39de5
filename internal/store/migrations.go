package store

import (
	"context"
	"database/sql"
)

// schema contains all DDL statements to initialize the database.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id            TEXT PRIMARY KEY,
		algorithm     TEXT NOT NULL,
		preemptive    INTEGER NOT NULL DEFAULT 0,
		time_quantum  INTEGER NOT NULL DEFAULT 0,
		requeue_order TEXT NOT NULL DEFAULT '',
		processes     TEXT NOT NULL DEFAULT '[]',
		result        TEXT NOT NULL DEFAULT '{}',
		created_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_algorithm ON runs(algorithm)`,
}

// migrate executes all schema DDL statements.
func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
