package db

import (
	"database/sql"
	"fmt"
)

// migrations are idempotent schema statements, run in order on every open.
// The seq column records insertion order; it breaks ordering ties between
// records created within the same second.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS workouts (
		seq          INTEGER PRIMARY KEY AUTOINCREMENT,
		id           TEXT NOT NULL UNIQUE,
		type         TEXT NOT NULL
		             CHECK(type IN ('Running','Cycling','Strength','Yoga','Other')),
		duration_min INTEGER NOT NULL CHECK(duration_min > 0),
		calories     INTEGER NOT NULL CHECK(calories >= 0),
		created_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_workouts_type ON workouts(type)`,
	`CREATE INDEX IF NOT EXISTS idx_workouts_created_at ON workouts(created_at)`,
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
