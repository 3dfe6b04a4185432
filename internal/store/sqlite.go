package store

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/fitlog/internal/db"
	"github.com/alexanderramin/fitlog/internal/domain"
)

// SQLiteStore implements Store on a SQLite database. Unlike the file
// backend, an append writes one row instead of rewriting the whole log.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a SQLiteStore on an already-opened database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// OpenSQLite opens (creating if needed) the database at path and returns
// the store with its close function. A file that exists at path but is not
// a SQLite database fails with ErrCorrupt.
func OpenSQLite(path string) (*SQLiteStore, func(), error) {
	database, err := db.OpenDB(path)
	if err != nil {
		if strings.Contains(err.Error(), "not a database") {
			return nil, nil, fmt.Errorf("opening %s: %v: %w", filepath.Base(path), err, ErrCorrupt)
		}
		return nil, nil, err
	}
	return NewSQLiteStore(database), func() { database.Close() }, nil
}

func (s *SQLiteStore) Append(ctx context.Context, r *domain.WorkoutRecord) error {
	query := `INSERT INTO workouts (id, type, duration_min, calories, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		r.ID,
		string(r.Type),
		r.DurationMin,
		r.Calories,
		r.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting workout: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListAll(ctx context.Context) ([]*domain.WorkoutRecord, error) {
	query := `SELECT id, type, duration_min, calories, created_at
		FROM workouts ORDER BY created_at DESC, seq DESC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing workouts: %w", err)
	}
	defer rows.Close()
	return s.scanWorkouts(rows)
}

func (s *SQLiteStore) ListByType(ctx context.Context, t domain.WorkoutType) ([]*domain.WorkoutRecord, error) {
	query := `SELECT id, type, duration_min, calories, created_at
		FROM workouts WHERE type = ? ORDER BY created_at DESC, seq DESC`
	rows, err := s.db.QueryContext(ctx, query, string(t))
	if err != nil {
		return nil, fmt.Errorf("listing workouts by type: %w", err)
	}
	defer rows.Close()
	return s.scanWorkouts(rows)
}

// scanWorkouts scans records from *sql.Rows. A row that no longer decodes
// as a valid record means the database was edited out from under us, which
// is reported as corruption rather than skipped.
func (s *SQLiteStore) scanWorkouts(rows *sql.Rows) ([]*domain.WorkoutRecord, error) {
	records := make([]*domain.WorkoutRecord, 0)
	for rows.Next() {
		var r domain.WorkoutRecord
		var typeStr, createdAtStr string

		if err := rows.Scan(&r.ID, &typeStr, &r.DurationMin, &r.Calories, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning workout row: %w", err)
		}

		wtype, err := domain.ParseWorkoutType(typeStr)
		if err != nil {
			return nil, fmt.Errorf("workout %s has unknown type %q: %w", r.ID, typeStr, ErrCorrupt)
		}
		r.Type = wtype

		r.CreatedAt, err = time.Parse(time.RFC3339, strings.TrimSpace(createdAtStr))
		if err != nil {
			return nil, fmt.Errorf("workout %s has unreadable created_at %q: %w", r.ID, createdAtStr, ErrCorrupt)
		}

		records = append(records, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workouts: %w", err)
	}
	return records, nil
}
