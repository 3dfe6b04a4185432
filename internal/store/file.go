package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/fitlog/internal/domain"
)

// FileStore keeps the full record sequence in memory and mirrors it to a
// single JSON file. Every append rewrites the file through a temp file and
// an atomic rename, so a crash mid-write never leaves a half-written store.
type FileStore struct {
	path    string
	records []*domain.WorkoutRecord // insertion order, oldest first
}

// OpenFile loads the store backed by the JSON file at path. An absent file
// is a normal first run and yields an empty store; a file that exists but
// does not decode fails with ErrCorrupt.
func OpenFile(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading workout file: %w", err)
	}

	if err := json.Unmarshal(data, &s.records); err != nil {
		return nil, fmt.Errorf("decoding %s: %v: %w", filepath.Base(path), err, ErrCorrupt)
	}
	for i, r := range s.records {
		if r == nil {
			return nil, fmt.Errorf("%s: record %d is null: %w", filepath.Base(path), i, ErrCorrupt)
		}
		wtype, err := domain.ParseWorkoutType(string(r.Type))
		if err != nil {
			return nil, fmt.Errorf("%s: record %d has unknown type %q: %w", filepath.Base(path), i, r.Type, ErrCorrupt)
		}
		r.Type = wtype
		if r.DurationMin <= 0 {
			return nil, fmt.Errorf("%s: record %d has non-positive duration %d: %w", filepath.Base(path), i, r.DurationMin, ErrCorrupt)
		}
		if r.Calories < 0 {
			return nil, fmt.Errorf("%s: record %d has negative calories %d: %w", filepath.Base(path), i, r.Calories, ErrCorrupt)
		}
	}
	return s, nil
}

// Append adds one validated record and persists the whole sequence. If the
// write fails, the in-memory sequence is rolled back so it never diverges
// from what is actually on disk.
func (s *FileStore) Append(ctx context.Context, r *domain.WorkoutRecord) error {
	s.records = append(s.records, r)
	if err := s.persist(); err != nil {
		s.records = s.records[:len(s.records)-1]
		return fmt.Errorf("persisting workout: %w", err)
	}
	return nil
}

// ListAll returns every record, newest-first.
func (s *FileStore) ListAll(ctx context.Context) ([]*domain.WorkoutRecord, error) {
	return newestFirst(s.records), nil
}

// ListByType returns the records of the given type, newest-first. An empty
// result is an empty slice, not an error.
func (s *FileStore) ListByType(ctx context.Context, t domain.WorkoutType) ([]*domain.WorkoutRecord, error) {
	matched := make([]*domain.WorkoutRecord, 0, len(s.records))
	for _, r := range newestFirst(s.records) {
		if r.Type == t {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

// persist writes the full sequence to a temp file in the same directory and
// renames it over the store file.
func (s *FileStore) persist() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding workouts: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".workouts-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing workout file: %w", err)
	}
	return nil
}
