package store

import (
	"context"
	"errors"
	"sort"

	"github.com/alexanderramin/fitlog/internal/domain"
)

// ErrCorrupt indicates the backing data exists but could not be decoded.
// It is surfaced to the caller rather than repaired, so user data is never
// silently discarded.
var ErrCorrupt = errors.New("workout store is corrupt")

// Store is the durable, ordered collection of workout records. Records are
// append-only; both list operations return newest-first, with ties on
// CreatedAt broken most-recently-appended-first.
type Store interface {
	Append(ctx context.Context, r *domain.WorkoutRecord) error
	ListAll(ctx context.Context) ([]*domain.WorkoutRecord, error)
	ListByType(ctx context.Context, t domain.WorkoutType) ([]*domain.WorkoutRecord, error)
}

// newestFirst returns a copy of records (given in insertion order) sorted
// newest-first. The input is reversed before the stable sort so that equal
// timestamps come out most-recently-appended-first.
func newestFirst(records []*domain.WorkoutRecord) []*domain.WorkoutRecord {
	out := make([]*domain.WorkoutRecord, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		out = append(out, records[i])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
