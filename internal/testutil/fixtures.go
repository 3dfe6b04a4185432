package testutil

import (
	"time"

	"github.com/alexanderramin/fitlog/internal/domain"
	"github.com/google/uuid"
)

// RecordOption customizes a test workout record.
type RecordOption func(*domain.WorkoutRecord)

// WithCreatedAt overrides the record timestamp.
func WithCreatedAt(t time.Time) RecordOption {
	return func(r *domain.WorkoutRecord) {
		r.CreatedAt = t.UTC().Truncate(time.Second)
	}
}

// WithCalories overrides the calorie count.
func WithCalories(cal int) RecordOption {
	return func(r *domain.WorkoutRecord) {
		r.Calories = cal
	}
}

// NewTestRecord creates a valid workout record with sensible defaults.
func NewTestRecord(wtype domain.WorkoutType, minutes int, opts ...RecordOption) *domain.WorkoutRecord {
	r := &domain.WorkoutRecord{
		ID:          uuid.New().String(),
		Type:        wtype,
		DurationMin: minutes,
		Calories:    200,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
