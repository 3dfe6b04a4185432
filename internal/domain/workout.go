package domain

import (
	"fmt"
	"strings"
	"time"
)

// WorkoutType is the closed set of workout categories a record can carry.
type WorkoutType string

const (
	TypeRunning  WorkoutType = "Running"
	TypeCycling  WorkoutType = "Cycling"
	TypeStrength WorkoutType = "Strength"
	TypeYoga     WorkoutType = "Yoga"
	TypeOther    WorkoutType = "Other"
)

// WorkoutTypes lists all workout types in display order.
var WorkoutTypes = []WorkoutType{
	TypeRunning, TypeCycling, TypeStrength, TypeYoga, TypeOther,
}

// ParseWorkoutType resolves a raw string to a WorkoutType, case-insensitively.
// Anything outside the five known types fails with ErrInvalidType.
func ParseWorkoutType(s string) (WorkoutType, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for _, t := range WorkoutTypes {
		if normalized == strings.ToLower(string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown workout type %q (choose one of Running, Cycling, Strength, Yoga, Other): %w", s, ErrInvalidType)
}

// WorkoutRecord is one validated workout entry. Records are immutable once
// persisted; the store never updates or deletes them.
type WorkoutRecord struct {
	ID          string      `json:"id"`
	Type        WorkoutType `json:"type"`
	DurationMin int         `json:"durationMin"`
	Calories    int         `json:"calories"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// DisplayID returns a short identifier suitable for table output.
func (r *WorkoutRecord) DisplayID() string {
	if len(r.ID) >= 8 {
		return r.ID[:8]
	}
	return r.ID
}
