package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Validation failure reasons. Each wrapped error keeps a plain-language
// message; callers branch with errors.Is.
var (
	ErrInvalidType     = errors.New("invalid workout type")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrInvalidCalories = errors.New("invalid calories")
)

// IsValidationError reports whether err is one of the validation failures.
// Validation errors are recoverable: the caller re-prompts, and the store
// is guaranteed untouched.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidType) ||
		errors.Is(err, ErrInvalidDuration) ||
		errors.Is(err, ErrInvalidCalories)
}

// Candidate holds raw, untrusted workout input exactly as the user gave it.
type Candidate struct {
	Type     string
	Duration string
	Calories string
}

// Validate checks a candidate against the domain rules and, on success,
// returns a fully populated WorkoutRecord with a fresh ID and a UTC
// CreatedAt stamp. It never touches storage.
//
// Checks run in order: type, duration, calories. The first failure wins.
func Validate(c Candidate) (*WorkoutRecord, error) {
	wtype, err := ParseWorkoutType(c.Type)
	if err != nil {
		return nil, err
	}

	duration, err := strconv.Atoi(strings.TrimSpace(c.Duration))
	if err != nil || duration <= 0 {
		return nil, fmt.Errorf("duration must be a positive whole number of minutes, got %q: %w", c.Duration, ErrInvalidDuration)
	}

	// Calories are optional; blank means none recorded.
	calories := 0
	if raw := strings.TrimSpace(c.Calories); raw != "" {
		calories, err = strconv.Atoi(raw)
		if err != nil || calories < 0 {
			return nil, fmt.Errorf("calories must be a whole number of zero or more, got %q: %w", c.Calories, ErrInvalidCalories)
		}
	}

	// Second precision so the stored RFC3339 form round-trips exactly.
	return &WorkoutRecord{
		ID:          uuid.New().String(),
		Type:        wtype,
		DurationMin: duration,
		Calories:    calories,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}, nil
}
