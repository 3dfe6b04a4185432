package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Success(t *testing.T) {
	before := time.Now().UTC()
	r, err := Validate(Candidate{Type: "running", Duration: "30", Calories: "250"})
	require.NoError(t, err)
	after := time.Now().UTC()

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, TypeRunning, r.Type)
	assert.Equal(t, 30, r.DurationMin)
	assert.Equal(t, 250, r.Calories)

	assert.Equal(t, time.UTC, r.CreatedAt.Location())
	assert.False(t, r.CreatedAt.Before(before.Truncate(time.Second)))
	assert.False(t, r.CreatedAt.After(after))
	// Second precision so the RFC3339 form round-trips exactly.
	assert.Zero(t, r.CreatedAt.Nanosecond())
}

func TestValidate_BlankCaloriesMeansZero(t *testing.T) {
	r, err := Validate(Candidate{Type: "Yoga", Duration: "45", Calories: ""})
	require.NoError(t, err)
	assert.Equal(t, 0, r.Calories)
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name      string
		candidate Candidate
		wantErr   error
	}{
		{
			name:      "unknown type",
			candidate: Candidate{Type: "Swimming", Duration: "30", Calories: "200"},
			wantErr:   ErrInvalidType,
		},
		{
			name:      "empty type",
			candidate: Candidate{Type: "", Duration: "30", Calories: "200"},
			wantErr:   ErrInvalidType,
		},
		{
			name:      "zero duration",
			candidate: Candidate{Type: "Running", Duration: "0", Calories: "200"},
			wantErr:   ErrInvalidDuration,
		},
		{
			name:      "negative duration",
			candidate: Candidate{Type: "Running", Duration: "-10", Calories: "200"},
			wantErr:   ErrInvalidDuration,
		},
		{
			name:      "non-numeric duration",
			candidate: Candidate{Type: "Running", Duration: "half an hour", Calories: "200"},
			wantErr:   ErrInvalidDuration,
		},
		{
			name:      "empty duration",
			candidate: Candidate{Type: "Running", Duration: "", Calories: "200"},
			wantErr:   ErrInvalidDuration,
		},
		{
			name:      "negative calories",
			candidate: Candidate{Type: "Running", Duration: "30", Calories: "-5"},
			wantErr:   ErrInvalidCalories,
		},
		{
			name:      "non-numeric calories",
			candidate: Candidate{Type: "Running", Duration: "30", Calories: "lots"},
			wantErr:   ErrInvalidCalories,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Validate(tt.candidate)
			assert.Nil(t, r)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestValidate_ChecksTypeBeforeDuration(t *testing.T) {
	// Both fields are bad; the type failure wins.
	_, err := Validate(Candidate{Type: "Swimming", Duration: "-1", Calories: "x"})
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestValidate_FreshIDPerRecord(t *testing.T) {
	a, err := Validate(Candidate{Type: "Running", Duration: "30"})
	require.NoError(t, err)
	b, err := Validate(Candidate{Type: "Running", Duration: "30"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestIsValidationError_OtherErrors(t *testing.T) {
	assert.False(t, IsValidationError(nil))
	assert.False(t, IsValidationError(assert.AnError))
}
