package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/fitlog/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		min  int
		want string
	}{
		{min: 1, want: "1 min"},
		{min: 45, want: "45 min"},
		{min: 60, want: "1h"},
		{min: 90, want: "1h 30m"},
		{min: 120, want: "2h"},
		{min: 135, want: "2h 15m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMinutes(tt.min))
	}
}

func TestHumanDate_Today(t *testing.T) {
	got := HumanDate(time.Now())
	assert.Contains(t, got, "Today")
}

func TestHumanDate_Yesterday(t *testing.T) {
	got := HumanDate(time.Now().AddDate(0, 0, -1))
	assert.Contains(t, got, "Yesterday")
}

func TestHumanDate_Older(t *testing.T) {
	got := HumanDate(time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local))
	assert.Contains(t, got, "Mar 14, 2026")
}

func TestFormatWorkoutList_EmptyState(t *testing.T) {
	out := FormatWorkoutList("Workout History", nil)
	assert.Contains(t, out, "No workouts yet")
	assert.NotContains(t, out, "Total:")
}

func TestFormatWorkoutList_RendersRows(t *testing.T) {
	records := []*domain.WorkoutRecord{
		{ID: "0a1b2c3d-e4f5-4a6b-8c7d-9e0f1a2b3c4d", Type: domain.TypeRunning, DurationMin: 20, Calories: 180, CreatedAt: time.Now().UTC()},
		{ID: "b", Type: domain.TypeYoga, DurationMin: 45, Calories: 0, CreatedAt: time.Now().UTC()},
	}

	out := FormatWorkoutList("Workout History", records)
	assert.Contains(t, out, "Running")
	assert.Contains(t, out, "Yoga")
	assert.Contains(t, out, "20 min")
	assert.Contains(t, out, "180")
	assert.Contains(t, out, "Total: 2")
	// Zero calories render as a dash, not a number.
	assert.Contains(t, out, "—")
	// IDs show up in their shortened display form only.
	assert.Contains(t, out, "0a1b2c3d")
	assert.NotContains(t, out, "0a1b2c3d-e4f5")
}

func TestFormatWorkoutSaved(t *testing.T) {
	r := &domain.WorkoutRecord{
		ID:          "a",
		Type:        domain.TypeCycling,
		DurationMin: 60,
		Calories:    400,
		CreatedAt:   time.Now().UTC(),
	}

	out := FormatWorkoutSaved(r)
	assert.Contains(t, out, "Saved:")
	assert.Contains(t, out, "Cycling")
	assert.Contains(t, out, "1h")
	assert.Contains(t, out, "400")
}
