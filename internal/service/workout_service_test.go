package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/fitlog/internal/domain"
	"github.com/alexanderramin/fitlog/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(t *testing.T) WorkoutService {
	t.Helper()
	s, err := store.OpenFile(filepath.Join(t.TempDir(), "workouts.json"))
	require.NoError(t, err)
	return NewWorkoutService(s)
}

func TestWorkoutService_LogPersists(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	r, err := svc.Log(ctx, domain.Candidate{Type: "running", Duration: "30", Calories: "250"})
	require.NoError(t, err)
	assert.Equal(t, domain.TypeRunning, r.Type)

	history, err := svc.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, r.ID, history[0].ID)
}

func TestWorkoutService_ValidationFailureLeavesStoreUntouched(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	_, err := svc.Log(ctx, domain.Candidate{Type: "Swimming", Duration: "30", Calories: "200"})
	assert.ErrorIs(t, err, domain.ErrInvalidType)

	history, err := svc.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestWorkoutService_MixedHistoryOrdering(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	// Log three workouts in order; history comes back newest-first and the
	// filtered view preserves that ordering.
	_, err := svc.Log(ctx, domain.Candidate{Type: "Running", Duration: "30", Calories: "250"})
	require.NoError(t, err)
	_, err = svc.Log(ctx, domain.Candidate{Type: "Yoga", Duration: "45", Calories: "150"})
	require.NoError(t, err)
	_, err = svc.Log(ctx, domain.Candidate{Type: "Running", Duration: "20", Calories: "180"})
	require.NoError(t, err)

	history, err := svc.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, 20, history[0].DurationMin)
	assert.Equal(t, domain.TypeYoga, history[1].Type)
	assert.Equal(t, 30, history[2].DurationMin)

	runs, err := svc.Filter(ctx, domain.TypeRunning)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, 20, runs[0].DurationMin)
	assert.Equal(t, 30, runs[1].DurationMin)
}

func TestWorkoutService_FilterEmptyResult(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	_, err := svc.Log(ctx, domain.Candidate{Type: "Yoga", Duration: "45"})
	require.NoError(t, err)

	cycles, err := svc.Filter(ctx, domain.TypeCycling)
	require.NoError(t, err)
	assert.Empty(t, cycles)
}
