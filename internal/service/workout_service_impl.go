package service

import (
	"context"

	"github.com/alexanderramin/fitlog/internal/domain"
	"github.com/alexanderramin/fitlog/internal/store"
)

type workoutService struct {
	store store.Store
}

// NewWorkoutService creates a WorkoutService on the given store.
func NewWorkoutService(s store.Store) WorkoutService {
	return &workoutService{store: s}
}

// Log validates the candidate and appends the resulting record. A failed
// validation returns before the store is touched.
func (s *workoutService) Log(ctx context.Context, c domain.Candidate) (*domain.WorkoutRecord, error) {
	r, err := domain.Validate(c)
	if err != nil {
		return nil, err
	}
	if err := s.store.Append(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *workoutService) History(ctx context.Context) ([]*domain.WorkoutRecord, error) {
	return s.store.ListAll(ctx)
}

func (s *workoutService) Filter(ctx context.Context, t domain.WorkoutType) ([]*domain.WorkoutRecord, error) {
	return s.store.ListByType(ctx, t)
}
