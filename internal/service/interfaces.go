package service

import (
	"context"

	"github.com/alexanderramin/fitlog/internal/domain"
)

// WorkoutService is the surface the CLI consumes: submit a candidate for
// validation and storage, read the full history, or read a filtered view.
type WorkoutService interface {
	Log(ctx context.Context, c domain.Candidate) (*domain.WorkoutRecord, error)
	History(ctx context.Context) ([]*domain.WorkoutRecord, error)
	Filter(ctx context.Context, t domain.WorkoutType) ([]*domain.WorkoutRecord, error)
}
