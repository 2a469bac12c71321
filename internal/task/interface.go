package task

import (
	"context"
	"time"

	"task-tracker/internal/model"
)

// UseCase defines the business logic interface for the task domain.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Task CRUD
	Create(ctx context.Context, input CreateTaskInput) (TaskOutput, error)
	Detail(ctx context.Context, id int64) (TaskOutput, error)
	Update(ctx context.Context, input UpdateTaskInput) (TaskOutput, error)
	Delete(ctx context.Context, id int64) error

	// CreateQuick creates a task for today with every rating at maximum.
	CreateQuick(ctx context.Context, title string) (TaskOutput, error)

	// CreateQuickEstimated creates a task for today with ratings suggested by
	// the estimator. Returns ErrEstimateUnavailable when none could be produced.
	CreateQuickEstimated(ctx context.Context, title string) (TaskOutput, error)

	// Listing
	List(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)
	ListTags(ctx context.Context) ([]string, error)

	// RolloverOpenTasks moves incomplete tasks dated before today to today and
	// returns how many were moved.
	RolloverOpenTasks(ctx context.Context, today time.Time) (int, error)
}

// Estimator suggests ratings for a task title. A nil result with a nil error
// means no usable suggestion was produced.
type Estimator interface {
	Estimate(ctx context.Context, title string) (*model.Ratings, error)
}
