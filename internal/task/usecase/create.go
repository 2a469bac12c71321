package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"task-tracker/internal/model"
	"task-tracker/internal/task"
	"task-tracker/internal/task/priority"
	"task-tracker/pkg/datemath"
)

// Create stores a new task. Missing ratings default to the mid-scale value,
// out-of-range ratings are clamped and a zero date means today.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.TaskOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return task.TaskOutput{}, task.ErrEmptyTitle
	}

	ratings := model.DefaultRatings()
	if input.Ratings != nil {
		ratings = *input.Ratings
	}

	tags, err := uc.resolveTags(ctx, input.Tags)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create resolveTags: %v", err)
		return task.TaskOutput{}, err
	}

	t := priority.Normalize(model.Task{
		Title:       input.Title,
		Description: input.Description,
		Date:        uc.civilDateOrToday(input.Date),
		Tags:        tags,
		Ratings:     ratings,
		Blocked:     input.Blocked,
		Completed:   input.Completed,
	})

	saved, err := uc.repo.SaveTask(ctx, t)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create SaveTask: %v", err)
		uc.cleanupOrphans(ctx, t.TagIDs())
		return task.TaskOutput{}, err
	}
	uc.invalidate()

	return task.TaskOutput{Task: saved}, nil
}

// CreateQuick creates a task for today with every rating at the maximum.
func (uc *implUseCase) CreateQuick(ctx context.Context, title string) (task.TaskOutput, error) {
	r := model.UniformRatings(model.MaxRating)
	return uc.Create(ctx, task.CreateTaskInput{
		Title:   title,
		Date:    uc.dates.Today(),
		Ratings: &r,
	})
}

// CreateQuickEstimated creates a task for today with estimator-suggested ratings.
func (uc *implUseCase) CreateQuickEstimated(ctx context.Context, title string) (task.TaskOutput, error) {
	if strings.TrimSpace(title) == "" {
		return task.TaskOutput{}, task.ErrEmptyTitle
	}
	if uc.estimator == nil {
		return task.TaskOutput{}, task.ErrEstimateUnavailable
	}

	r, err := uc.estimator.Estimate(ctx, title)
	if err != nil {
		uc.l.Warnf(ctx, "uc.CreateQuickEstimated Estimate: %v", err)
		return task.TaskOutput{}, fmt.Errorf("%w: %v", task.ErrEstimateUnavailable, err)
	}
	if r == nil {
		return task.TaskOutput{}, task.ErrEstimateUnavailable
	}

	return uc.Create(ctx, task.CreateTaskInput{
		Title:   title,
		Date:    uc.dates.Today(),
		Ratings: r,
	})
}

func (uc *implUseCase) civilDateOrToday(d time.Time) time.Time {
	if d.IsZero() {
		return uc.dates.Today()
	}
	return datemath.Date(d.Date())
}
