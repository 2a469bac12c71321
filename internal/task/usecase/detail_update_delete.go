package usecase

import (
	"context"
	"errors"
	"strings"

	"task-tracker/internal/model"
	"task-tracker/internal/task"
	"task-tracker/internal/task/priority"
	repo "task-tracker/internal/task/repository"
)

// Detail retrieves a single Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (task.TaskOutput, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetTask: %v", err)
		return task.TaskOutput{}, err
	}
	if t.ID == 0 {
		return task.TaskOutput{}, task.ErrTaskNotFound
	}
	return task.TaskOutput{Task: t}, nil
}

// Update replaces every field of an existing Task, then drops tags that no
// task references any more. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.TaskOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return task.TaskOutput{}, task.ErrEmptyTitle
	}

	existing, err := uc.repo.GetTask(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetTask: %v", err)
		return task.TaskOutput{}, err
	}
	if existing.ID == 0 {
		return task.TaskOutput{}, task.ErrTaskNotFound
	}

	ratings := model.DefaultRatings()
	if input.Ratings != nil {
		ratings = *input.Ratings
	}

	tags, err := uc.resolveTags(ctx, input.Tags)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update resolveTags: %v", err)
		return task.TaskOutput{}, err
	}

	updated := priority.Normalize(model.Task{
		ID:          existing.ID,
		Title:       input.Title,
		Description: input.Description,
		Date:        uc.civilDateOrToday(input.Date),
		Tags:        tags,
		Ratings:     ratings,
		Blocked:     input.Blocked,
		Completed:   input.Completed,
	})

	saved, err := uc.repo.SaveTask(ctx, updated)
	if err != nil {
		// tags the stored task never carried may have been created above
		uc.cleanupOrphans(ctx, removedTagIDs(updated.Tags, existing.Tags))
		if errors.Is(err, repo.ErrNotFound) {
			return task.TaskOutput{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Update SaveTask: %v", err)
		return task.TaskOutput{}, err
	}
	uc.invalidate()

	uc.cleanupOrphans(ctx, removedTagIDs(existing.Tags, saved.Tags))
	return task.TaskOutput{Task: saved}, nil
}

// Delete removes a Task by ID and then its orphaned tags.
// Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	existing, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetTask: %v", err)
		return err
	}
	if existing.ID == 0 {
		return task.ErrTaskNotFound
	}

	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	uc.invalidate()

	uc.cleanupOrphans(ctx, existing.TagIDs())
	return nil
}
