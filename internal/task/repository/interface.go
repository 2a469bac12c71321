package repository

import (
	"context"
	"time"

	"task-tracker/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
	TagRepository
}

// TaskRepository defines data access methods for the Task entity.
type TaskRepository interface {
	// ListTasks returns tasks with their tags in storage order (by id).
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	// ListIncompleteBefore returns tasks with completed=false and date < before.
	ListIncompleteBefore(ctx context.Context, before time.Time) ([]model.Task, error)
	// GetTask returns the zero Task (ID == 0) when absent.
	GetTask(ctx context.Context, id int64) (model.Task, error)
	// SaveTask inserts when task.ID is 0 and updates otherwise. The stored tag
	// links are replaced by task.Tags, whose IDs must already exist.
	SaveTask(ctx context.Context, task model.Task) (model.Task, error)
	// DeleteTask returns ErrNotFound when no row was deleted.
	DeleteTask(ctx context.Context, id int64) error
}

// TagRepository defines data access methods for the Tag entity.
type TagRepository interface {
	FindOrCreateTag(ctx context.Context, name string) (model.Tag, error)
	TagExistsOnAnyTask(ctx context.Context, id int64) (bool, error)
	// DeleteOrphanTag deletes the tag only if no task references it and
	// reports whether a row was removed.
	DeleteOrphanTag(ctx context.Context, id int64) (bool, error)
	ListTags(ctx context.Context) ([]model.Tag, error)
}
