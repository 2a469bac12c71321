package task

import (
	"time"

	"task-tracker/internal/model"
)

// --- UseCase Inputs ---

// CreateTaskInput carries a new task. Nil Ratings default to model.DefaultRatings.
type CreateTaskInput struct {
	Title       string
	Description string
	Date        time.Time
	Tags        []string
	Ratings     *model.Ratings
	Blocked     bool
	Completed   bool
}

// UpdateTaskInput fully replaces the stored task with the given ID.
type UpdateTaskInput struct {
	ID          int64
	Title       string
	Description string
	Date        time.Time
	Tags        []string
	Ratings     *model.Ratings
	Blocked     bool
	Completed   bool
}

// ListTasksInput selects and orders tasks. A nil Date lists every task.
// Tags filters with OR semantics; empty means no filter.
type ListTasksInput struct {
	Date      *time.Time
	SortBy    string
	SortOrder string
	Tags      []string
}

// --- UseCase Outputs ---

type TaskOutput struct {
	Task model.Task
}

type ListTasksOutput struct {
	Tasks []model.Task
}
