package repository

import "time"

// ListTasksOptions holds filter parameters for listing Tasks.
// All non-nil fields are applied as AND conditions.
type ListTasksOptions struct {
	Date           *time.Time // date = Date
	Before         *time.Time // date < Before
	IncompleteOnly bool
}
