package sqlite

import (
	"strings"

	repo "task-tracker/internal/task/repository"
	"task-tracker/pkg/datemath"
)

// buildListQuery builds the WHERE clause + args for ListTasks. Dates are
// stored as ISO text so lexical comparison matches calendar order.
func buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.Date != nil {
		conditions = append(conditions, "date = ?")
		args = append(args, datemath.Format(*opt.Date))
	}
	if opt.Before != nil {
		conditions = append(conditions, "date < ?")
		args = append(args, datemath.Format(*opt.Before))
	}
	if opt.IncompleteOnly {
		conditions = append(conditions, "completed = 0")
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}
