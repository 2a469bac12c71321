package postgre

import (
	"fmt"
	"strings"

	repo "task-tracker/internal/task/repository"
	"task-tracker/pkg/datemath"
)

// buildListQuery builds the WHERE clause + args for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.Date != nil {
		conditions = append(conditions, fmt.Sprintf("date = $%d", idx))
		args = append(args, datemath.Format(*opt.Date))
		idx++
	}
	if opt.Before != nil {
		conditions = append(conditions, fmt.Sprintf("date < $%d", idx))
		args = append(args, datemath.Format(*opt.Before))
		idx++
	}
	if opt.IncompleteOnly {
		conditions = append(conditions, "completed = FALSE")
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}
