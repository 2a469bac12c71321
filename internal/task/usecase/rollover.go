package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"task-tracker/pkg/datemath"
)

// rolloverNoteFormat is appended to the description of every moved task.
const rolloverNoteFormat = "[Перенесено с %s]"

// RolloverOpenTasks moves every incomplete task dated before today to today
// and appends a note with the original date. Tasks are saved one by one; a
// failed save is logged and skipped so the rest of the batch still moves.
// Returns the number of tasks moved and the joined save errors.
func (uc *implUseCase) RolloverOpenTasks(ctx context.Context, today time.Time) (int, error) {
	today = datemath.Date(today.Date())

	tasks, err := uc.repo.ListIncompleteBefore(ctx, today)
	if err != nil {
		uc.l.Errorf(ctx, "uc.RolloverOpenTasks ListIncompleteBefore: %v", err)
		return 0, err
	}

	var (
		moved int
		errs  []error
	)
	for _, t := range tasks {
		oldDate := t.Date
		t.Date = today
		t.Description = appendRolloverNote(t.Description, oldDate)

		if _, err := uc.repo.SaveTask(ctx, t); err != nil {
			uc.l.Errorf(ctx, "uc.RolloverOpenTasks SaveTask id=%d: %v", t.ID, err)
			errs = append(errs, fmt.Errorf("task %d: %w", t.ID, err))
			continue
		}
		moved++
	}

	if moved > 0 {
		uc.invalidate()
	}
	uc.l.Infof(ctx, "uc.RolloverOpenTasks: moved %d of %d tasks to %s", moved, len(tasks), datemath.Format(today))

	return moved, errors.Join(errs...)
}

func appendRolloverNote(description string, oldDate time.Time) string {
	note := fmt.Sprintf(rolloverNoteFormat, datemath.Format(oldDate))
	if description == "" {
		return note
	}
	return description + "\n" + note
}
