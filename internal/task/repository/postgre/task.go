package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"task-tracker/internal/model"
	repo "task-tracker/internal/task/repository"
	"task-tracker/pkg/datemath"
)

const taskColumns = `id, title, description, date, importance, urgency, personal_interest,
	execution_time, complexity, concentration, blocked, completed, weight`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(s rowScanner) (model.Task, error) {
	var t model.Task
	var date time.Time
	err := s.Scan(
		&t.ID, &t.Title, &t.Description, &date,
		&t.Ratings.Importance, &t.Ratings.Urgency, &t.Ratings.PersonalInterest,
		&t.Ratings.ExecutionTime, &t.Ratings.Complexity, &t.Ratings.Concentration,
		&t.Blocked, &t.Completed, &t.Weight,
	)
	if err != nil {
		return model.Task{}, err
	}
	t.Date = datemath.Date(date.Year(), date.Month(), date.Day())
	return t, nil
}

// ListTasks returns tasks matching opt ordered by id.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	where, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE %s ORDER BY id`, taskColumns, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}

	if err := r.attachTags(ctx, tasks); err != nil {
		r.l.Errorf(ctx, "%s tags: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// ListIncompleteBefore returns open tasks dated strictly before the given day.
func (r *implRepository) ListIncompleteBefore(ctx context.Context, before time.Time) ([]model.Task, error) {
	return r.ListTasks(ctx, repo.ListTasksOptions{Before: &before, IncompleteOnly: true})
}

// GetTask retrieves a single Task by id.
// Returns zero-value Task (ID == 0) when not found.
func (r *implRepository) GetTask(ctx context.Context, id int64) (model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = $1`, taskColumns)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}

	tasks := []model.Task{t}
	if err := r.attachTags(ctx, tasks); err != nil {
		r.l.Errorf(ctx, "%s tags: %v", r.dsn("GetTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return tasks[0], nil
}

// SaveTask upserts the task row and replaces its tag links in one transaction.
func (r *implRepository) SaveTask(ctx context.Context, t model.Task) (model.Task, error) {
	failed := repo.ErrFailedToUpdate
	if t.ID == 0 {
		failed = repo.ErrFailedToInsert
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("SaveTask"), err)
		return model.Task{}, failed
	}
	defer tx.Rollback()

	args := []any{
		t.Title, t.Description, datemath.Format(t.Date),
		t.Ratings.Importance, t.Ratings.Urgency, t.Ratings.PersonalInterest,
		t.Ratings.ExecutionTime, t.Ratings.Complexity, t.Ratings.Concentration,
		t.Blocked, t.Completed, t.Weight,
	}

	if t.ID == 0 {
		const query = `
			INSERT INTO tasks (title, description, date, importance, urgency, personal_interest,
				execution_time, complexity, concentration, blocked, completed, weight)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id`
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&t.ID); err != nil {
			r.l.Errorf(ctx, "%s insert: %v", r.dsn("SaveTask"), err)
			return model.Task{}, failed
		}
	} else {
		const query = `
			UPDATE tasks
			SET title = $1, description = $2, date = $3, importance = $4, urgency = $5,
				personal_interest = $6, execution_time = $7, complexity = $8,
				concentration = $9, blocked = $10, completed = $11, weight = $12
			WHERE id = $13`
		res, err := tx.ExecContext(ctx, query, append(args, t.ID)...)
		if err != nil {
			r.l.Errorf(ctx, "%s update: %v", r.dsn("SaveTask"), err)
			return model.Task{}, failed
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return model.Task{}, repo.ErrNotFound
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM task_tags WHERE task_id = $1`, t.ID); err != nil {
			r.l.Errorf(ctx, "%s unlink: %v", r.dsn("SaveTask"), err)
			return model.Task{}, failed
		}
	}

	for _, tag := range t.Tags {
		const query = `INSERT INTO task_tags (task_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
		if _, err := tx.ExecContext(ctx, query, t.ID, tag.ID); err != nil {
			r.l.Errorf(ctx, "%s link: %v", r.dsn("SaveTask"), err)
			return model.Task{}, failed
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("SaveTask"), err)
		return model.Task{}, failed
	}
	return t, nil
}

// DeleteTask removes a Task and its tag links.
func (r *implRepository) DeleteTask(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// attachTags loads tag links for tasks in a single query.
func (r *implRepository) attachTags(ctx context.Context, tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	ids := make([]int64, len(tasks))
	index := make(map[int64]int, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
		index[t.ID] = i
	}

	const query = `
		SELECT tt.task_id, g.id, g.name
		FROM task_tags tt
		JOIN tags g ON g.id = tt.tag_id
		WHERE tt.task_id = ANY($1)
		ORDER BY g.name`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var taskID int64
		var tag model.Tag
		if err := rows.Scan(&taskID, &tag.ID, &tag.Name); err != nil {
			return err
		}
		i := index[taskID]
		tasks[i].Tags = append(tasks[i].Tags, tag)
	}
	return rows.Err()
}
