package sqlite

import (
	"context"

	"task-tracker/internal/model"
	repo "task-tracker/internal/task/repository"
)

func (r *implRepository) FindOrCreateTag(ctx context.Context, name string) (model.Tag, error) {
	const query = `
		INSERT INTO tags (name) VALUES (?)
		ON CONFLICT (name) DO UPDATE SET name = excluded.name
		RETURNING id, name`

	var tag model.Tag
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&tag.ID, &tag.Name); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindOrCreateTag"), err)
		return model.Tag{}, repo.ErrFailedToInsert
	}
	return tag, nil
}

func (r *implRepository) TagExistsOnAnyTask(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM task_tags WHERE tag_id = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("TagExistsOnAnyTask"), err)
		return false, repo.ErrFailedToGet
	}
	return exists, nil
}

func (r *implRepository) DeleteOrphanTag(ctx context.Context, id int64) (bool, error) {
	const query = `
		DELETE FROM tags
		WHERE id = ? AND NOT EXISTS (SELECT 1 FROM task_tags WHERE tag_id = ?)`

	res, err := r.db.ExecContext(ctx, query, id, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteOrphanTag"), err)
		return false, repo.ErrFailedToDelete
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *implRepository) ListTags(ctx context.Context) ([]model.Tag, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM tags ORDER BY name`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTags"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tags := []model.Tag{}
	for rows.Next() {
		var tag model.Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTags"), err)
			return nil, repo.ErrFailedToList
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTags"), err)
		return nil, repo.ErrFailedToList
	}
	return tags, nil
}
