package sqlite

import (
	"context"
	"errors"
	"slices"
	"testing"

	sqlitedb "task-tracker/config/sqlite"
	"task-tracker/internal/model"
	repo "task-tracker/internal/task/repository"
	"task-tracker/pkg/datemath"
	"task-tracker/pkg/log"
)

func newTestRepo(t *testing.T) repo.Repository {
	t.Helper()
	ctx := context.Background()
	db, err := sqlitedb.Connect(ctx, sqlitedb.MemoryPath)
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := sqlitedb.Migrate(ctx, db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return New(db, log.NewNop())
}

func mustTag(t *testing.T, r repo.Repository, name string) model.Tag {
	t.Helper()
	tag, err := r.FindOrCreateTag(context.Background(), name)
	if err != nil {
		t.Fatalf("FindOrCreateTag(%q) error = %v", name, err)
	}
	return tag
}

func mustSave(t *testing.T, r repo.Repository, task model.Task) model.Task {
	t.Helper()
	saved, err := r.SaveTask(context.Background(), task)
	if err != nil {
		t.Fatalf("SaveTask() error = %v", err)
	}
	return saved
}

func TestSaveAndGetTask(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	work := mustTag(t, r, "work")
	home := mustTag(t, r, "home")

	in := model.Task{
		Title:       "write report",
		Description: "quarterly",
		Date:        datemath.Date(2024, 1, 2),
		Tags:        []model.Tag{work, home},
		Ratings:     model.Ratings{Importance: 9, Urgency: 8, PersonalInterest: 3, ExecutionTime: 4, Complexity: 6, Concentration: 7},
		Blocked:     true,
		Weight:      6.5,
	}
	saved := mustSave(t, r, in)
	if saved.ID == 0 {
		t.Fatal("SaveTask() did not assign an id")
	}

	got, err := r.GetTask(ctx, saved.ID)
	if err != nil {
		t.Fatalf("GetTask() error = %v", err)
	}
	if got.Title != in.Title || got.Description != in.Description || !got.Date.Equal(in.Date) {
		t.Errorf("GetTask() = %+v", got)
	}
	if got.Ratings != in.Ratings || !got.Blocked || got.Completed || got.Weight != 6.5 {
		t.Errorf("GetTask() fields = %+v", got)
	}
	if names := got.TagNames(); !slices.Equal(names, []string{"home", "work"}) {
		t.Errorf("TagNames() = %v", names)
	}

	t.Run("update replaces tag links", func(t *testing.T) {
		got.Tags = []model.Tag{work}
		got.Completed = true
		mustSave(t, r, got)

		again, _ := r.GetTask(ctx, got.ID)
		if !again.Completed || !slices.Equal(again.TagNames(), []string{"work"}) {
			t.Errorf("after update = %+v", again)
		}
	})

	t.Run("update of missing task", func(t *testing.T) {
		_, err := r.SaveTask(ctx, model.Task{ID: 999, Title: "x", Date: in.Date})
		if !errors.Is(err, repo.ErrNotFound) {
			t.Errorf("SaveTask() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("missing task is zero value", func(t *testing.T) {
		got, err := r.GetTask(ctx, 12345)
		if err != nil || got.ID != 0 {
			t.Errorf("GetTask() = %+v, %v", got, err)
		}
	})
}

func TestListTasks(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	d1 := datemath.Date(2024, 1, 1)
	d2 := datemath.Date(2024, 1, 2)
	d3 := datemath.Date(2024, 1, 3)

	a := mustSave(t, r, model.Task{Title: "a", Date: d1})
	b := mustSave(t, r, model.Task{Title: "b", Date: d1, Completed: true})
	c := mustSave(t, r, model.Task{Title: "c", Date: d2})
	mustSave(t, r, model.Task{Title: "d", Date: d3})

	taskIDs := func(ts []model.Task) []int64 {
		var out []int64
		for _, t := range ts {
			out = append(out, t.ID)
		}
		return out
	}

	all, err := r.ListTasks(ctx, repo.ListTasksOptions{})
	if err != nil || len(all) != 4 {
		t.Fatalf("ListTasks(all) = %d tasks, %v", len(all), err)
	}

	byDate, err := r.ListTasks(ctx, repo.ListTasksOptions{Date: &d1})
	if err != nil {
		t.Fatalf("ListTasks(date) error = %v", err)
	}
	if got := taskIDs(byDate); !slices.Equal(got, []int64{a.ID, b.ID}) {
		t.Errorf("ListTasks(date) = %v", got)
	}

	open, err := r.ListIncompleteBefore(ctx, d3)
	if err != nil {
		t.Fatalf("ListIncompleteBefore() error = %v", err)
	}
	if got := taskIDs(open); !slices.Equal(got, []int64{a.ID, c.ID}) {
		t.Errorf("ListIncompleteBefore() = %v", got)
	}
}

func TestDeleteTask(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	tag := mustTag(t, r, "x")
	task := mustSave(t, r, model.Task{Title: "a", Date: datemath.Date(2024, 1, 1), Tags: []model.Tag{tag}})

	if err := r.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}
	if err := r.DeleteTask(ctx, task.ID); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("second DeleteTask() error = %v, want ErrNotFound", err)
	}
	exists, err := r.TagExistsOnAnyTask(ctx, tag.ID)
	if err != nil || exists {
		t.Errorf("TagExistsOnAnyTask() = %v, %v; want false", exists, err)
	}
}

func TestTags(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	first := mustTag(t, r, "Work")
	second := mustTag(t, r, "Work")
	if first.ID != second.ID {
		t.Errorf("FindOrCreateTag not idempotent: %d vs %d", first.ID, second.ID)
	}
	lower := mustTag(t, r, "work")
	if lower.ID == first.ID {
		t.Error("tag names must be case sensitive")
	}

	mustSave(t, r, model.Task{Title: "a", Date: datemath.Date(2024, 1, 1), Tags: []model.Tag{first}})

	t.Run("referenced tag survives conditional delete", func(t *testing.T) {
		exists, err := r.TagExistsOnAnyTask(ctx, first.ID)
		if err != nil || !exists {
			t.Fatalf("TagExistsOnAnyTask() = %v, %v", exists, err)
		}
		deleted, err := r.DeleteOrphanTag(ctx, first.ID)
		if err != nil || deleted {
			t.Errorf("DeleteOrphanTag() = %v, %v; want false", deleted, err)
		}
	})

	t.Run("orphan is removed", func(t *testing.T) {
		deleted, err := r.DeleteOrphanTag(ctx, lower.ID)
		if err != nil || !deleted {
			t.Errorf("DeleteOrphanTag() = %v, %v; want true", deleted, err)
		}
	})

	t.Run("list sorted by name", func(t *testing.T) {
		mustTag(t, r, "Alpha")
		tags, err := r.ListTags(ctx)
		if err != nil {
			t.Fatalf("ListTags() error = %v", err)
		}
		var names []string
		for _, tag := range tags {
			names = append(names, tag.Name)
		}
		if !slices.Equal(names, []string{"Alpha", "Work"}) {
			t.Errorf("ListTags() = %v", names)
		}
	})

}
