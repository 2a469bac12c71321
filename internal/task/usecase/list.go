package usecase

import (
	"context"

	"task-tracker/internal/model"
	"task-tracker/internal/task"
	"task-tracker/internal/task/priority"
	repo "task-tracker/internal/task/repository"
	"task-tracker/pkg/datemath"
)

const cacheKeyAll = "all"

// List fetches tasks (cached per query), applies the tag filter and orders
// them. Unknown sort keys and directions fall back to defaults.
func (uc *implUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	tasks, err := uc.fetch(ctx, input)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List fetch: %v", err)
		return task.ListTasksOutput{}, err
	}

	if tags := normalizeTags(input.Tags); len(tags) > 0 {
		tasks = filterByTags(tasks, tags)
	}

	ordered := priority.Order(tasks, priority.ParseSortKey(input.SortBy), priority.ParseDirection(input.SortOrder))
	return task.ListTasksOutput{Tasks: ordered}, nil
}

// ListTags returns the distinct tag names sorted by name.
func (uc *implUseCase) ListTags(ctx context.Context) ([]string, error) {
	tags, err := uc.repo.ListTags(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListTags ListTags: %v", err)
		return nil, err
	}
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return names, nil
}

func (uc *implUseCase) fetch(ctx context.Context, input task.ListTasksInput) ([]model.Task, error) {
	key := cacheKeyAll
	opt := repo.ListTasksOptions{}
	if input.Date != nil {
		d := datemath.Date(input.Date.Date())
		key = "date:" + datemath.Format(d)
		opt.Date = &d
	}

	if cached, ok := uc.cache.Get(key); ok {
		return cached, nil
	}

	gen := uc.generation()
	tasks, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		return nil, err
	}
	uc.store(key, tasks, gen)
	return tasks, nil
}

func (uc *implUseCase) generation() uint64 {
	uc.cacheMu.Lock()
	defer uc.cacheMu.Unlock()
	return uc.cacheGen
}

// store caches tasks unless a write happened since gen was read.
func (uc *implUseCase) store(key string, tasks []model.Task, gen uint64) {
	uc.cacheMu.Lock()
	defer uc.cacheMu.Unlock()
	if uc.cacheGen != gen {
		return
	}
	uc.cache.Add(key, tasks)
}

func (uc *implUseCase) invalidate() {
	uc.cacheMu.Lock()
	defer uc.cacheMu.Unlock()
	uc.cacheGen++
	uc.cache.Purge()
}

// filterByTags keeps tasks carrying at least one of names.
func filterByTags(tasks []model.Task, names []string) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.HasAnyTag(names) {
			out = append(out, t)
		}
	}
	return out
}
