package usecase_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"task-tracker/internal/model"
	"task-tracker/internal/task/repository"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

var errDB = errors.New("db error")

// memRepo is an in-memory repository.Repository.
type memRepo struct {
	mu        sync.Mutex
	tasks     map[int64]model.Task
	tags      map[int64]model.Tag
	nextTask  int64
	nextTag   int64
	listCalls int

	failSave    map[int64]bool
	failList    bool
	failTagScan bool
	failTagName string
}

func newMemRepo() *memRepo {
	return &memRepo{
		tasks:    map[int64]model.Task{},
		tags:     map[int64]model.Tag{},
		failSave: map[int64]bool{},
	}
}

func (m *memRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.failList {
		return nil, errDB
	}

	ids := make([]int64, 0, len(m.tasks))
	for id := range m.tasks {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := []model.Task{}
	for _, id := range ids {
		t := m.tasks[id]
		if opt.Date != nil && !t.Date.Equal(*opt.Date) {
			continue
		}
		if opt.Before != nil && !t.Date.Before(*opt.Before) {
			continue
		}
		if opt.IncompleteOnly && t.Completed {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *memRepo) ListIncompleteBefore(ctx context.Context, before time.Time) ([]model.Task, error) {
	return m.ListTasks(ctx, repository.ListTasksOptions{Before: &before, IncompleteOnly: true})
}

func (m *memRepo) GetTask(ctx context.Context, id int64) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tasks[id], nil
}

func (m *memRepo) SaveTask(ctx context.Context, t model.Task) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSave[t.ID] {
		return model.Task{}, errDB
	}
	if t.ID == 0 {
		m.nextTask++
		t.ID = m.nextTask
	} else if _, ok := m.tasks[t.ID]; !ok {
		return model.Task{}, repository.ErrNotFound
	}
	t.Tags = slices.Clone(t.Tags)
	m.tasks[t.ID] = t
	return t, nil
}

func (m *memRepo) DeleteTask(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tasks[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.tasks, id)
	return nil
}

func (m *memRepo) FindOrCreateTag(ctx context.Context, name string) (model.Tag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failTagName != "" && name == m.failTagName {
		return model.Tag{}, errDB
	}
	for _, t := range m.tags {
		if t.Name == name {
			return t, nil
		}
	}
	m.nextTag++
	tag := model.Tag{ID: m.nextTag, Name: name}
	m.tags[tag.ID] = tag
	return tag, nil
}

func (m *memRepo) tagInUse(id int64) bool {
	for _, t := range m.tasks {
		for _, tag := range t.Tags {
			if tag.ID == id {
				return true
			}
		}
	}
	return false
}

func (m *memRepo) TagExistsOnAnyTask(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failTagScan {
		return false, errDB
	}
	return m.tagInUse(id), nil
}

func (m *memRepo) DeleteOrphanTag(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.tagInUse(id) {
		return false, nil
	}
	_, ok := m.tags[id]
	delete(m.tags, id)
	return ok, nil
}

func (m *memRepo) ListTags(ctx context.Context) ([]model.Tag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Tag, 0, len(m.tags))
	for _, t := range m.tags {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b model.Tag) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		}
		return 0
	})
	return out, nil
}

func (m *memRepo) tagNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var names []string
	for _, t := range m.tags {
		names = append(names, t.Name)
	}
	slices.Sort(names)
	return names
}

// blockingRepo holds the first ListTasks call after it has read from
// storage until release is closed.
type blockingRepo struct {
	*memRepo
	once    sync.Once
	read    chan struct{}
	release chan struct{}
}

func newBlockingRepo() *blockingRepo {
	return &blockingRepo{
		memRepo: newMemRepo(),
		read:    make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (b *blockingRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	tasks, err := b.memRepo.ListTasks(ctx, opt)
	b.once.Do(func() {
		close(b.read)
		<-b.release
	})
	return tasks, err
}

type mockEstimator struct {
	ratings *model.Ratings
	err     error
	titles  []string
}

func (m *mockEstimator) Estimate(ctx context.Context, title string) (*model.Ratings, error) {
	m.titles = append(m.titles, title)
	return m.ratings, m.err
}
