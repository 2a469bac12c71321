package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"task-tracker/internal/model"
	"task-tracker/internal/task"
	"task-tracker/internal/task/repository"
	"task-tracker/pkg/datemath"
	pkgLog "task-tracker/pkg/log"
)

const defaultCacheSize = 256

// DefaultCacheTTL is how long list results stay cached when no TTL is set.
const DefaultCacheTTL = 10 * time.Minute

// Config tunes the task-list cache.
type Config struct {
	CacheSize int
	CacheTTL  time.Duration
}

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	estimator task.Estimator
	dates     *datemath.Parser

	// fetched task lists keyed by query; purged on every write
	cache *expirable.LRU[string, []model.Task]

	// cacheMu guards cacheGen, which invalidate bumps so that a read started
	// before a write never repopulates the cache after it.
	cacheMu  sync.Mutex
	cacheGen uint64
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase instance. estimator may be nil, in which
// case estimated quick tasks are unavailable.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	estimator task.Estimator,
	dates *datemath.Parser,
	cfg Config,
) *implUseCase {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	return &implUseCase{
		l:         l,
		repo:      repo,
		estimator: estimator,
		dates:     dates,
		cache:     expirable.NewLRU[string, []model.Task](cfg.CacheSize, nil, cfg.CacheTTL),
	}
}
