// Package scheduler runs the task rollover once per civil day.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"task-tracker/pkg/datemath"
	"task-tracker/pkg/log"
)

// ErrAlreadyRunning is returned by RunOnce while another run is in progress.
var ErrAlreadyRunning = errors.New("rollover already running")

// Runner performs the rollover for the given civil date.
type Runner interface {
	RolloverOpenTasks(ctx context.Context, today time.Time) (int, error)
}

// Daily triggers Runner every day at a fixed offset after local midnight.
type Daily struct {
	l      log.Logger
	runner Runner
	dates  *datemath.Parser
	runAt  time.Duration

	now   func() time.Time
	after func(time.Duration) <-chan time.Time

	mu sync.Mutex // held for the duration of a run
}

// New creates a daily scheduler. runAt is the offset after midnight in the
// parser's timezone.
func New(l log.Logger, runner Runner, dates *datemath.Parser, runAt time.Duration) *Daily {
	return &Daily{
		l:      l,
		runner: runner,
		dates:  dates,
		runAt:  runAt,
		now:    time.Now,
		after:  time.After,
	}
}

// Start blocks, firing a run at every scheduled instant until ctx is done.
func (d *Daily) Start(ctx context.Context) {
	for {
		now := d.now()
		next := NextRun(now, d.dates.Location(), d.runAt)
		d.l.Infof(ctx, "scheduler: next rollover at %s", next.Format(time.RFC3339))

		select {
		case <-ctx.Done():
			d.l.Info(ctx, "scheduler: stopped")
			return
		case <-d.after(next.Sub(now)):
		}

		if _, err := d.RunOnce(ctx); err != nil && !errors.Is(err, ErrAlreadyRunning) {
			d.l.Errorf(ctx, "scheduler: rollover failed: %v", err)
		}
	}
}

// RunOnce runs the rollover for the current civil date unless a run is
// already in progress.
func (d *Daily) RunOnce(ctx context.Context) (int, error) {
	if !d.mu.TryLock() {
		d.l.Warn(ctx, "scheduler: previous rollover still running, skipping")
		return 0, ErrAlreadyRunning
	}
	defer d.mu.Unlock()

	today := d.dates.CivilDate(d.now())
	n, err := d.runner.RolloverOpenTasks(ctx, today)
	d.l.Infof(ctx, "scheduler: rollover for %s moved %d tasks", datemath.Format(today), n)
	return n, err
}

// NextRun returns the first instant strictly after now that falls offset
// past midnight in loc.
func NextRun(now time.Time, loc *time.Location, offset time.Duration) time.Time {
	local := now.In(loc)
	y, m, day := local.Date()

	next := time.Date(y, m, day, 0, 0, 0, 0, loc).Add(offset)
	if !next.After(local) {
		next = time.Date(y, m, day+1, 0, 0, 0, 0, loc).Add(offset)
	}
	return next
}
