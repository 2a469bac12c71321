package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"task-tracker/internal/scheduler"
	taskUC "task-tracker/internal/task/usecase"
	"task-tracker/pkg/datemath"
)

var rolloverDate string

var rolloverCmd = &cobra.Command{
	Use:   "rollover",
	Short: "Move unfinished past tasks to today",
	Long: `Move every incomplete task dated before today to today and note the
original date in its description.

Use --date to roll over onto a different day (YYYY-MM-DD or a relative
expression such as "tomorrow").

A running API server keeps serving its cached task lists until cache.ttl
expires, so it may not show the moved tasks right away. Keep cache.ttl short
or let the server's own scheduler do the rollover.`,
	RunE: runRollover,
}

func init() {
	rolloverCmd.Flags().StringVarP(&rolloverDate, "date", "d", "", "Target date (default: today in the reference timezone)")
}

func runRollover(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	e, err := setup(ctx, true)
	if err != nil {
		return err
	}
	defer e.close()

	dates, err := datemath.NewParser(e.cfg.Rollover.Timezone)
	if err != nil {
		return err
	}

	uc := taskUC.New(e.l, e.store.Repo, nil, dates, taskUC.Config{})

	var moved int
	if rolloverDate == "" {
		moved, err = scheduler.New(e.l, uc, dates, e.cfg.Rollover.RunAt).RunOnce(ctx)
	} else {
		moved, err = rolloverOnto(ctx, uc, dates, rolloverDate)
	}

	fmt.Fprint(cmd.OutOrStdout(), rolloverSummary(moved, e.cfg.Cache.TTL))
	return err
}

// rolloverSummary reports the moved count and, when anything moved, how long
// another process may keep serving its cached lists.
func rolloverSummary(moved int, cacheTTL time.Duration) string {
	msg := fmt.Sprintf("moved %d task(s)\n", moved)
	if cacheTTL <= 0 {
		cacheTTL = taskUC.DefaultCacheTTL
	}
	if moved > 0 {
		msg += fmt.Sprintf("note: a running API server may serve cached lists for up to %s\n", cacheTTL)
	}
	return msg
}

func rolloverOnto(ctx context.Context, r scheduler.Runner, dates *datemath.Parser, s string) (int, error) {
	day, err := dates.Resolve(s)
	if err != nil {
		return 0, fmt.Errorf("invalid --date %q: %w", s, err)
	}
	return r.RolloverOpenTasks(ctx, day)
}
