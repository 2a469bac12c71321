package main

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"task-tracker/config"
	"task-tracker/internal/storage"
	"task-tracker/pkg/log"
)

var rootCmd = &cobra.Command{
	Use:   "ctl",
	Short: "Operator commands for the task tracker",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(rolloverCmd)
	rootCmd.AddCommand(tokenCmd)
}

// env is what every subcommand needs: loaded config, a logger and, when
// asked for, an open store.
type env struct {
	cfg   *config.Config
	l     log.Logger
	store *storage.Store
}

func setup(ctx context.Context, withStore bool) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	l := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     "console",
		ColorEnabled: isatty.IsTerminal(os.Stderr.Fd()),
	})

	e := &env{cfg: cfg, l: l}
	if withStore {
		if e.store, err = storage.Open(ctx, cfg, l); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (e *env) close() {
	if e.store != nil {
		_ = e.store.Close()
	}
}
