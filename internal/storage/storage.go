// Package storage opens the configured task store and applies its schema.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"task-tracker/config"
	pgConn "task-tracker/config/postgre"
	sqliteConn "task-tracker/config/sqlite"
	"task-tracker/internal/model"
	"task-tracker/internal/task/repository"
	pgRepo "task-tracker/internal/task/repository/postgre"
	sqliteRepo "task-tracker/internal/task/repository/sqlite"
	"task-tracker/pkg/log"
)

// Store is an open database with its task repository.
type Store struct {
	DB     *sql.DB
	Repo   repository.Repository
	Driver model.StorageDriver
}

// Open connects to the driver named in cfg.Storage and migrates the schema.
func Open(ctx context.Context, cfg *config.Config, l log.Logger) (*Store, error) {
	driver := model.StorageDriver(cfg.Storage.Driver)

	var (
		db      *sql.DB
		err     error
		migrate func(context.Context, *sql.DB) error
		newRepo func(*sql.DB, log.Logger) repository.Repository
	)
	switch driver {
	case model.StoragePostgres:
		db, err = pgConn.Connect(ctx, cfg.Postgres)
		migrate, newRepo = pgConn.Migrate, pgRepo.New
	case model.StorageSQLite:
		db, err = sqliteConn.Connect(ctx, cfg.SQLite.Path)
		migrate, newRepo = sqliteConn.Migrate, sqliteRepo.New
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s: %w", driver, err)
	}
	l.Infof(ctx, "Storage ready: %s", driver)

	return &Store{DB: db, Repo: newRepo(db, l), Driver: driver}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
