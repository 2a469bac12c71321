// Package postgre opens and migrates the PostgreSQL database.
package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"task-tracker/config"
)

const connectTimeout = 10 * time.Second

// DSN builds a lib/pq connection string from cfg.
func DSN(cfg config.PostgresConfig) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)
}

// Connect opens a pool and verifies it with a ping.
func Connect(ctx context.Context, cfg config.PostgresConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return db, nil
}

// Disconnect closes the pool.
func Disconnect(db *sql.DB) error {
	if db == nil {
		return nil
	}
	return db.Close()
}

// Migrate applies the schema idempotently.
func Migrate(ctx context.Context, db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			date DATE NOT NULL,
			importance INTEGER NOT NULL DEFAULT 5,
			urgency INTEGER NOT NULL DEFAULT 5,
			personal_interest INTEGER NOT NULL DEFAULT 5,
			execution_time INTEGER NOT NULL DEFAULT 5,
			complexity INTEGER NOT NULL DEFAULT 5,
			concentration INTEGER NOT NULL DEFAULT 5,
			blocked BOOLEAN NOT NULL DEFAULT FALSE,
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			weight DOUBLE PRECISION NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS tags (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS task_tags (
			task_id BIGINT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
			tag_id BIGINT NOT NULL REFERENCES tags(id),
			PRIMARY KEY (task_id, tag_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_date ON tasks(date)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_open_date ON tasks(date) WHERE completed = FALSE`,
		`CREATE INDEX IF NOT EXISTS idx_task_tags_tag ON task_tags(tag_id)`,
	}

	for _, m := range migrations {
		if _, err := db.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}
