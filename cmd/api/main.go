package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"task-tracker/config"
	_ "task-tracker/docs" // Swagger docs
	authUC "task-tracker/internal/auth/usecase"
	"task-tracker/internal/estimator"
	"task-tracker/internal/httpserver"
	"task-tracker/internal/scheduler"
	"task-tracker/internal/storage"
	"task-tracker/internal/task"
	taskUC "task-tracker/internal/task/usecase"
	"task-tracker/pkg/datemath"
	"task-tracker/pkg/log"
	"task-tracker/pkg/scope"
	"task-tracker/pkg/yandexgpt"
)

// @title       Task Tracker API
// @description Priority task tracker: weighted ordering, daily rollover and LLM-assisted rating.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled && isatty.IsTerminal(os.Stdout.Fd()),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	store, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open storage: ", err)
		return
	}
	defer store.Close()

	// 4. Reference timezone
	dates, err := datemath.NewParser(cfg.Rollover.Timezone)
	if err != nil {
		logger.Error(ctx, "Invalid rollover timezone: ", err)
		return
	}

	// 5. LLM estimator (optional)
	est := newEstimator(ctx, cfg, logger)

	// 6. Use cases
	tasks := taskUC.New(logger, store.Repo, est, dates, taskUC.Config{
		CacheSize: cfg.Cache.Size,
		CacheTTL:  cfg.Cache.TTL,
	})

	jwtManager, err := scope.New(cfg.JWT.Secret, cfg.JWT.TTL, nil)
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	tokens := authUC.New(logger, jwtManager, cfg.Auth.AppPassword)

	// 7. Daily rollover
	if cfg.Rollover.Enabled {
		daily := scheduler.New(logger, tasks, dates, cfg.Rollover.RunAt)
		go daily.Start(ctx)
		logger.Infof(ctx, "Rollover scheduled daily at %s after midnight %s", cfg.Rollover.RunAt, cfg.Rollover.Timezone)
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		DB:             store.DB,
		JWTManager:     jwtManager,
		TokenPerMin:    cfg.RateLimit.TokenPerMin,
		TaskUseCase:    tasks,
		AuthUseCase:    tokens,
		Dates:          dates,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newEstimator returns nil when the LLM is disabled or misconfigured, which
// leaves estimated quick tasks unavailable.
func newEstimator(ctx context.Context, cfg *config.Config, logger log.Logger) task.Estimator {
	y := cfg.LLM.Yandex
	if !y.Enabled {
		logger.Warn(ctx, "LLM estimator disabled")
		return nil
	}

	client, err := yandexgpt.New(yandexgpt.Config{
		CompletionURL: y.CompletionURL,
		IAMURL:        y.AuthURL,
		FolderID:      y.FolderID,
		OAuthToken:    y.OAuthToken,
		Model:         y.Model,
		Temperature:   y.Temperature,
		MaxTokens:     y.MaxTokens,
		Timeout:       y.Timeout,
		RetryAttempts: y.RetryAttempts,
		RetryDelay:    y.RetryDelay,
	})
	if err != nil {
		logger.Warnf(ctx, "LLM estimator not available: %v", err)
		return nil
	}

	logger.Infof(ctx, "LLM estimator initialized (model %s)", client.Model())
	return estimator.New(client, logger)
}
