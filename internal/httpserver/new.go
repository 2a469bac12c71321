package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"task-tracker/internal/auth"
	"task-tracker/internal/task"
	"task-tracker/pkg/datemath"
	"task-tracker/pkg/log"
	"task-tracker/pkg/scope"
)

const shutdownTimeout = 10 * time.Second

// Pinger reports whether a backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	corsOrigins []string
	db          Pinger

	// Auth
	jwtManager  scope.Manager
	tokenPerMin int

	// Domains
	taskUC task.UseCase
	authUC auth.UseCase
	dates  *datemath.Parser
}

// Config is the dependency bag passed to New().
type Config struct {
	Port           int
	Mode           string
	Environment    string
	AllowedOrigins []string
	DB             Pinger

	JWTManager  scope.Manager
	TokenPerMin int

	TaskUseCase task.UseCase
	AuthUseCase auth.UseCase
	Dates       *datemath.Parser
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		corsOrigins: cfg.AllowedOrigins,
		db:          cfg.DB,
		jwtManager:  cfg.JWTManager,
		tokenPerMin: cfg.TokenPerMin,
		taskUC:      cfg.TaskUseCase,
		authUC:      cfg.AuthUseCase,
		dates:       cfg.Dates,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.taskUC == nil {
		return errors.New("task usecase is required")
	}
	if srv.authUC == nil {
		return errors.New("auth usecase is required")
	}
	if srv.dates == nil {
		return errors.New("date parser is required")
	}
	return nil
}
