package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"task-tracker/internal/middleware"
	taskHTTP "task-tracker/internal/task/delivery/http"
)

// setupTaskDomain registers /api/tasks and /api/tags.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := taskHTTP.New(srv.l, srv.taskUC, srv.dates)
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
