package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "task-tracker/internal/auth/delivery/http"
	"task-tracker/internal/middleware"
)

// setupAuthDomain registers /api/token/generate.
func (srv HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := authHTTP.New(srv.l, srv.authUC)
	authHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Auth domain registered")
	return nil
}
