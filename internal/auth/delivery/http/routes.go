package http

import (
	"github.com/gin-gonic/gin"

	"task-tracker/internal/middleware"
)

// RegisterRoutes mounts token issuance. It is public but rate limited per
// client IP.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	token := rg.Group("/token")
	{
		token.POST("/generate", mw.RateLimit(), h.GenerateToken)
	}
}
