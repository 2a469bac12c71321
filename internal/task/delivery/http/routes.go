package http

import (
	"github.com/gin-gonic/gin"

	"task-tracker/internal/middleware"
)

// RegisterRoutes maps task and tag routes onto the /api group. Every route
// requires a bearer token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth())
	{
		tasks.GET("", h.List)
		tasks.GET("/date/:date", h.ListByDate)
		tasks.GET("/:id", h.Detail)
		tasks.POST("", h.Create)
		tasks.POST("/quick", h.CreateQuick)
		tasks.POST("/quick/llm", h.CreateQuickEstimated)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
	}

	rg.GET("/tags", mw.Auth(), h.ListTags)
}
