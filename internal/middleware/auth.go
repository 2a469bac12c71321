package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"task-tracker/pkg/response"
	"task-tracker/pkg/scope"
)

const bearerPrefix = "Bearer "

// Auth rejects requests without a valid bearer token and stores the token
// payload in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			response.Unauthorized(c)
			return
		}

		payload, err := m.jwtManager.Verify(strings.TrimSpace(header[len(bearerPrefix):]))
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		c.Request = c.Request.WithContext(scope.SetPayloadToContext(ctx, payload))
		c.Next()
	}
}
