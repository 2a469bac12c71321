package middleware

import (
	"task-tracker/pkg/log"
	"task-tracker/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	limiter    *rateLimiter
}

// New creates the middleware set. tokenPerMin bounds token requests per
// client IP.
func New(l log.Logger, jwtManager scope.Manager, tokenPerMin int) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		limiter:    newRateLimiter(tokenPerMin),
	}
}
