package http

import (
	"task-tracker/internal/task"
	"task-tracker/pkg/datemath"
	"task-tracker/pkg/log"
)

type handler struct {
	l     log.Logger
	uc    task.UseCase
	dates *datemath.Parser
}

// New creates a new HTTP handler for the task domain. dates resolves the
// relative date segment of the by-date listing route.
func New(l log.Logger, uc task.UseCase, dates *datemath.Parser) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		dates: dates,
	}
}
