package http

import (
	"errors"
	"net/http"

	"task-tracker/internal/task"
	pkgErrors "task-tracker/pkg/errors"
)

var (
	errInvalidID   = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid task id")
	errInvalidDate = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid date")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Anything unrecognised is a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, task.ErrTaskNotFound.Error())
	case errors.Is(err, task.ErrEmptyTitle):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, task.ErrEmptyTitle.Error())
	case errors.Is(err, task.ErrEstimateUnavailable):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, task.ErrEstimateUnavailable.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
