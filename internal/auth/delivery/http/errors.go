package http

import (
	"errors"
	"net/http"

	"task-tracker/internal/auth"
	pkgErrors "task-tracker/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrWrongPassword):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, auth.ErrWrongPassword.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
