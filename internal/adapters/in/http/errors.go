package http

import (
	"errors"
	"net/http"

	"evdealer/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps the application error taxonomy onto HTTP status codes.
// Unknown errors, including Fatal, come back as 500 with a generic message
// so internals never leak to clients.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrUnauthenticated):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
		message = err.Error()
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}
