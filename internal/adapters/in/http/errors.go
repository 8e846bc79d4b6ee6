package http

import (
	"errors"
	"log/slog"
	"net/http"

	"fooddelivery/internal/adapters/out/security"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var (
	errMissingToken = errors.New("missing bearer token")
	errForbidden    = errors.New("insufficient role")
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func statusOf(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, commands.ErrInvalidCredentials),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, errMissingToken):
		return http.StatusUnauthorized
	case errors.Is(err, errForbidden), errors.Is(err, errs.ErrOwnershipViolation):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidStateTransition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvariantViolation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Server errors are logged and their
// details are not sent to the client.
func (s *Server) fail(c echo.Context, err error) error {
	status := statusOf(err)
	message := err.Error()

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
	}

	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			slog.String("method", c.Request().Method),
			slog.String("path", c.Path()),
			slog.Any("error", err),
		)
		message = http.StatusText(status)
	}

	return c.JSON(status, Error{Code: status, Message: message})
}

func badRequest(message string, cause error) error {
	return echo.NewHTTPError(http.StatusBadRequest, message).SetInternal(cause)
}
