// Package middleware holds the API-specific echo middleware.
package middleware

import (
	"log/slog"
	"net/http"

	"kanakku/config"
	"kanakku/internal/delivery/api/response"
	deliverycontext "kanakku/internal/delivery/context"
	domainerrors "kanakku/internal/domain/errors"
	"kanakku/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Server errors
// are logged and answered with a generic message; in debug mode the error
// text is returned as details.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if appErr, ok := errors.ClientError(err); ok {
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), errors.Details(appErr))

		return
	}

	if appErr, ok := errors.AsAppError(err); ok {
		m.logServerError(c, err)
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), m.debugDetails(err))

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		if httpErr.Code >= http.StatusInternalServerError {
			m.logServerError(c, err)
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	m.logServerError(c, err)
	_ = response.Error(c, http.StatusInternalServerError,
		domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message(), m.debugDetails(err))
}

func (m *ErrorMiddleware) logServerError(c echo.Context, err error) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}

func (m *ErrorMiddleware) debugDetails(err error) any {
	if !m.debug {
		return nil
	}

	return err.Error()
}
