package middleware

import (
	"log/slog"
	"net/http"

	"registry/internal/delivery/api/response"
	"registry/internal/delivery/api/validator"
	deliverycontext "registry/internal/delivery/context"
	domainerrors "registry/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	if fields := validator.FieldErrors(err); fields != nil {
		_ = response.Error(c, http.StatusBadRequest,
			domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(),
			fields,
		)

		return
	}

	// Attempt to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		attrs := []any{
			slog.String("code", appErr.ErrorCode()),
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		}
		// Business errors are expected outcomes, not faults
		if domainerrors.IsBusinessError(err) {
			logger.Warn("Request rejected", attrs...)
		} else {
			logger.Error("Request failed", attrs...)
		}

		// Do not expose internal details for 5xx errors
		var details any
		if appErr.HTTPCode() < http.StatusInternalServerError && appErr.Details() != "" {
			details = appErr.Details()
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)

		return
	}

	// Check if it is an Echo HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), "Internal server error, please try again later")
}
