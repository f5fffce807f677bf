package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "fitbot/internal/delivery/context"
	"fitbot/internal/delivery/http/response"
	"fitbot/internal/domain/entity"
	domainerrors "fitbot/internal/domain/errors"
	"fitbot/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware error handling middleware
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

	if validationErr, ok := errors.AsType[*entity.ValidationError](err); ok {
		err = domainerrors.NewValidationError(validationErr)
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
			)
		}

		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, isString := httpErr.Message.(string); isString {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	// Unknown errors are logged in full and rendered generically
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message())
}
