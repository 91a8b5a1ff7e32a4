package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "bikeshare/internal/delivery/context"
	"bikeshare/internal/delivery/http/response"
	domainerrors "bikeshare/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
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

	// Application errors carry their own status and code.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("error", err.Error()),
				slog.String("code", appErr.ErrorCode()),
				slog.String("path", c.Request().URL.Path),
			)
		}

		m.write(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := httpMessage(httpErr)
		m.write(c, httpErr.Code, "HTTP_ERROR", message, message)

		return
	}

	// Anything else is a bug or an unclassified failure; the cause stays in the log.
	logger.Error("Unhandled error",
		slog.String("error", fmt.Sprintf("%+v", err)),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.write(c, http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message(), "")
}

func (m *ErrorMiddleware) write(c echo.Context, status int, code, message, details string) {
	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = response.Error(c, status, code, message, details)
	}
	if err != nil {
		m.logger.Error("Failed to write error response", slog.String("error", err.Error()))
	}
}

// httpMessage renders an echo.HTTPError message, which may hold any value.
func httpMessage(httpErr *echo.HTTPError) string {
	switch msg := httpErr.Message.(type) {
	case string:
		return msg
	case nil:
		return http.StatusText(httpErr.Code)
	case error:
		return msg.Error()
	default:
		return fmt.Sprint(msg)
	}
}
