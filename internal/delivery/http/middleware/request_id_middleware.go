package middleware

import (
	"log/slog"

	deliverycontext "bikeshare/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware tags every request with an ID and a request-scoped logger.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses a well-formed caller X-Request-Id or generates one, then echoes it back.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		deliverycontext.BindRequest(c, deliverycontext.RequestIDFrom(c), m.logger)

		return next(c)
	}
}
