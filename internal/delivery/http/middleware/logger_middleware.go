package middleware

import (
	"log/slog"
	"time"

	"bikeshare/config"
	deliverycontext "bikeshare/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request. In debug mode every
// request is logged; otherwise only failed ones.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// Resolve the status now; the error handler runs after the middleware chain.
			c.Error(err)
		}

		m.logRequest(c, start, err)

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	level := slog.LevelDebug
	switch {
	case res.Status >= 500:
		level = slog.LevelError
	case res.Status >= 400:
		level = slog.LevelWarn
	case m.debug:
		level = slog.LevelInfo
	}

	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	if !logger.Enabled(req.Context(), level) {
		return
	}

	latency := time.Since(start)
	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	if session, ok := deliverycontext.GetSession(c); ok {
		fields = append(fields, slog.Int64("user_id", session.UserID), slog.String("role", string(session.Role)))
	}

	if err != nil {
		fields = append(fields, slog.String("error", err.Error()))
	}

	logger.LogAttrs(req.Context(), level, "HTTP Request", fields...)
}
