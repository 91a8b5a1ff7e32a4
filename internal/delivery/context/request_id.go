package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID carries the request ID, in echo.Context and in context.Context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger carries the request-scoped logger in context.Context.
	KeyLogger ContextKey = "logger"

	// HeaderXRequestID is read from callers and forwarded to the marketplace.
	HeaderXRequestID = "X-Request-Id"
)

// maxRequestIDLength bounds caller-supplied IDs.
const maxRequestIDLength = 64

// RequestIDFrom returns the caller's X-Request-Id when it is a usable token, otherwise a new UUID.
// The ID ends up in upstream headers and log lines, so only [A-Za-z0-9._:-] is accepted.
func RequestIDFrom(c echo.Context) string {
	if id := c.Request().Header.Get(HeaderXRequestID); validRequestID(id) {
		return id
	}

	return uuid.NewString()
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}

	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == ':':
		default:
			return false
		}
	}

	return true
}

// BindRequest makes requestID and a logger tagged with it visible to the rest of the request:
// echo.Context, the response header, and the request's context.Context read by use cases
// and the marketplace client.
func BindRequest(c echo.Context, requestID string, logger *slog.Logger) {
	c.Set(string(KeyRequestID), requestID)
	c.Response().Header().Set(HeaderXRequestID, requestID)

	ctx := WithRequestID(c.Request().Context(), requestID)
	ctx = WithLogger(ctx, logger.With(slog.String("request_id", requestID)))
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetRequestIDFromContext extracts the request ID from standard context.Context.
// If not found, returns empty string.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger extracts the request-scoped logger from context.Context, nil when absent.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
