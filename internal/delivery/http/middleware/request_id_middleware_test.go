package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	deliverycontext "bikeshare/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	var seen string
	handler := m.Process(func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusNoContent)
	})

	c, rec := newContext("")
	c.Request().Header.Set(deliverycontext.HeaderXRequestID, "req-1")
	require.NoError(t, handler(c))
	assert.Equal(t, "req-1", seen)
	assert.Equal(t, "req-1", rec.Header().Get(deliverycontext.HeaderXRequestID))

	c, rec = newContext("")
	require.NoError(t, handler(c))
	assert.NotEmpty(t, seen)
	assert.NotEqual(t, "req-1", seen)
	assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))

	c, rec = newContext("")
	c.Request().Header.Set(deliverycontext.HeaderXRequestID, "forged id\r\nX-Admin: 1")
	require.NoError(t, handler(c))
	assert.NotContains(t, seen, "forged")
	assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
}
