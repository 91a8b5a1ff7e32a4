package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"bikeshare/internal/delivery/http/response"
	domainerrors "bikeshare/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "wrapped app error",
			err:        errors.Wrap(domainerrors.ErrBikeNotFound, "bike 3"),
			wantStatus: http.StatusNotFound,
			wantCode:   "BIKE_NOT_FOUND",
		},
		{
			name:       "pipeline error",
			err:        domainerrors.NewPipelineError("owner", domainerrors.NewUpstreamError("list bikes", http.StatusServiceUnavailable, "", nil)),
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "echo error without message",
			err:        &echo.HTTPError{Code: http.StatusRequestEntityTooLarge},
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "plain error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext("")
			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, body.Error.Code)
			}
			assert.NotContains(t, rec.Body.String(), "boom")
		})
	}
}
