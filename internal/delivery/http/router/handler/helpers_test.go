package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "bikeshare/internal/delivery/context"
	"bikeshare/internal/delivery/http/response"
	"bikeshare/internal/delivery/http/validator"
	"bikeshare/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var (
	ownerSession  = entity.Session{UserID: 7, Role: entity.RoleOwner}
	renterSession = entity.Session{UserID: 42, Role: entity.RoleRenter}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestContext builds a request context with a JSON body and, when session is set, an authenticated caller.
func newTestContext(method, target, body string, session *entity.Session) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	if session != nil {
		deliverycontext.SetSession(c, *session)
	}

	return c, rec
}

func withParam(c echo.Context, name, value string) echo.Context {
	c.SetParamNames(name)
	c.SetParamValues(value)

	return c
}

// decodeEnvelope decodes the response envelope and its data into data.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data any) response.Response {
	t.Helper()

	var raw struct {
		response.Response
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	if data != nil {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}

	return raw.Response
}
