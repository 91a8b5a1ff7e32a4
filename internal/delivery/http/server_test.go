package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bikeshare/config"
	deliverycontext "bikeshare/internal/delivery/context"
	"bikeshare/internal/delivery/http/middleware"
	"bikeshare/internal/delivery/http/response"
	"bikeshare/internal/delivery/http/router"
	"bikeshare/internal/delivery/http/router/handler"
	"bikeshare/internal/domain/entity"
	domainerrors "bikeshare/internal/domain/errors"
	servicemocks "bikeshare/internal/mocks/service"
	mocks "bikeshare/internal/mocks/usecase"
	"bikeshare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixture struct {
	echo       *echo.Echo
	tokens     *servicemocks.MockTokenService
	dashboards *mocks.MockDashboardUsecase
}

func newServerFixture(t *testing.T) *serverFixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"

	f := &serverFixture{
		tokens:     servicemocks.NewMockTokenService(t),
		dashboards: mocks.NewMockDashboardUsecase(t),
	}

	reservations := mocks.NewMockReservationUsecase(t)
	f.echo = NewEcho(HTTPParams{
		Config:           cfg,
		Logger:           logger,
		ErrorMiddleware:  middleware.NewErrorMiddleware(logger),
		LoggerMiddleware: middleware.NewLoggerMiddleware(logger, cfg),
		RequestID:        middleware.NewRequestIDMiddleware(logger),
		RouterParams: router.RouterParams{
			AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: mocks.NewMockAuthUsecase(t), Logger: logger}),
			ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: mocks.NewMockProfileUsecase(t), Logger: logger}),
			SupportHandler: handler.NewSupportHandler(handler.SupportHandlerParams{SupportUC: mocks.NewMockSupportUsecase(t), Logger: logger}),
			DashboardHandler: handler.NewDashboardHandler(handler.DashboardHandlerParams{
				DashboardUC: f.dashboards, Logger: logger,
			}),
			ReservationHandler: handler.NewReservationHandler(handler.ReservationHandlerParams{
				ReservationUC: reservations, DashboardUC: f.dashboards, Logger: logger,
			}),
			BikeHandler:   handler.NewBikeHandler(handler.BikeHandlerParams{BikeUC: mocks.NewMockBikeUsecase(t), Logger: logger}),
			ReviewHandler: handler.NewReviewHandler(handler.ReviewHandlerParams{ReviewUC: mocks.NewMockReviewUsecase(t), Logger: logger}),
			NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{
				NotificationUC: mocks.NewMockNotificationUsecase(t), Logger: logger,
			}),
			AuthMiddleware: middleware.NewAuthMiddleware(f.tokens),
		},
	})

	return f
}

func (f *serverFixture) do(method, target, token string) (*httptest.ResponseRecorder, response.Response) {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	var body response.Response
	_ = json.Unmarshal(rec.Body.Bytes(), &body)

	return rec, body
}

func TestServer_Health(t *testing.T) {
	f := newServerFixture(t)

	rec, body := f.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_OwnerDashboard_Access(t *testing.T) {
	f := newServerFixture(t)
	f.tokens.EXPECT().ValidateToken("renter-token").Return(entity.Session{UserID: 42, Role: entity.RoleRenter}, nil)
	f.tokens.EXPECT().ValidateToken("owner-token").Return(entity.Session{UserID: 7, Role: entity.RoleOwner}, nil)
	f.dashboards.EXPECT().BuildOwnerDashboard(mock.Anything, entity.Session{UserID: 7, Role: entity.RoleOwner}).
		Return(&usecase.OwnerDashboard{}, nil)

	rec, _ := f.do(http.MethodGet, "/api/owner/dashboard", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, body := f.do(http.MethodGet, "/api/owner/dashboard", "renter-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "FORBIDDEN", body.Error.Code)

	rec, body = f.do(http.MethodGet, "/api/owner/dashboard", "owner-token")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
}

func TestServer_RenterDashboard_PipelineFailure(t *testing.T) {
	f := newServerFixture(t)
	session := entity.Session{UserID: 42, Role: entity.RoleRenter}
	f.tokens.EXPECT().ValidateToken("renter-token").Return(session, nil)
	f.dashboards.EXPECT().BuildRenterDashboard(mock.Anything, session).
		Return(nil, domainerrors.NewPipelineError("renter", domainerrors.NewUpstreamError("list reservations", http.StatusServiceUnavailable, "", nil)))

	rec, body := f.do(http.MethodGet, "/api/renter/dashboard", "renter-token")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "PIPELINE_FAILED", body.Error.Code)
	assert.Nil(t, body.Data)
}

func TestServer_UnknownRoute(t *testing.T) {
	f := newServerFixture(t)

	rec, body := f.do(http.MethodGet, "/api/nowhere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}
