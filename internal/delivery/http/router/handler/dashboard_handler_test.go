package handler

import (
	"net/http"
	"testing"

	domainerrors "bikeshare/internal/domain/errors"
	mocks "bikeshare/internal/mocks/usecase"
	"bikeshare/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardHandler_OwnerDashboard(t *testing.T) {
	uc := mocks.NewMockDashboardUsecase(t)
	h := NewDashboardHandler(DashboardHandlerParams{DashboardUC: uc, Logger: discardLogger()})

	uc.EXPECT().BuildOwnerDashboard(mock.Anything, ownerSession).Return(&usecase.OwnerDashboard{
		Stats: usecase.OwnerStats{MonthlyIncome: 10, PendingCount: 1, ActiveBikesCount: 2, OwnerRating: 4.5},
	}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/owner/dashboard", "", &ownerSession)
	require.NoError(t, h.OwnerDashboard(c))

	var out usecase.OwnerDashboard
	decodeEnvelope(t, rec, &out)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 10.0, out.Stats.MonthlyIncome, 1e-9)
	assert.Equal(t, 2, out.Stats.ActiveBikesCount)
}

func TestDashboardHandler_OwnerDashboard_PipelineFailure(t *testing.T) {
	uc := mocks.NewMockDashboardUsecase(t)
	h := NewDashboardHandler(DashboardHandlerParams{DashboardUC: uc, Logger: discardLogger()})

	failure := domainerrors.NewPipelineError("owner", domainerrors.NewUpstreamError("list bikes", http.StatusInternalServerError, "", nil))
	uc.EXPECT().BuildOwnerDashboard(mock.Anything, ownerSession).Return(nil, failure)

	c, rec := newTestContext(http.MethodGet, "/api/owner/dashboard", "", &ownerSession)
	err := h.OwnerDashboard(c)

	var pipelineErr *domainerrors.PipelineError
	require.ErrorAs(t, err, &pipelineErr)
	assert.Equal(t, http.StatusBadGateway, pipelineErr.HTTPCode())
	assert.Zero(t, rec.Body.Len())
}

func TestDashboardHandler_RenterDashboard(t *testing.T) {
	uc := mocks.NewMockDashboardUsecase(t)
	h := NewDashboardHandler(DashboardHandlerParams{DashboardUC: uc, Logger: discardLogger()})

	uc.EXPECT().BuildRenterDashboard(mock.Anything, renterSession).Return(&usecase.RenterDashboard{
		Stats:           usecase.RenterStats{RentalsCount: 1, DrivingTime: "1h 0m"},
		Recommendations: []usecase.RecommendationView{{ID: 5, BikeName: "Trek"}},
	}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/renter/dashboard", "", &renterSession)
	require.NoError(t, h.RenterDashboard(c))

	var out usecase.RenterDashboard
	decodeEnvelope(t, rec, &out)
	assert.Equal(t, 1, out.Stats.RentalsCount)
	assert.Nil(t, out.UpcomingReservation)
	require.Len(t, out.Recommendations, 1)
}
