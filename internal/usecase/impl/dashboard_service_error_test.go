package impl

import (
	"context"
	"net/http"
	"testing"

	"bikeshare/internal/domain/entity"
	domainerrors "bikeshare/internal/domain/errors"
	"bikeshare/internal/domain/repository"
	"bikeshare/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_BuildOwnerDashboard_PrimaryFailure(t *testing.T) {
	unavailable := domainerrors.NewUpstreamError("marketplace", http.StatusServiceUnavailable, "", nil)

	tests := []struct {
		name     string
		setup    func(fx dashboardServiceFixtures)
		wantCode int
	}{
		{
			name: "bike listing fails",
			setup: func(fx dashboardServiceFixtures) {
				fx.catalog.EXPECT().
					ListBikes(mock.Anything, repository.BikeFilter{OwnerID: ownerSession.UserID}).
					Return(nil, unavailable)
				fx.reviews.EXPECT().ListReviews(mock.Anything, mock.Anything).Return([]*entity.Review{}, nil).Maybe()
			},
			wantCode: http.StatusBadGateway,
		},
		{
			name: "reservations of one bike fail",
			setup: func(fx dashboardServiceFixtures) {
				fx.catalog.EXPECT().
					ListBikes(mock.Anything, mock.Anything).
					Return([]*entity.Bike{newBike(1, 7, "Trek FX")}, nil)
				fx.booking.EXPECT().
					ListReservations(mock.Anything, repository.ReservationFilter{BikeID: 1}).
					Return(nil, unavailable)
				fx.reviews.EXPECT().ListReviews(mock.Anything, mock.Anything).Return([]*entity.Review{}, nil).Maybe()
			},
			wantCode: http.StatusBadGateway,
		},
		{
			name: "review listing fails",
			setup: func(fx dashboardServiceFixtures) {
				fx.catalog.EXPECT().
					ListBikes(mock.Anything, mock.Anything).
					Return([]*entity.Bike{newBike(1, 7, "Trek FX")}, nil).
					Maybe()
				fx.booking.EXPECT().ListReservations(mock.Anything, mock.Anything).Return([]*entity.Reservation{}, nil).Maybe()
				fx.reviews.EXPECT().
					ListReviews(mock.Anything, repository.ReviewFilter{OwnerID: ownerSession.UserID}).
					Return(nil, domainerrors.NewUpstreamError("list reviews", http.StatusUnauthorized, "", nil))
			},
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDashboardService(t)
			fx.views.EXPECT().Begin(ownerSession.UserID).Return(service.RunTicket(1))
			tt.setup(fx)

			dashboard, err := fx.service.BuildOwnerDashboard(context.Background(), ownerSession)

			assert.Nil(t, dashboard)
			var pipelineErr *domainerrors.PipelineError
			require.ErrorAs(t, err, &pipelineErr)
			assert.Equal(t, "owner", pipelineErr.Dashboard)
			assert.Equal(t, tt.wantCode, pipelineErr.HTTPCode())
			assert.Equal(t, "PIPELINE_FAILED", pipelineErr.ErrorCode())
			fx.views.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
			fx.identity.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
		})
	}
}

func TestDashboardService_BuildRenterDashboard_PrimaryFailure(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(fx dashboardServiceFixtures)
		wantCode int
	}{
		{
			name: "renter reservations fail",
			setup: func(fx dashboardServiceFixtures) {
				fx.booking.EXPECT().
					ListReservations(mock.Anything, repository.ReservationFilter{RenterID: renterSession.UserID}).
					Return(nil, domainerrors.NewUpstreamError("list reservations", http.StatusUnauthorized, "", nil))
				fx.catalog.EXPECT().ListBikes(mock.Anything, mock.Anything).Return([]*entity.Bike{}, nil).Maybe()
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "available bikes fail",
			setup: func(fx dashboardServiceFixtures) {
				fx.booking.EXPECT().
					ListReservations(mock.Anything, mock.Anything).
					Return([]*entity.Reservation{}, nil).
					Maybe()
				fx.catalog.EXPECT().
					ListBikes(mock.Anything, repository.BikeFilter{Status: entity.BikeStatusAvailable}).
					Return(nil, errors.New("connection reset"))
			},
			wantCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDashboardService(t)
			tt.setup(fx)

			dashboard, err := fx.service.BuildRenterDashboard(context.Background(), renterSession)

			assert.Nil(t, dashboard)
			var pipelineErr *domainerrors.PipelineError
			require.ErrorAs(t, err, &pipelineErr)
			assert.Equal(t, "renter", pipelineErr.Dashboard)
			assert.Equal(t, tt.wantCode, pipelineErr.HTTPCode())
			fx.catalog.AssertNotCalled(t, "GetBike", mock.Anything, mock.Anything)
			fx.identity.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
		})
	}
}
