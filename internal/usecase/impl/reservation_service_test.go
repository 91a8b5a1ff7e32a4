package impl

import (
	"context"
	"testing"
	"time"

	"bikeshare/internal/domain/entity"
	domainerrors "bikeshare/internal/domain/errors"
	"bikeshare/internal/domain/repository"
	mockRepo "bikeshare/internal/mocks/repository"
	"bikeshare/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reservationServiceFixtures holds all test dependencies for reservation service tests.
type reservationServiceFixtures struct {
	service  *reservationService
	catalog  *mockRepo.MockCatalogRepository
	booking  *mockRepo.MockBookingRepository
	identity *mockRepo.MockIdentityRepository
}

func createTestReservationService(t *testing.T) reservationServiceFixtures {
	catalog := mockRepo.NewMockCatalogRepository(t)
	booking := mockRepo.NewMockBookingRepository(t)
	identity := mockRepo.NewMockIdentityRepository(t)

	srv := NewReservationService(catalog, booking, identity, testConfig(), discardLogger()).(*reservationService)
	srv.now = func() time.Time { return baseTime }

	return reservationServiceFixtures{
		service:  srv,
		catalog:  catalog,
		booking:  booking,
		identity: identity,
	}
}

func TestReservationService_ListOwnerReservations_Groups(t *testing.T) {
	fx := createTestReservationService(t)
	ctx := context.Background()

	fx.catalog.EXPECT().
		ListBikes(mock.Anything, repository.BikeFilter{OwnerID: ownerSession.UserID}).
		Return([]*entity.Bike{newBike(1, 7, "")}, nil)
	fx.booking.EXPECT().
		ListReservations(mock.Anything, repository.ReservationFilter{BikeID: 1}).
		Return([]*entity.Reservation{
			newReservation(1, 1, 100, entity.ReservationPending, baseTime, 1),
			newReservation(2, 1, 100, entity.ReservationAccepted, baseTime, 1),
			newReservation(3, 1, 100, entity.ReservationCompleted, baseTime, 1),
			newReservation(4, 1, 100, entity.ReservationDeclined, baseTime, 1),
			newReservation(5, 1, 100, entity.ReservationCancelled, baseTime, 1),
		}, nil)
	fx.identity.EXPECT().GetProfile(mock.Anything, int64(100)).Return(nil, repository.ErrProfileNotFound).Once()

	grouped, err := fx.service.ListOwnerReservations(ctx, ownerSession)

	require.NoError(t, err)
	assert.Len(t, grouped.Pending, 1)
	assert.Len(t, grouped.Upcoming, 1)
	assert.Len(t, grouped.Completed, 1)
	assert.Len(t, grouped.History, 2)
	assert.Equal(t, fallbackUnknownBike, grouped.Pending[0].BikeName)
	assert.Equal(t, fallbackPersonName, grouped.Pending[0].RenterName)
}

func TestReservationService_AcceptReservation_Success(t *testing.T) {
	fx := createTestReservationService(t)
	ctx := context.Background()

	pending := newReservation(10, 1, 100, entity.ReservationPending, baseTime, 5)
	accepted := newReservation(10, 1, 100, entity.ReservationAccepted, baseTime, 5)

	fx.booking.EXPECT().GetReservation(ctx, int64(10)).Return(pending, nil)
	fx.catalog.EXPECT().GetBike(ctx, int64(1)).Return(newBike(1, ownerSession.UserID, "Trek"), nil)
	fx.booking.EXPECT().UpdateReservationStatus(ctx, int64(10), entity.ReservationAccepted).Return(accepted, nil)

	result, err := fx.service.AcceptReservation(ctx, ownerSession, 10)

	require.NoError(t, err)
	assert.Equal(t, entity.ReservationAccepted, result.Status)
}

func TestReservationService_DeclineReservation_RecordsCancelled(t *testing.T) {
	fx := createTestReservationService(t)
	ctx := context.Background()

	fx.booking.EXPECT().GetReservation(ctx, int64(10)).Return(newReservation(10, 1, 100, entity.ReservationPending, baseTime, 5), nil)
	fx.catalog.EXPECT().GetBike(ctx, int64(1)).Return(newBike(1, ownerSession.UserID, "Trek"), nil)
	fx.booking.EXPECT().
		UpdateReservationStatus(ctx, int64(10), entity.ReservationCancelled).
		Return(newReservation(10, 1, 100, entity.ReservationCancelled, baseTime, 5), nil)

	result, err := fx.service.DeclineReservation(ctx, ownerSession, 10)

	require.NoError(t, err)
	assert.Equal(t, entity.ReservationCancelled, result.Status)
}

func TestReservationService_AcceptReservation_NotOwner(t *testing.T) {
	fx := createTestReservationService(t)
	ctx := context.Background()

	fx.booking.EXPECT().GetReservation(ctx, int64(10)).Return(newReservation(10, 1, 100, entity.ReservationPending, baseTime, 5), nil)
	fx.catalog.EXPECT().GetBike(ctx, int64(1)).Return(newBike(1, 99, "Trek"), nil)

	_, err := fx.service.AcceptReservation(ctx, ownerSession, 10)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestReservationService_AcceptReservation_NotPending(t *testing.T) {
	fx := createTestReservationService(t)
	ctx := context.Background()

	fx.booking.EXPECT().GetReservation(ctx, int64(10)).Return(newReservation(10, 1, 100, entity.ReservationCompleted, baseTime, 5), nil)
	fx.catalog.EXPECT().GetBike(ctx, int64(1)).Return(newBike(1, ownerSession.UserID, "Trek"), nil)

	_, err := fx.service.AcceptReservation(ctx, ownerSession, 10)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestReservationService_AcceptReservation_NotFound(t *testing.T) {
	fx := createTestReservationService(t)
	ctx := context.Background()

	fx.booking.EXPECT().GetReservation(ctx, int64(10)).Return(nil, repository.ErrReservationNotFound)

	_, err := fx.service.AcceptReservation(ctx, ownerSession, 10)

	assert.ErrorIs(t, err, domainerrors.ErrReservationNotFound)
}

func TestReservationService_CreateReservation_DefaultWindow(t *testing.T) {
	fx := createTestReservationService(t)
	ctx := context.Background()

	fx.catalog.EXPECT().GetBike(ctx, int64(1)).Return(newBike(1, 7, "Trek"), nil)
	fx.booking.EXPECT().
		CreateReservation(ctx, &repository.ReservationInput{
			RenterID:  renterSession.UserID,
			BikeID:    1,
			StartDate: baseTime,
			EndDate:   baseTime.Add(time.Hour),
		}).
		Return(newReservation(30, 1, renterSession.UserID, entity.ReservationPending, baseTime, 0), nil)

	reservation, err := fx.service.CreateReservation(ctx, renterSession, &usecase.CreateReservationInput{BikeID: 1})

	require.NoError(t, err)
	assert.Equal(t, int64(30), reservation.ID)
}

func TestReservationService_CreateReservation_Rejections(t *testing.T) {
	start := baseTime.Add(time.Hour)
	before := baseTime

	tests := []struct {
		name   string
		bike   *entity.Bike
		input  *usecase.CreateReservationInput
		expect error
	}{
		{
			name:   "bike rented",
			bike:   &entity.Bike{ID: 1, OwnerID: 7, Status: entity.BikeStatusRented},
			input:  &usecase.CreateReservationInput{BikeID: 1},
			expect: domainerrors.ErrBikeUnavailable,
		},
		{
			name:   "end before start",
			bike:   newBike(1, 7, "Trek"),
			input:  &usecase.CreateReservationInput{BikeID: 1, StartDate: &start, EndDate: &before},
			expect: domainerrors.ErrInvalidTimeWindow,
		},
		{
			name:   "empty window",
			bike:   newBike(1, 7, "Trek"),
			input:  &usecase.CreateReservationInput{BikeID: 1, StartDate: &start, EndDate: &start},
			expect: domainerrors.ErrInvalidTimeWindow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReservationService(t)
			fx.catalog.EXPECT().GetBike(mock.Anything, int64(1)).Return(tt.bike, nil)

			_, err := fx.service.CreateReservation(context.Background(), renterSession, tt.input)

			assert.ErrorIs(t, err, tt.expect)
		})
	}
}

func TestReservationService_CancelReservation(t *testing.T) {
	tests := []struct {
		name        string
		reservation *entity.Reservation
		expect      error
	}{
		{name: "other renter", reservation: newReservation(5, 1, 99, entity.ReservationPending, baseTime, 0), expect: domainerrors.ErrForbidden},
		{name: "already completed", reservation: newReservation(5, 1, 42, entity.ReservationCompleted, baseTime, 0), expect: domainerrors.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReservationService(t)
			fx.booking.EXPECT().GetReservation(mock.Anything, int64(5)).Return(tt.reservation, nil)

			_, err := fx.service.CancelReservation(context.Background(), renterSession, 5)

			assert.ErrorIs(t, err, tt.expect)
		})
	}

	t.Run("accepted is cancellable", func(t *testing.T) {
		fx := createTestReservationService(t)
		fx.booking.EXPECT().GetReservation(mock.Anything, int64(5)).Return(newReservation(5, 1, 42, entity.ReservationAccepted, baseTime, 0), nil)
		fx.booking.EXPECT().
			UpdateReservationStatus(mock.Anything, int64(5), entity.ReservationCancelled).
			Return(newReservation(5, 1, 42, entity.ReservationCancelled, baseTime, 0), nil)

		reservation, err := fx.service.CancelReservation(context.Background(), renterSession, 5)

		require.NoError(t, err)
		assert.Equal(t, entity.ReservationCancelled, reservation.Status)
	})
}
