package impl

import (
	"context"
	"testing"

	"bikeshare/internal/domain/entity"
	domainerrors "bikeshare/internal/domain/errors"
	"bikeshare/internal/domain/repository"
	mockRepo "bikeshare/internal/mocks/repository"
	mockSvc "bikeshare/internal/mocks/service"
	"bikeshare/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service   usecase.ReviewUsecase
	catalog   *mockRepo.MockCatalogRepository
	booking   *mockRepo.MockBookingRepository
	identity  *mockRepo.MockIdentityRepository
	reviews   *mockRepo.MockReviewRepository
	sanitizer *mockSvc.MockTextSanitizer
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	catalog := mockRepo.NewMockCatalogRepository(t)
	booking := mockRepo.NewMockBookingRepository(t)
	identity := mockRepo.NewMockIdentityRepository(t)
	reviews := mockRepo.NewMockReviewRepository(t)
	sanitizer := mockSvc.NewMockTextSanitizer(t)

	return reviewServiceFixtures{
		service:   NewReviewService(catalog, booking, identity, reviews, sanitizer, testConfig(), discardLogger()),
		catalog:   catalog,
		booking:   booking,
		identity:  identity,
		reviews:   reviews,
		sanitizer: sanitizer,
	}
}

func TestReviewService_ListReceived(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	fx.reviews.EXPECT().
		ListReviews(ctx, repository.ReviewFilter{OwnerID: ownerSession.UserID}).
		Return([]*entity.Review{
			{ID: 1, ReviewerID: 100, Rating: 3},
			{ID: 2, ReviewerID: 101, Rating: 4},
		}, nil)
	fx.identity.EXPECT().GetProfile(mock.Anything, int64(100)).Return(&entity.Profile{FullName: "Ana"}, nil)
	fx.identity.EXPECT().GetProfile(mock.Anything, int64(101)).Return(nil, repository.ErrProfileNotFound)

	received, err := fx.service.ListReceived(ctx, ownerSession)

	require.NoError(t, err)
	assert.InDelta(t, 3.5, received.AverageRating, 1e-9)
	require.Len(t, received.Reviews, 2)
	assert.Equal(t, "Ana", received.Reviews[0].PersonName)
	assert.Equal(t, fallbackReviewerName, received.Reviews[1].PersonName)
	assert.Equal(t, fallbackAvatar, received.Reviews[1].PersonImage)
}

func TestReviewService_ListWritten_UsesOwnerName(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	fx.reviews.EXPECT().
		ListReviews(ctx, repository.ReviewFilter{RenterID: renterSession.UserID}).
		Return([]*entity.Review{{ID: 1, OwnerID: 8, Rating: 5}}, nil)
	fx.identity.EXPECT().GetProfile(mock.Anything, int64(8)).Return(&entity.Profile{FullName: "Carla"}, nil)

	written, err := fx.service.ListWritten(ctx, renterSession)

	require.NoError(t, err)
	require.Len(t, written, 1)
	assert.Equal(t, "Carla", written[0].PersonName)
}

func TestReviewService_ListReviewable_SkipsReviewed(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	fx.booking.EXPECT().
		ListReservations(mock.Anything, repository.ReservationFilter{RenterID: renterSession.UserID}).
		Return([]*entity.Reservation{
			newReservation(1, 5, 42, entity.ReservationCompleted, baseTime, 3),
			newReservation(2, 6, 42, entity.ReservationCompleted, baseTime, 3),
			newReservation(3, 5, 42, entity.ReservationPending, baseTime, 3),
		}, nil)
	fx.reviews.EXPECT().
		ListReviews(mock.Anything, repository.ReviewFilter{RenterID: renterSession.UserID}).
		Return([]*entity.Review{{ID: 9, ReservationID: 1}}, nil)
	fx.catalog.EXPECT().GetBike(mock.Anything, int64(6)).Return(newBike(6, 8, "Brompton"), nil)
	fx.identity.EXPECT().GetProfile(mock.Anything, int64(8)).Return(&entity.Profile{FullName: "Carla"}, nil)

	reviewable, err := fx.service.ListReviewable(ctx, renterSession)

	require.NoError(t, err)
	require.Len(t, reviewable, 1)
	assert.Equal(t, int64(2), reviewable[0].ReservationID)
	assert.Equal(t, "Brompton", reviewable[0].BikeName)
	assert.Equal(t, "Carla", reviewable[0].OwnerName)
}

func TestReviewService_CreateReview_Success(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	fx.sanitizer.EXPECT().Sanitize("<b>Muy buena</b>").Return("Muy buena")
	fx.booking.EXPECT().GetReservation(ctx, int64(1)).Return(newReservation(1, 5, 42, entity.ReservationCompleted, baseTime, 3), nil)
	fx.reviews.EXPECT().
		CreateReview(ctx, &repository.ReviewInput{ReservationID: 1, Rating: 4.5, Comment: "Muy buena"}).
		Return(&entity.Review{ID: 77, ReservationID: 1, Rating: 4.5, Comment: "Muy buena"}, nil)

	review, err := fx.service.CreateReview(ctx, renterSession, &usecase.CreateReviewInput{
		ReservationID: 1,
		Rating:        4.5,
		Comment:       "<b>Muy buena</b>",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(77), review.ID)
}

func TestReviewService_CreateReview_InvalidRating(t *testing.T) {
	for _, rating := range []float64{0, -1, 4.3, 5.5} {
		fx := createTestReviewService(t)

		_, err := fx.service.CreateReview(context.Background(), renterSession, &usecase.CreateReviewInput{
			ReservationID: 1,
			Rating:        rating,
			Comment:       "Excelente",
		})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidRating, "rating %v", rating)
	}
}

func TestReviewService_CreateReview_ShortComment(t *testing.T) {
	fx := createTestReviewService(t)

	fx.sanitizer.EXPECT().Sanitize(mock.Anything).Return("ok")

	_, err := fx.service.CreateReview(context.Background(), renterSession, &usecase.CreateReviewInput{
		ReservationID: 1,
		Rating:        5,
		Comment:       "<i>ok</i>",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReviewService_CreateReview_NotReviewable(t *testing.T) {
	tests := []struct {
		name        string
		reservation *entity.Reservation
	}{
		{name: "other renter", reservation: newReservation(1, 5, 99, entity.ReservationCompleted, baseTime, 3)},
		{name: "not completed", reservation: newReservation(1, 5, 42, entity.ReservationAccepted, baseTime, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReviewService(t)
			fx.sanitizer.EXPECT().Sanitize(mock.Anything).Return("Excelente servicio")
			fx.booking.EXPECT().GetReservation(mock.Anything, int64(1)).Return(tt.reservation, nil)

			_, err := fx.service.CreateReview(context.Background(), renterSession, &usecase.CreateReviewInput{
				ReservationID: 1,
				Rating:        5,
				Comment:       "Excelente servicio",
			})

			assert.ErrorIs(t, err, domainerrors.ErrNotReviewable)
		})
	}
}
