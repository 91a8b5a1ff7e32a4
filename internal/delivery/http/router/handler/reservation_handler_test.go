package handler

import (
	"net/http"
	"testing"
	"time"

	"bikeshare/internal/domain/entity"
	domainerrors "bikeshare/internal/domain/errors"
	mocks "bikeshare/internal/mocks/usecase"
	"bikeshare/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reservationHandlerFixture struct {
	handler      *ReservationHandler
	reservations *mocks.MockReservationUsecase
	dashboards   *mocks.MockDashboardUsecase
}

func newTestReservationHandler(t *testing.T) *reservationHandlerFixture {
	f := &reservationHandlerFixture{
		reservations: mocks.NewMockReservationUsecase(t),
		dashboards:   mocks.NewMockDashboardUsecase(t),
	}
	f.handler = NewReservationHandler(ReservationHandlerParams{
		ReservationUC: f.reservations,
		DashboardUC:   f.dashboards,
		Logger:        discardLogger(),
	})

	return f
}

func TestReservationHandler_ListOwnerReservations(t *testing.T) {
	f := newTestReservationHandler(t)
	f.reservations.EXPECT().ListOwnerReservations(mock.Anything, ownerSession).Return(&usecase.OwnerReservations{
		Pending:   []usecase.ReservationView{{ID: 1, RenterName: "Luis"}},
		Upcoming:  []usecase.ReservationView{},
		Completed: []usecase.ReservationView{},
		History:   []usecase.ReservationView{},
	}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/owner/reservations", "", &ownerSession)
	require.NoError(t, f.handler.ListOwnerReservations(c))

	var out usecase.OwnerReservations
	decodeEnvelope(t, rec, &out)
	require.Len(t, out.Pending, 1)
	assert.NotNil(t, out.History)
}

func TestReservationHandler_AcceptReservation(t *testing.T) {
	f := newTestReservationHandler(t)
	f.reservations.EXPECT().AcceptReservation(mock.Anything, ownerSession, int64(11)).
		Return(&entity.Reservation{ID: 11, Status: entity.ReservationAccepted}, nil)
	f.dashboards.EXPECT().BuildOwnerDashboard(mock.Anything, ownerSession).
		Return(&usecase.OwnerDashboard{Stats: usecase.OwnerStats{PendingCount: 0}}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/owner/reservations/11/accept", "", &ownerSession)
	require.NoError(t, f.handler.AcceptReservation(withParam(c, "id", "11")))

	var out OwnerActionResponse
	decodeEnvelope(t, rec, &out)
	assert.Equal(t, entity.ReservationAccepted, out.Reservation.Status)
	assert.NotNil(t, out.Dashboard)
}

func TestReservationHandler_DeclineReservation_DashboardRebuildFails(t *testing.T) {
	f := newTestReservationHandler(t)
	f.reservations.EXPECT().DeclineReservation(mock.Anything, ownerSession, int64(11)).
		Return(&entity.Reservation{ID: 11, Status: entity.ReservationCancelled}, nil)
	f.dashboards.EXPECT().BuildOwnerDashboard(mock.Anything, ownerSession).
		Return(nil, domainerrors.NewPipelineError("owner", errors.New("timeout")))

	c, rec := newTestContext(http.MethodPost, "/api/owner/reservations/11/decline", "", &ownerSession)
	require.NoError(t, f.handler.DeclineReservation(withParam(c, "id", "11")))

	var out OwnerActionResponse
	decodeEnvelope(t, rec, &out)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.ReservationCancelled, out.Reservation.Status)
	assert.Nil(t, out.Dashboard)
}

func TestReservationHandler_AcceptReservation_Failure_SkipsRebuild(t *testing.T) {
	f := newTestReservationHandler(t)
	f.reservations.EXPECT().AcceptReservation(mock.Anything, ownerSession, int64(11)).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidTransition))

	c, _ := newTestContext(http.MethodPost, "/api/owner/reservations/11/accept", "", &ownerSession)
	err := f.handler.AcceptReservation(withParam(c, "id", "11"))

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestReservationHandler_InvalidID(t *testing.T) {
	f := newTestReservationHandler(t)

	for _, id := range []string{"abc", "0", "-3"} {
		c, rec := newTestContext(http.MethodPost, "/api/owner/reservations/x/accept", "", &ownerSession)
		require.NoError(t, f.handler.AcceptReservation(withParam(c, "id", id)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, id)
	}
}

func TestReservationHandler_CreateReservation(t *testing.T) {
	f := newTestReservationHandler(t)
	start := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

	f.reservations.EXPECT().CreateReservation(mock.Anything, renterSession, mock.MatchedBy(func(in *usecase.CreateReservationInput) bool {
		return in.BikeID == 5 && in.StartDate != nil && in.StartDate.Equal(start) && in.EndDate == nil
	})).Return(&entity.Reservation{ID: 30, BikeID: 5, RenterID: 42, Status: entity.ReservationPending}, nil)
	f.dashboards.EXPECT().BuildRenterDashboard(mock.Anything, renterSession).Return(&usecase.RenterDashboard{}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/renter/reservations",
		`{"bike_id":5,"start_date":"2025-03-12T10:00:00Z"}`, &renterSession)
	require.NoError(t, f.handler.CreateReservation(c))

	var out RenterActionResponse
	decodeEnvelope(t, rec, &out)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(30), out.Reservation.ID)
	assert.NotNil(t, out.Dashboard)
}

func TestReservationHandler_CreateReservation_MissingBike(t *testing.T) {
	f := newTestReservationHandler(t)

	c, rec := newTestContext(http.MethodPost, "/api/renter/reservations", `{}`, &renterSession)
	require.NoError(t, f.handler.CreateReservation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReservationHandler_CancelReservation(t *testing.T) {
	f := newTestReservationHandler(t)
	f.reservations.EXPECT().CancelReservation(mock.Anything, renterSession, int64(30)).
		Return(&entity.Reservation{ID: 30, Status: entity.ReservationCancelled}, nil)
	f.dashboards.EXPECT().BuildRenterDashboard(mock.Anything, renterSession).
		Return(nil, domainerrors.NewPipelineError("renter", errors.New("down")))

	c, rec := newTestContext(http.MethodPost, "/api/renter/reservations/30/cancel", "", &renterSession)
	require.NoError(t, f.handler.CancelReservation(withParam(c, "id", "30")))

	var out RenterActionResponse
	decodeEnvelope(t, rec, &out)
	assert.Equal(t, entity.ReservationCancelled, out.Reservation.Status)
	assert.Nil(t, out.Dashboard)
}
