package impl

import (
	"context"
	"log/slog"
	"time"

	"bikeshare/config"
	deliverycontext "bikeshare/internal/delivery/context"
	"bikeshare/internal/domain/entity"
	domainerrors "bikeshare/internal/domain/errors"
	"bikeshare/internal/domain/repository"
	"bikeshare/internal/usecase"

	"github.com/pkg/errors"
)

// defaultReservationWindow is the length of a reservation created without an end date.
const defaultReservationWindow = time.Hour

// reservationService implements the ReservationUsecase interface.
type reservationService struct {
	fleet    *fleetLoader
	catalog  repository.CatalogRepository
	booking  repository.BookingRepository
	identity repository.IdentityRepository
	limit    int
	logger   *slog.Logger
	now      func() time.Time
}

// NewReservationService is the constructor for reservationService.
func NewReservationService(
	catalog repository.CatalogRepository,
	booking repository.BookingRepository,
	identity repository.IdentityRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ReservationUsecase {
	limit := fanOutLimit(cfg)

	return &reservationService{
		fleet:    &fleetLoader{catalog: catalog, booking: booking, fanOutLimit: limit},
		catalog:  catalog,
		booking:  booking,
		identity: identity,
		limit:    limit,
		logger:   logger,
		now:      time.Now,
	}
}

func (srv *reservationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOwnerReservations returns every reservation of the owner's bikes, grouped for display.
func (srv *reservationService) ListOwnerReservations(ctx context.Context, session entity.Session) (*usecase.OwnerReservations, error) {
	fleet, err := srv.fleet.load(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	profiles := newLookup("profile", srv.identity.GetProfile, newPassLimiter(srv.limit), srv.log(ctx))
	views := settledMap(ctx, srv.limit, fleet.reservations, func(ctx context.Context, r *entity.Reservation) usecase.ReservationView {
		return reservationView(r, profiles.Resolve(ctx, r.RenterID), bikeName(fleet.index, r.BikeID, fallbackUnknownBike))
	})

	grouped := &usecase.OwnerReservations{
		Pending:   []usecase.ReservationView{},
		Upcoming:  []usecase.ReservationView{},
		Completed: []usecase.ReservationView{},
		History:   []usecase.ReservationView{},
	}
	for _, view := range views {
		switch view.Status {
		case entity.ReservationPending:
			grouped.Pending = append(grouped.Pending, view)
		case entity.ReservationAccepted:
			grouped.Upcoming = append(grouped.Upcoming, view)
		case entity.ReservationCompleted:
			grouped.Completed = append(grouped.Completed, view)
		default:
			grouped.History = append(grouped.History, view)
		}
	}

	return grouped, nil
}

// AcceptReservation moves a pending reservation of one of the owner's bikes to ACCEPTED.
func (srv *reservationService) AcceptReservation(ctx context.Context, session entity.Session, reservationID int64) (*entity.Reservation, error) {
	return srv.decide(ctx, session, reservationID, entity.ReservationAccepted)
}

// DeclineReservation rejects a pending reservation. The marketplace records a decline as CANCELLED.
func (srv *reservationService) DeclineReservation(ctx context.Context, session entity.Session, reservationID int64) (*entity.Reservation, error) {
	return srv.decide(ctx, session, reservationID, entity.ReservationCancelled)
}

// decide applies an owner decision after checking ownership and the status machine.
func (srv *reservationService) decide(
	ctx context.Context,
	session entity.Session,
	reservationID int64,
	next entity.ReservationStatus,
) (*entity.Reservation, error) {
	reservation, err := srv.booking.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, translateReservationError(err)
	}

	if _, err := srv.fleet.ownedBike(ctx, session.UserID, reservation.BikeID); err != nil {
		return nil, err
	}

	if reservation.Status != entity.ReservationPending || !reservation.Status.CanTransitionTo(next) {
		return nil, errors.Wrapf(domainerrors.ErrInvalidTransition, "reservation %d is %s", reservationID, reservation.Status)
	}

	return srv.transition(ctx, reservationID, next)
}

// CreateReservation books an available bike for the renter.
func (srv *reservationService) CreateReservation(
	ctx context.Context,
	session entity.Session,
	input *usecase.CreateReservationInput,
) (*entity.Reservation, error) {
	bike, err := srv.catalog.GetBike(ctx, input.BikeID)
	if err != nil {
		return nil, translateBikeError(err)
	}

	if !bike.IsAvailable() {
		return nil, errors.Wrapf(domainerrors.ErrBikeUnavailable, "bike %d is %s", bike.ID, bike.Status)
	}

	start := srv.now()
	if input.StartDate != nil {
		start = *input.StartDate
	}
	end := start.Add(defaultReservationWindow)
	if input.EndDate != nil {
		end = *input.EndDate
	}
	if !end.After(start) {
		return nil, errors.WithStack(domainerrors.ErrInvalidTimeWindow)
	}

	reservation, err := srv.booking.CreateReservation(ctx, &repository.ReservationInput{
		RenterID:  session.UserID,
		BikeID:    bike.ID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create reservation")
	}

	srv.log(ctx).Info("Reservation created",
		slog.Int64("reservation_id", reservation.ID),
		slog.Int64("bike_id", bike.ID),
		slog.Int64("renter_id", session.UserID),
	)

	return reservation, nil
}

// CancelReservation cancels one of the renter's own reservations that is still ahead.
func (srv *reservationService) CancelReservation(ctx context.Context, session entity.Session, reservationID int64) (*entity.Reservation, error) {
	reservation, err := srv.booking.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, translateReservationError(err)
	}

	if reservation.RenterID != session.UserID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "reservation belongs to another renter")
	}

	if !reservation.Status.CanTransitionTo(entity.ReservationCancelled) {
		return nil, errors.Wrapf(domainerrors.ErrInvalidTransition, "reservation %d is %s", reservationID, reservation.Status)
	}

	return srv.transition(ctx, reservationID, entity.ReservationCancelled)
}

func (srv *reservationService) transition(ctx context.Context, reservationID int64, next entity.ReservationStatus) (*entity.Reservation, error) {
	updated, err := srv.booking.UpdateReservationStatus(ctx, reservationID, next)
	if err != nil {
		return nil, translateReservationError(err)
	}

	srv.log(ctx).Info("Reservation status updated",
		slog.Int64("reservation_id", reservationID),
		slog.String("status", string(next)),
	)

	return updated, nil
}
