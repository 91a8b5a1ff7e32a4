package impl

import (
	"context"

	"bikeshare/internal/domain/entity"
	domainerrors "bikeshare/internal/domain/errors"
	"bikeshare/internal/domain/repository"

	"github.com/pkg/errors"
)

// ownerFleet is an owner's bikes together with every reservation made on them.
type ownerFleet struct {
	bikes        []*entity.Bike
	reservations []*entity.Reservation // Flattened in bike fetch order.
	index        map[int64]*entity.Bike
}

// fleetLoader fetches an owner's fleet: one bike listing, then one reservation listing per bike.
type fleetLoader struct {
	catalog     repository.CatalogRepository
	booking     repository.BookingRepository
	fanOutLimit int
}

// load costs 1 + len(bikes) remote calls, at most fanOutLimit of the per-bike calls in flight.
// Every call is a primary fetch.
func (l *fleetLoader) load(ctx context.Context, ownerID int64) (*ownerFleet, error) {
	bikes, err := l.catalog.ListBikes(ctx, repository.BikeFilter{OwnerID: ownerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owner bikes")
	}

	perBike, err := mapAll(ctx, l.fanOutLimit, bikes, func(ctx context.Context, bike *entity.Bike) ([]*entity.Reservation, error) {
		reservations, err := l.booking.ListReservations(ctx, repository.ReservationFilter{BikeID: bike.ID})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list reservations of bike %d", bike.ID)
		}

		return reservations, nil
	})
	if err != nil {
		return nil, err
	}

	return &ownerFleet{
		bikes:        bikes,
		reservations: flatten(perBike),
		index:        entity.IndexBikes(bikes),
	}, nil
}

// ownedBike fetches a bike and checks that ownerID owns it.
func (l *fleetLoader) ownedBike(ctx context.Context, ownerID, bikeID int64) (*entity.Bike, error) {
	bike, err := l.catalog.GetBike(ctx, bikeID)
	if err != nil {
		return nil, translateBikeError(err)
	}

	if bike.OwnerID != ownerID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "bike belongs to another owner")
	}

	return bike, nil
}
