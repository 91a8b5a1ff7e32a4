package marketplace

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"bikeshare/internal/domain/entity"
	"bikeshare/internal/domain/repository"

	"github.com/pkg/errors"
)

type bookingRepository struct {
	client *Client
}

// NewBookingRepository creates the reservation adapter.
func NewBookingRepository(client *Client) repository.BookingRepository {
	return &bookingRepository{client: client}
}

func (r *bookingRepository) ListReservations(ctx context.Context, filter repository.ReservationFilter) ([]*entity.Reservation, error) {
	query := url.Values{}
	if filter.BikeID != 0 {
		query.Set("bikeId", strconv.FormatInt(filter.BikeID, 10))
	}
	if filter.RenterID != 0 {
		query.Set("renterId", strconv.FormatInt(filter.RenterID, 10))
	}

	var payloads []*reservationPayload
	err := r.client.do(ctx, call{op: "list reservations", method: http.MethodGet, path: "/api/reservations", query: query}, &payloads)
	if err != nil {
		return nil, err
	}

	return mapSlice(payloads, (*reservationPayload).toEntity), nil
}

func (r *bookingRepository) GetReservation(ctx context.Context, id int64) (*entity.Reservation, error) {
	var payload reservationPayload
	err := r.client.do(ctx, call{op: "get reservation", method: http.MethodGet, path: reservationPath(id)}, &payload)
	if err != nil {
		return nil, reservationError(err)
	}

	return payload.toEntity(), nil
}

func (r *bookingRepository) CreateReservation(ctx context.Context, input *repository.ReservationInput) (*entity.Reservation, error) {
	body := &reservationRequest{
		RenterID:  input.RenterID,
		BikeID:    input.BikeID,
		StartDate: input.StartDate.UTC(),
		EndDate:   input.EndDate.UTC(),
	}

	var payload reservationPayload
	err := r.client.do(ctx, call{op: "create reservation", method: http.MethodPost, path: "/api/reservations", body: body}, &payload)
	if err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}

func (r *bookingRepository) UpdateReservationStatus(ctx context.Context, id int64, status entity.ReservationStatus) (*entity.Reservation, error) {
	req := call{
		op:     "update reservation status",
		method: http.MethodPatch,
		path:   reservationPath(id) + "/status",
		body:   &statusRequest{NewStatus: string(status)},
	}

	var payload reservationPayload
	if err := r.client.do(ctx, req, &payload); err != nil {
		return nil, reservationError(err)
	}

	return payload.toEntity(), nil
}

func reservationPath(id int64) string {
	return "/api/reservations/" + strconv.FormatInt(id, 10)
}

func reservationError(err error) error {
	if hasStatus(err, http.StatusNotFound) {
		return errors.WithStack(repository.ErrReservationNotFound)
	}

	return err
}
