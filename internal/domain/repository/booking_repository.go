package repository

import (
	"context"
	"errors"
	"time"

	"bikeshare/internal/domain/entity"
)

// ErrReservationNotFound is returned when no reservation exists for the requested id.
var ErrReservationNotFound = errors.New("reservation not found")

// ReservationFilter narrows a reservation listing. Exactly one field is expected to be set.
type ReservationFilter struct {
	BikeID   int64
	RenterID int64
}

// ReservationInput is a new booking request.
type ReservationInput struct {
	RenterID  int64
	BikeID    int64
	StartDate time.Time
	EndDate   time.Time
}

// BookingRepository defines the reservation capabilities of the marketplace.
type BookingRepository interface {
	ListReservations(ctx context.Context, filter ReservationFilter) ([]*entity.Reservation, error)
	GetReservation(ctx context.Context, id int64) (*entity.Reservation, error)
	CreateReservation(ctx context.Context, input *ReservationInput) (*entity.Reservation, error)

	// UpdateReservationStatus asks the marketplace to transition a reservation and returns it as stored.
	UpdateReservationStatus(ctx context.Context, id int64, status entity.ReservationStatus) (*entity.Reservation, error)
}
