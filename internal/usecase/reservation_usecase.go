package usecase

import (
	"context"
	"time"

	"bikeshare/internal/domain/entity"
)

// ReservationUsecase defines the booking operations of owners and renters.
type ReservationUsecase interface {
	// ListOwnerReservations returns every reservation of the owner's bikes, grouped for display.
	ListOwnerReservations(ctx context.Context, session entity.Session) (*OwnerReservations, error)
	AcceptReservation(ctx context.Context, session entity.Session, reservationID int64) (*entity.Reservation, error)
	DeclineReservation(ctx context.Context, session entity.Session, reservationID int64) (*entity.Reservation, error)

	CreateReservation(ctx context.Context, session entity.Session, input *CreateReservationInput) (*entity.Reservation, error)
	CancelReservation(ctx context.Context, session entity.Session, reservationID int64) (*entity.Reservation, error)
}

// --- Input DTOs ---

// CreateReservationInput defines the data required to reserve a bike.
// A missing start means now; a missing end means one hour after the start.
type CreateReservationInput struct {
	BikeID    int64      `json:"bike_id"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// --- Output DTOs ---

// OwnerReservations groups the owner's reservations by what the owner can do with them.
type OwnerReservations struct {
	Pending   []ReservationView `json:"pending"`
	Upcoming  []ReservationView `json:"upcoming"`
	Completed []ReservationView `json:"completed"`
	History   []ReservationView `json:"history"`
}
