package entity

import (
	"slices"
	"time"
)

// ReservationStatus is the lifecycle status of a reservation.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationAccepted  ReservationStatus = "ACCEPTED"
	ReservationCompleted ReservationStatus = "COMPLETED"
	ReservationCancelled ReservationStatus = "CANCELLED"
	ReservationDeclined  ReservationStatus = "DECLINED"
)

// reservationTransitions lists the statuses reachable from each non-terminal status.
var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationPending:  {ReservationAccepted, ReservationCancelled, ReservationDeclined},
	ReservationAccepted: {ReservationCompleted, ReservationCancelled},
}

// CanTransitionTo reports whether the booking service accepts moving from s to next.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	return slices.Contains(reservationTransitions[s], next)
}

// IsTerminal reports whether no further transition is possible.
func (s ReservationStatus) IsTerminal() bool {
	_, ok := reservationTransitions[s]

	return !ok
}

// Reservation is a renter's booking of a bike for a time window.
type Reservation struct {
	ID         int64
	BikeID     int64
	RenterID   int64
	StartDate  time.Time
	EndDate    time.Time
	Status     ReservationStatus
	TotalPrice float64
}

// IsUpcoming reports whether the reservation still lies ahead of the renter.
func (r *Reservation) IsUpcoming() bool {
	return r.Status == ReservationPending || r.Status == ReservationAccepted
}

// IsHistory reports whether the reservation belongs to the renter's past rentals.
func (r *Reservation) IsHistory() bool {
	switch r.Status {
	case ReservationCompleted, ReservationCancelled, ReservationDeclined:
		return true
	default:
		return false
	}
}

// FilterReservations returns the reservations with the given status, preserving order.
func FilterReservations(reservations []*Reservation, status ReservationStatus) []*Reservation {
	filtered := make([]*Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r.Status == status {
			filtered = append(filtered, r)
		}
	}

	return filtered
}
