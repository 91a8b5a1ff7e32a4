package impl

import (
	"time"

	"bikeshare/internal/domain/entity"
	"bikeshare/internal/usecase"
	"bikeshare/internal/util"
)

// Display multipliers of the renter statistics, per past rental.
const (
	kmPerRental      = 5
	minutesPerRental = 45
)

// statusBreakdown partitions reservations by status; unknown statuses count as Other.
func statusBreakdown(reservations []*entity.Reservation) usecase.StatusBreakdown {
	var b usecase.StatusBreakdown
	for _, r := range reservations {
		switch r.Status {
		case entity.ReservationPending:
			b.Pending++
		case entity.ReservationAccepted:
			b.Accepted++
		case entity.ReservationCompleted:
			b.Completed++
		case entity.ReservationCancelled:
			b.Cancelled++
		case entity.ReservationDeclined:
			b.Declined++
		default:
			b.Other++
		}
	}
	b.Total = len(reservations)

	return b
}

// completedIncome sums the price of COMPLETED reservations.
func completedIncome(reservations []*entity.Reservation) float64 {
	var income float64
	for _, r := range reservations {
		if r.Status == entity.ReservationCompleted {
			income += r.TotalPrice
		}
	}

	return income
}

func ownerStats(bikes []*entity.Bike, reservations []*entity.Reservation, reviews []*entity.Review) usecase.OwnerStats {
	breakdown := statusBreakdown(reservations)

	return usecase.OwnerStats{
		MonthlyIncome:    completedIncome(reservations),
		PendingCount:     breakdown.Pending,
		ActiveBikesCount: len(bikes),
		OwnerRating:      entity.AverageRating(reviews),
		Breakdown:        breakdown,
	}
}

func renterStats(history []*entity.Reservation) usecase.RenterStats {
	completed := 0
	for _, r := range history {
		if r.Status == entity.ReservationCompleted {
			completed++
		}
	}

	minutes := minutesPerRental * len(history)

	return usecase.RenterStats{
		RentalsCount:       completed,
		DistanceTraveledKm: float64(kmPerRental * len(history)),
		DrivingTimeMinutes: minutes,
		DrivingTime:        util.FormatDuration(time.Duration(minutes) * time.Minute),
	}
}
