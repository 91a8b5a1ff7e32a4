package entity

import (
	"math"
	"time"
)

const (
	MinRating = 0.0
	MaxRating = 5.0
)

// Review is a renter's rating of an owner after a completed rental.
type Review struct {
	ID            int64
	ReservationID int64
	OwnerID       int64 // The owner being reviewed.
	ReviewerID    int64 // The renter who wrote the review.
	Rating        float64
	Comment       string
	CreatedAt     time.Time
}

// ValidRating reports whether r lies in [0,5] on a half-step grid.
func ValidRating(r float64) bool {
	if math.IsNaN(r) || r < MinRating || r > MaxRating {
		return false
	}

	return math.Mod(r*2, 1) == 0
}

// AverageRating returns the arithmetic mean of the ratings, or 0 when there are none.
func AverageRating(reviews []*Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	var sum float64
	for _, review := range reviews {
		sum += review.Rating
	}

	return sum / float64(len(reviews))
}
