package usecase

import (
	"context"
	"time"

	"bikeshare/internal/domain/entity"
)

// ReviewUsecase defines the review operations of both marketplace sides.
type ReviewUsecase interface {
	ListReceived(ctx context.Context, session entity.Session) (*ReceivedReviews, error)
	ListWritten(ctx context.Context, session entity.Session) ([]ReviewView, error)

	// ListReviewable returns the renter's completed reservations that have no review yet.
	ListReviewable(ctx context.Context, session entity.Session) ([]ReviewableView, error)
	CreateReview(ctx context.Context, session entity.Session, input *CreateReviewInput) (*entity.Review, error)
}

// --- Input DTOs ---

// CreateReviewInput defines the data required to review a completed rental.
type CreateReviewInput struct {
	ReservationID int64   `json:"reservation_id"`
	Rating        float64 `json:"rating"`
	Comment       string  `json:"comment"`
}

// --- Output DTOs ---

// ReviewView is a review with the counterpart's display data.
type ReviewView struct {
	ID            int64     `json:"id"`
	ReservationID int64     `json:"reservation_id"`
	PersonName    string    `json:"person_name"`
	PersonImage   string    `json:"person_image"`
	Rating        float64   `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
}

// ReceivedReviews is the owner's reviews page.
type ReceivedReviews struct {
	Reviews       []ReviewView `json:"reviews"`
	AverageRating float64      `json:"average_rating"`
}

// ReviewableView is a completed rental the renter can still review.
type ReviewableView struct {
	ReservationID int64     `json:"reservation_id"`
	BikeName      string    `json:"bike_name"`
	OwnerName     string    `json:"owner_name"`
	StartDate     time.Time `json:"start_date"`
}
