package repository

import (
	"context"

	"bikeshare/internal/domain/entity"
)

// ReviewFilter narrows a review listing to the reviews received by an owner or written by a renter.
type ReviewFilter struct {
	OwnerID  int64
	RenterID int64
}

// ReviewInput is a new review. The marketplace derives the reviewer and the owner from the reservation.
type ReviewInput struct {
	ReservationID int64
	Rating        float64
	Comment       string
}

// ReviewRepository defines the review capabilities of the marketplace.
type ReviewRepository interface {
	ListReviews(ctx context.Context, filter ReviewFilter) ([]*entity.Review, error)
	CreateReview(ctx context.Context, input *ReviewInput) (*entity.Review, error)
}
