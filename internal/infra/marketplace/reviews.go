package marketplace

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"bikeshare/internal/domain/entity"
	"bikeshare/internal/domain/repository"
)

type reviewRepository struct {
	client *Client
}

// NewReviewRepository creates the review adapter.
func NewReviewRepository(client *Client) repository.ReviewRepository {
	return &reviewRepository{client: client}
}

func (r *reviewRepository) ListReviews(ctx context.Context, filter repository.ReviewFilter) ([]*entity.Review, error) {
	query := url.Values{}
	if filter.OwnerID != 0 {
		query.Set("ownerId", strconv.FormatInt(filter.OwnerID, 10))
	}
	if filter.RenterID != 0 {
		query.Set("renterId", strconv.FormatInt(filter.RenterID, 10))
	}

	var payloads []*reviewPayload
	err := r.client.do(ctx, call{op: "list reviews", method: http.MethodGet, path: "/api/reviews", query: query}, &payloads)
	if err != nil {
		return nil, err
	}

	return mapSlice(payloads, (*reviewPayload).toEntity), nil
}

func (r *reviewRepository) CreateReview(ctx context.Context, input *repository.ReviewInput) (*entity.Review, error) {
	body := &reviewRequest{
		ReservationID: input.ReservationID,
		Rating:        input.Rating,
		Comment:       input.Comment,
	}

	var payload reviewPayload
	err := r.client.do(ctx, call{op: "create review", method: http.MethodPost, path: "/api/reviews", body: body}, &payload)
	if err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}
