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

type catalogRepository struct {
	client *Client
}

// NewCatalogRepository creates the bike catalog adapter.
func NewCatalogRepository(client *Client) repository.CatalogRepository {
	return &catalogRepository{client: client}
}

func (r *catalogRepository) ListBikes(ctx context.Context, filter repository.BikeFilter) ([]*entity.Bike, error) {
	query := url.Values{}
	if filter.OwnerID != 0 {
		query.Set("ownerId", strconv.FormatInt(filter.OwnerID, 10))
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}

	var payloads []*bikePayload
	err := r.client.do(ctx, call{op: "list bikes", method: http.MethodGet, path: "/api/bikes", query: query}, &payloads)
	if err != nil {
		return nil, err
	}

	return mapSlice(payloads, (*bikePayload).toEntity), nil
}

func (r *catalogRepository) GetBike(ctx context.Context, id int64) (*entity.Bike, error) {
	var payload bikePayload
	err := r.client.do(ctx, call{op: "get bike", method: http.MethodGet, path: bikePath(id)}, &payload)
	if err != nil {
		return nil, bikeError(err)
	}

	return payload.toEntity(), nil
}

func (r *catalogRepository) CreateBike(ctx context.Context, input *repository.BikeInput) (*entity.Bike, error) {
	var payload bikePayload
	err := r.client.do(ctx, call{op: "create bike", method: http.MethodPost, path: "/api/bikes", body: newBikeRequest(input)}, &payload)
	if err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}

func (r *catalogRepository) UpdateBike(ctx context.Context, id int64, input *repository.BikeInput) (*entity.Bike, error) {
	var payload bikePayload
	err := r.client.do(ctx, call{op: "update bike", method: http.MethodPatch, path: bikePath(id), body: newBikeRequest(input)}, &payload)
	if err != nil {
		return nil, bikeError(err)
	}

	return payload.toEntity(), nil
}

func (r *catalogRepository) DeleteBike(ctx context.Context, id int64) error {
	err := r.client.do(ctx, call{op: "delete bike", method: http.MethodDelete, path: bikePath(id)}, nil)

	return bikeError(err)
}

func bikePath(id int64) string {
	return "/api/bikes/" + strconv.FormatInt(id, 10)
}

func bikeError(err error) error {
	if hasStatus(err, http.StatusNotFound) {
		return errors.WithStack(repository.ErrBikeNotFound)
	}

	return err
}

func newBikeRequest(input *repository.BikeInput) *bikeRequest {
	return &bikeRequest{
		OwnerID:       input.OwnerID,
		Model:         input.Model,
		Type:          input.Type,
		CostPerMinute: input.CostPerMinute,
		ImageURL:      input.ImageURL,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		Status:        string(input.Status),
	}
}
