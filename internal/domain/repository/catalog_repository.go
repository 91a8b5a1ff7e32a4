// Package repository defines the interfaces to the remote marketplace.
// These interfaces act as a contract between the application layer and the infrastructure layer;
// the gateway owns no storage, so every implementation is a remote API adapter.
package repository

import (
	"context"
	"errors"

	"bikeshare/internal/domain/entity"
)

// ErrBikeNotFound is returned when the catalog has no bike for the requested id.
var ErrBikeNotFound = errors.New("bike not found")

// BikeFilter narrows a bike listing. Zero values mean "no constraint".
type BikeFilter struct {
	OwnerID int64
	Status  entity.BikeStatus
}

// BikeInput carries the writable fields of a bike.
type BikeInput struct {
	OwnerID       int64
	Model         string
	Type          string
	CostPerMinute float64
	ImageURL      string
	Latitude      float64
	Longitude     float64
	Status        entity.BikeStatus
}

// CatalogRepository defines the bike catalog capabilities of the marketplace.
type CatalogRepository interface {
	// ListBikes returns the bikes that match the filter, in upstream order.
	ListBikes(ctx context.Context, filter BikeFilter) ([]*entity.Bike, error)

	// GetBike retrieves a single bike by id.
	GetBike(ctx context.Context, id int64) (*entity.Bike, error)

	CreateBike(ctx context.Context, input *BikeInput) (*entity.Bike, error)
	UpdateBike(ctx context.Context, id int64, input *BikeInput) (*entity.Bike, error)
	DeleteBike(ctx context.Context, id int64) error
}
