package usecase

import (
	"context"

	"bikeshare/internal/domain/entity"
)

// BikeUsecase defines the catalog operations: owner bike management and the renter map.
type BikeUsecase interface {
	ListOwnerBikes(ctx context.Context, session entity.Session) ([]*entity.Bike, error)
	CreateBike(ctx context.Context, session entity.Session, input *BikeInput) (*entity.Bike, error)
	UpdateBike(ctx context.Context, session entity.Session, bikeID int64, input *BikeInput) (*entity.Bike, error)
	DeleteBike(ctx context.Context, session entity.Session, bikeID int64) error

	// BrowseAvailable lists available bikes with owner details, filtered and optionally ordered by distance.
	BrowseAvailable(ctx context.Context, query *MapQuery) (*BikeMap, error)
}

// --- Input DTOs ---

// BikeInput defines the writable fields of a bike.
type BikeInput struct {
	Model         string  `json:"model"`
	Type          string  `json:"type"`
	CostPerMinute float64 `json:"cost_per_minute"`
	ImageURL      string  `json:"image_url"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}

// MapQuery narrows the renter map. Nil fields mean "no constraint".
type MapQuery struct {
	Type      string
	MinPrice  *float64
	MaxPrice  *float64 // Exclusive.
	Latitude  *float64
	Longitude *float64
}

// --- Output DTOs ---

// MapBikeView is an available bike as the renter map shows it.
type MapBikeView struct {
	ID            int64    `json:"id"`
	OwnerID       int64    `json:"owner_id"`
	OwnerName     string   `json:"owner_name"`
	OwnerPhoto    string   `json:"owner_photo"`
	Model         string   `json:"model"`
	Type          string   `json:"type"`
	CostPerMinute float64  `json:"cost_per_minute"`
	ImageURL      string   `json:"image_url"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	DistanceKm    *float64 `json:"distance_km,omitempty"`
	Distance      string   `json:"distance,omitempty"`
}

// BikeMap is the renter map view.
type BikeMap struct {
	Bikes []MapBikeView `json:"bikes"`
	Types []string      `json:"types"` // Distinct bike types among all available bikes.
}
