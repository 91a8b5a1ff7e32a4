// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"bikeshare/internal/domain/entity"
)

// DashboardUsecase builds the display-ready home views of both marketplace sides.
type DashboardUsecase interface {
	// BuildOwnerDashboard aggregates the owner's bikes, their reservations and the
	// owner's reviews. Any failed primary fetch fails the whole build.
	BuildOwnerDashboard(ctx context.Context, session entity.Session) (*OwnerDashboard, error)

	// BuildRenterDashboard aggregates the renter's reservations and the bikes available right now.
	BuildRenterDashboard(ctx context.Context, session entity.Session) (*RenterDashboard, error)
}

// --- Output DTOs ---

// StatusBreakdown counts reservations per status. The parts always add up to Total.
type StatusBreakdown struct {
	Pending   int `json:"pending"`
	Accepted  int `json:"accepted"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
	Declined  int `json:"declined"`
	Other     int `json:"other"`
	Total     int `json:"total"`
}

// OwnerStats are the headline figures of the owner dashboard.
type OwnerStats struct {
	MonthlyIncome    float64         `json:"monthly_income"`
	PendingCount     int             `json:"pending_count"`
	ActiveBikesCount int             `json:"active_bikes_count"`
	OwnerRating      float64         `json:"owner_rating"`
	Breakdown        StatusBreakdown `json:"breakdown"`
}

// ReservationView is a reservation enriched with renter and bike display data.
type ReservationView struct {
	ID           int64                    `json:"id"`
	BikeID       int64                    `json:"bike_id"`
	BikeName     string                   `json:"bike_name"`
	RenterID     int64                    `json:"renter_id"`
	RenterName   string                   `json:"renter_name"`
	RenterAvatar string                   `json:"renter_avatar"`
	StartDate    time.Time                `json:"start_date"`
	EndDate      time.Time                `json:"end_date"`
	Status       entity.ReservationStatus `json:"status"`
	TotalPrice   float64                  `json:"total_price"`
}

// BikeSummary is the card shown for a bike.
type BikeSummary struct {
	ID            int64             `json:"id"`
	Model         string            `json:"model"`
	Type          string            `json:"type"`
	CostPerMinute float64           `json:"cost_per_minute"`
	ImageURL      string            `json:"image_url"`
	Status        entity.BikeStatus `json:"status"`
	Latitude      float64           `json:"latitude"`
	Longitude     float64           `json:"longitude"`
}

// OwnerDashboard is the owner home view.
type OwnerDashboard struct {
	Stats               OwnerStats             `json:"stats"`
	PendingReservations []ReservationView      `json:"pending_reservations"`
	RecentActivity      []entity.ActivityEntry `json:"recent_activity"`
	TopBikes            []BikeSummary          `json:"top_bikes"`

	// Superseded is set when a newer dashboard pass for the same owner started before this one
	// finished; its activity feed was not published to the notification view.
	Superseded bool `json:"superseded"`
}

// RenterStats are the headline figures of the renter dashboard.
type RenterStats struct {
	RentalsCount       int     `json:"rentals_count"`
	DistanceTraveledKm float64 `json:"distance_traveled_km"`
	DrivingTimeMinutes int     `json:"driving_time_minutes"`
	DrivingTime        string  `json:"driving_time"`
}

// UpcomingReservationView is the renter's next reservation with bike and owner details.
type UpcomingReservationView struct {
	ID         int64                    `json:"id"`
	BikeID     int64                    `json:"bike_id"`
	BikeName   string                   `json:"bike_name"`
	BikeImage  string                   `json:"bike_image"`
	Latitude   float64                  `json:"latitude"`
	Longitude  float64                  `json:"longitude"`
	OwnerName  string                   `json:"owner_name"`
	StartDate  time.Time                `json:"start_date"`
	EndDate    time.Time                `json:"end_date"`
	Status     entity.ReservationStatus `json:"status"`
	TotalPrice float64                  `json:"total_price"`
}

// RentalHistoryView is a past rental.
type RentalHistoryView struct {
	ID        int64                    `json:"id"`
	BikeName  string                   `json:"bike_name"`
	StartDate time.Time                `json:"start_date"`
	Status    entity.ReservationStatus `json:"status"`
}

// RecommendationView is an available bike suggested to the renter.
type RecommendationView struct {
	ID             int64   `json:"id"`
	BikeName       string  `json:"bike_name"`
	PricePerMinute float64 `json:"price_per_minute"`
	ImageURL       string  `json:"image_url"`
}

// RenterDashboard is the renter home view.
type RenterDashboard struct {
	Stats               RenterStats              `json:"stats"`
	UpcomingReservation *UpcomingReservationView `json:"upcoming_reservation"`
	RecentRentals       []RentalHistoryView      `json:"recent_rentals"`
	Recommendations     []RecommendationView     `json:"recommendations"`
}
