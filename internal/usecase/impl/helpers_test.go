package impl

import (
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"bikeshare/config"
	"bikeshare/internal/domain/entity"

	"github.com/paulmach/orb"
)

var (
	ownerSession  = entity.Session{UserID: 7, Role: entity.RoleOwner}
	renterSession = entity.Session{UserID: 42, Role: entity.RoleRenter}

	baseTime = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{Dashboard: &config.DashboardConfig{FanOutLimit: 2}}
}

func newBike(id, ownerID int64, model string) *entity.Bike {
	return &entity.Bike{
		ID:            id,
		OwnerID:       ownerID,
		Model:         model,
		Type:          "urbana",
		CostPerMinute: 0.5,
		Position:      orb.Point{-77.03, -12.05},
		Status:        entity.BikeStatusAvailable,
	}
}

func newReservation(id, bikeID, renterID int64, status entity.ReservationStatus, start time.Time, price float64) *entity.Reservation {
	return &entity.Reservation{
		ID:         id,
		BikeID:     bikeID,
		RenterID:   renterID,
		StartDate:  start,
		EndDate:    start.Add(time.Hour),
		Status:     status,
		TotalPrice: price,
	}
}

// inFlightGauge records the highest number of concurrent calls seen.
type inFlightGauge struct {
	current atomic.Int32
	peak    atomic.Int32
}

// enter marks a call as started and returns the func that marks it finished.
func (g *inFlightGauge) enter() func() {
	now := g.current.Add(1)
	for {
		old := g.peak.Load()
		if now <= old || g.peak.CompareAndSwap(old, now) {
			break
		}
	}

	return func() { g.current.Add(-1) }
}
