// Package entity contains the core business objects of the marketplace as the
// gateway sees them. None of them are owned here: every value is decoded from
// an upstream response and is immutable for the duration of one request.
package entity

import (
	"github.com/paulmach/orb"
)

// BikeStatus is the availability status of a bicycle in the catalog.
type BikeStatus string

const (
	BikeStatusAvailable   BikeStatus = "AVAILABLE"
	BikeStatusRented      BikeStatus = "RENTED"
	BikeStatusMaintenance BikeStatus = "MAINTENANCE"
)

// Bike is a bicycle listed by an owner.
type Bike struct {
	ID            int64      // Catalog identifier.
	OwnerID       int64      // The user who listed the bike.
	Model         string     // Display model name, used as the bike's name everywhere.
	Type          string     // Category (urban, mountain, electric...).
	CostPerMinute float64    // Rental price per minute.
	ImageURL      string     // Optional picture.
	Position      orb.Point  // Geographic position as (lng, lat).
	Status        BikeStatus // Availability status.
}

// Located reports whether the bike carries a usable position.
// The upstream sends 0/0 for bikes that were never placed on the map.
func (b *Bike) Located() bool {
	return b.Position.Lat() != 0 || b.Position.Lon() != 0
}

// IsAvailable reports whether the bike can be reserved right now.
func (b *Bike) IsAvailable() bool {
	return b.Status == BikeStatusAvailable
}

// IndexBikes builds an id lookup over a fetched bike set.
func IndexBikes(bikes []*Bike) map[int64]*Bike {
	index := make(map[int64]*Bike, len(bikes))
	for _, bike := range bikes {
		index[bike.ID] = bike
	}

	return index
}
