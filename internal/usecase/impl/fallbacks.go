package impl

import (
	"strings"

	"bikeshare/internal/domain/entity"
)

// Display values used when a lookup fails or a field is empty.
const (
	fallbackPersonName    = "Usuario"
	fallbackOwnerName     = "Propietario"
	fallbackReviewerName  = "Arrendatario"
	fallbackAvatar        = "assets/img/default-avatar.png"
	fallbackBikeImage     = "assets/img/bike-placeholder.jpg"
	fallbackFleetBikeName = "Bici"
	fallbackUnknownBike   = "Bici desconocida"
	fallbackRentedBike    = "Bicicleta"
	reviewActivityBike    = "Tu servicio"
)

// displayName returns the profile's name or fallback. It never returns an empty string for a non-empty fallback.
func displayName(profile Resolved[*entity.Profile], fallback string) string {
	if !profile.OK() || profile.Value() == nil {
		return fallback
	}

	if name := strings.TrimSpace(profile.Value().FullName); name != "" {
		return name
	}

	return fallback
}

// avatarOf returns the profile's avatar or the placeholder.
func avatarOf(profile Resolved[*entity.Profile]) string {
	if !profile.OK() || profile.Value() == nil || profile.Value().AvatarURL == "" {
		return fallbackAvatar
	}

	return profile.Value().AvatarURL
}

// bikeName resolves a bike model from an already fetched index.
func bikeName(index map[int64]*entity.Bike, bikeID int64, fallback string) string {
	bike, ok := index[bikeID]
	if !ok || strings.TrimSpace(bike.Model) == "" {
		return fallback
	}

	return bike.Model
}

// bikeImage returns the bike's picture or the placeholder.
func bikeImage(bike *entity.Bike) string {
	if bike == nil || bike.ImageURL == "" {
		return fallbackBikeImage
	}

	return bike.ImageURL
}
