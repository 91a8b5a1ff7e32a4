package impl

import (
	"slices"

	"bikeshare/internal/domain/entity"
)

// activityFeedSize is the number of entries kept on the owner dashboard.
const activityFeedSize = 6

// MergeActivity merges reservation and review activity into one feed, newest first.
// Entries with equal timestamps keep their input order, reservation entries first.
// The result has min(limit, len(reservationActs)+len(reviewActs)) entries; inputs are not modified.
func MergeActivity(reservationActs, reviewActs []entity.ActivityEntry, limit int) []entity.ActivityEntry {
	merged := make([]entity.ActivityEntry, 0, len(reservationActs)+len(reviewActs))
	merged = append(merged, reservationActs...)
	merged = append(merged, reviewActs...)

	slices.SortStableFunc(merged, func(a, b entity.ActivityEntry) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	if limit < 0 {
		limit = 0
	}

	return firstN(merged, limit)
}

// reservationActivity projects a reservation into the feed.
func reservationActivity(r *entity.Reservation, person, bike string) entity.ActivityEntry {
	kind := entity.ActivityReservation
	if r.Status == entity.ReservationCancelled {
		kind = entity.ActivityCancellation
	}

	return entity.ActivityEntry{
		Kind:      kind,
		Person:    person,
		BikeName:  bike,
		Timestamp: r.StartDate,
	}
}

// reviewActivity projects a review into the feed.
func reviewActivity(r *entity.Review, person string) entity.ActivityEntry {
	return entity.ActivityEntry{
		Kind:      entity.ActivityReview,
		Person:    person,
		BikeName:  reviewActivityBike,
		Timestamp: r.CreatedAt,
	}
}
