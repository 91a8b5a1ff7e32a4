package impl

import (
	"slices"
	"testing"
	"time"

	"bikeshare/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func activityAt(kind entity.ActivityKind, person string, hoursAgo int) entity.ActivityEntry {
	return entity.ActivityEntry{
		Kind:      kind,
		Person:    person,
		BikeName:  "Bici",
		Timestamp: baseTime.Add(-time.Duration(hoursAgo) * time.Hour),
	}
}

func TestMergeActivity_LengthIsBounded(t *testing.T) {
	tests := []struct {
		name   string
		n, m   int
		expect int
	}{
		{name: "both empty", n: 0, m: 0, expect: 0},
		{name: "under limit", n: 2, m: 3, expect: 5},
		{name: "exactly limit", n: 3, m: 3, expect: 6},
		{name: "over limit", n: 5, m: 4, expect: 6},
		{name: "only reviews", n: 0, m: 9, expect: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reservations, reviews []entity.ActivityEntry
			for i := range tt.n {
				reservations = append(reservations, activityAt(entity.ActivityReservation, "R", i))
			}
			for i := range tt.m {
				reviews = append(reviews, activityAt(entity.ActivityReview, "V", i+tt.n))
			}

			merged := MergeActivity(reservations, reviews, activityFeedSize)

			assert.Len(t, merged, tt.expect)
			assert.True(t, slices.IsSortedFunc(merged, func(a, b entity.ActivityEntry) int {
				return b.Timestamp.Compare(a.Timestamp)
			}))
		})
	}
}

func TestMergeActivity_NewestFirst(t *testing.T) {
	reservations := []entity.ActivityEntry{
		activityAt(entity.ActivityReservation, "Ana", 5),
		activityAt(entity.ActivityCancellation, "Luis", 1),
	}
	reviews := []entity.ActivityEntry{
		activityAt(entity.ActivityReview, "Marta", 3),
	}

	merged := MergeActivity(reservations, reviews, activityFeedSize)

	assert.Equal(t, []string{"Luis", "Marta", "Ana"}, people(merged))
}

func TestMergeActivity_ReversedInputGivesSameFeed(t *testing.T) {
	reservations := []entity.ActivityEntry{
		activityAt(entity.ActivityReservation, "a", 8),
		activityAt(entity.ActivityReservation, "b", 2),
		activityAt(entity.ActivityReservation, "c", 6),
		activityAt(entity.ActivityReservation, "d", 4),
	}
	reviews := []entity.ActivityEntry{
		activityAt(entity.ActivityReview, "e", 1),
		activityAt(entity.ActivityReview, "f", 7),
		activityAt(entity.ActivityReview, "g", 3),
	}

	forward := MergeActivity(reservations, reviews, activityFeedSize)

	reversedReservations := slices.Clone(reservations)
	slices.Reverse(reversedReservations)
	reversedReviews := slices.Clone(reviews)
	slices.Reverse(reversedReviews)

	assert.Equal(t, forward, MergeActivity(reversedReservations, reversedReviews, activityFeedSize))
	assert.Equal(t, []string{"e", "b", "g", "d", "c", "f"}, people(forward))
}

func TestMergeActivity_TiesKeepReservationsFirst(t *testing.T) {
	reservations := []entity.ActivityEntry{activityAt(entity.ActivityReservation, "first", 1)}
	reviews := []entity.ActivityEntry{activityAt(entity.ActivityReview, "second", 1)}

	merged := MergeActivity(reservations, reviews, activityFeedSize)

	assert.Equal(t, []string{"first", "second"}, people(merged))
}

func TestMergeActivity_DoesNotMutateInputs(t *testing.T) {
	reservations := []entity.ActivityEntry{
		activityAt(entity.ActivityReservation, "old", 9),
		activityAt(entity.ActivityReservation, "new", 1),
	}
	original := slices.Clone(reservations)

	_ = MergeActivity(reservations, nil, 1)

	assert.Equal(t, original, reservations)
}

func TestReservationActivity_Kind(t *testing.T) {
	cancelled := newReservation(1, 1, 2, entity.ReservationCancelled, baseTime, 0)
	pending := newReservation(2, 1, 2, entity.ReservationPending, baseTime, 0)

	assert.Equal(t, entity.ActivityCancellation, reservationActivity(cancelled, "Ana", "Bici").Kind)
	assert.Equal(t, entity.ActivityReservation, reservationActivity(pending, "Ana", "Bici").Kind)
	assert.Equal(t, baseTime, reservationActivity(pending, "Ana", "Bici").Timestamp)

	review := reviewActivity(&entity.Review{ID: 1, CreatedAt: baseTime}, "Ana")
	assert.Equal(t, entity.ActivityReview, review.Kind)
	assert.Equal(t, reviewActivityBike, review.BikeName)
}

func people(entries []entity.ActivityEntry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Person)
	}

	return names
}
