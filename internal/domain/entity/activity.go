package entity

import "time"

// ActivityKind tells what produced an activity entry.
type ActivityKind string

const (
	ActivityReservation  ActivityKind = "reservation"
	ActivityReview       ActivityKind = "review"
	ActivityCancellation ActivityKind = "cancellation"
)

// ActivityEntry is a display-only record of something that happened around an
// owner's bikes. Entries are derived on every dashboard pass and never sent upstream.
type ActivityEntry struct {
	Kind      ActivityKind `json:"kind"`
	Person    string       `json:"person"`
	BikeName  string       `json:"bike_name"`
	Timestamp time.Time    `json:"timestamp"`
}
