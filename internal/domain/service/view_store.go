package service

import (
	"bikeshare/internal/domain/entity"
)

// RunTicket identifies one owner dashboard pass. Tickets of the same owner are strictly increasing.
type RunTicket uint64

// ActivityFeed is the latest published activity feed of an owner.
type ActivityFeed struct {
	Entries []entity.ActivityEntry
	Unread  int
}

// DashboardViewStore keeps the last published dashboard view per owner and protects it
// against passes that finish out of order.
type DashboardViewStore interface {
	// Begin issues a new ticket for ownerID. Any ticket issued before it becomes stale.
	Begin(ownerID int64) RunTicket

	// Publish stores entries as the owner's feed unless ticket is stale. It reports whether the feed was stored.
	Publish(ownerID int64, ticket RunTicket, entries []entity.ActivityEntry) bool

	// Feed returns the latest published feed of ownerID.
	Feed(ownerID int64) ActivityFeed

	// MarkRead resets the unread counter of ownerID.
	MarkRead(ownerID int64)
}
