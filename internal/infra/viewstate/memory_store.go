// Package viewstate holds the per-owner dashboard view published by the latest dashboard pass.
package viewstate

import (
	"slices"
	"sync"

	"bikeshare/internal/domain/entity"
	"bikeshare/internal/domain/service"
)

type ownerView struct {
	issued    service.RunTicket // Last ticket handed out.
	published service.RunTicket // Ticket of the pass whose feed is stored.
	entries   []entity.ActivityEntry
	unread    int
}

// memoryStore is a process-local DashboardViewStore.
type memoryStore struct {
	mu    sync.Mutex
	views map[int64]*ownerView
}

// NewMemoryStore creates an empty view store.
func NewMemoryStore() service.DashboardViewStore {
	return &memoryStore{views: make(map[int64]*ownerView)}
}

func (s *memoryStore) view(ownerID int64) *ownerView {
	v, ok := s.views[ownerID]
	if !ok {
		v = &ownerView{}
		s.views[ownerID] = v
	}

	return v
}

func (s *memoryStore) Begin(ownerID int64) service.RunTicket {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.view(ownerID)
	v.issued++

	return v.issued
}

// Publish accepts the feed only from the most recently issued ticket.
// Entries not present in the previous feed count as unread.
func (s *memoryStore) Publish(ownerID int64, ticket service.RunTicket, entries []entity.ActivityEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.view(ownerID)
	if ticket != v.issued || ticket <= v.published {
		return false
	}

	fresh := 0
	for _, entry := range entries {
		if !slices.Contains(v.entries, entry) {
			fresh++
		}
	}

	v.published = ticket
	v.entries = slices.Clone(entries)
	v.unread = min(v.unread+fresh, len(v.entries))

	return true
}

func (s *memoryStore) Feed(ownerID int64) service.ActivityFeed {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.views[ownerID]
	if !ok {
		return service.ActivityFeed{Entries: []entity.ActivityEntry{}}
	}

	return service.ActivityFeed{
		Entries: slices.Clone(v.entries),
		Unread:  v.unread,
	}
}

func (s *memoryStore) MarkRead(ownerID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.views[ownerID]; ok {
		v.unread = 0
	}
}
