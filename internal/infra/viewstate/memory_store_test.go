package viewstate

import (
	"sync"
	"testing"
	"time"

	"bikeshare/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(person string, minute int) entity.ActivityEntry {
	return entity.ActivityEntry{
		Kind:      entity.ActivityReservation,
		Person:    person,
		BikeName:  "Trek",
		Timestamp: time.Date(2025, 3, 1, 10, minute, 0, 0, time.UTC),
	}
}

func TestMemoryStore_PublishAndFeed(t *testing.T) {
	store := NewMemoryStore()

	ticket := store.Begin(1)
	require.True(t, store.Publish(1, ticket, []entity.ActivityEntry{entry("Ana", 1), entry("Luis", 2)}))

	feed := store.Feed(1)
	assert.Len(t, feed.Entries, 2)
	assert.Equal(t, 2, feed.Unread)

	assert.Empty(t, store.Feed(2).Entries)
}

func TestMemoryStore_StaleRunIsRejected(t *testing.T) {
	store := NewMemoryStore()

	older := store.Begin(1)
	newer := store.Begin(1)

	require.True(t, store.Publish(1, newer, []entity.ActivityEntry{entry("Newer", 5)}))
	assert.False(t, store.Publish(1, older, []entity.ActivityEntry{entry("Older", 1)}))

	feed := store.Feed(1)
	require.Len(t, feed.Entries, 1)
	assert.Equal(t, "Newer", feed.Entries[0].Person)
}

func TestMemoryStore_OlderRunFinishingFirstIsStillStale(t *testing.T) {
	store := NewMemoryStore()

	older := store.Begin(1)
	newer := store.Begin(1)

	assert.False(t, store.Publish(1, older, []entity.ActivityEntry{entry("Older", 1)}))
	assert.True(t, store.Publish(1, newer, []entity.ActivityEntry{entry("Newer", 5)}))
}

func TestMemoryStore_TicketsArePerOwner(t *testing.T) {
	store := NewMemoryStore()

	a := store.Begin(1)
	b := store.Begin(2)

	assert.True(t, store.Publish(1, a, nil))
	assert.True(t, store.Publish(2, b, nil))
}

func TestMemoryStore_UnreadCountsOnlyNewEntries(t *testing.T) {
	store := NewMemoryStore()

	first := []entity.ActivityEntry{entry("Ana", 1), entry("Luis", 2)}
	require.True(t, store.Publish(1, store.Begin(1), first))
	store.MarkRead(1)
	assert.Equal(t, 0, store.Feed(1).Unread)

	second := []entity.ActivityEntry{entry("Eva", 3), entry("Ana", 1), entry("Luis", 2)}
	require.True(t, store.Publish(1, store.Begin(1), second))
	assert.Equal(t, 1, store.Feed(1).Unread)
}

func TestMemoryStore_FeedIsACopy(t *testing.T) {
	store := NewMemoryStore()
	require.True(t, store.Publish(1, store.Begin(1), []entity.ActivityEntry{entry("Ana", 1)}))

	feed := store.Feed(1)
	feed.Entries[0].Person = "Mutated"

	assert.Equal(t, "Ana", store.Feed(1).Entries[0].Person)
}

func TestMemoryStore_ConcurrentRunsKeepLatestTicket(t *testing.T) {
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ticket := store.Begin(1)
			store.Publish(1, ticket, []entity.ActivityEntry{entry("P", i)})
		}()
	}
	wg.Wait()

	last := store.Begin(1)
	assert.Equal(t, 21, int(last))
	assert.LessOrEqual(t, len(store.Feed(1).Entries), 1)
}
