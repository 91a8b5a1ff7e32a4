package impl

import (
	"context"
	"testing"

	"bikeshare/internal/domain/entity"
	"bikeshare/internal/domain/service"
	mockSvc "bikeshare/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_GetFeed(t *testing.T) {
	views := mockSvc.NewMockDashboardViewStore(t)
	srv := NewNotificationService(views)

	entries := []entity.ActivityEntry{activityAt(entity.ActivityReview, "Ana", 1)}
	views.EXPECT().Feed(ownerSession.UserID).Return(service.ActivityFeed{Entries: entries, Unread: 1})

	feed, err := srv.GetFeed(context.Background(), ownerSession)

	require.NoError(t, err)
	assert.Equal(t, entries, feed.Entries)
	assert.Equal(t, 1, feed.Unread)
}

func TestNotificationService_GetFeed_NothingPublished(t *testing.T) {
	views := mockSvc.NewMockDashboardViewStore(t)
	srv := NewNotificationService(views)

	views.EXPECT().Feed(ownerSession.UserID).Return(service.ActivityFeed{})

	feed, err := srv.GetFeed(context.Background(), ownerSession)

	require.NoError(t, err)
	assert.NotNil(t, feed.Entries)
	assert.Empty(t, feed.Entries)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	views := mockSvc.NewMockDashboardViewStore(t)
	srv := NewNotificationService(views)

	views.EXPECT().MarkRead(ownerSession.UserID).Return()

	require.NoError(t, srv.MarkAllRead(context.Background(), ownerSession))
}
