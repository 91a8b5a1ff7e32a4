package handler

import (
	"net/http"
	"testing"
	"time"

	"bikeshare/internal/domain/entity"
	mocks "bikeshare/internal/mocks/usecase"
	"bikeshare/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationHandler(t *testing.T) {
	uc := mocks.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: uc, Logger: discardLogger()})

	uc.EXPECT().GetFeed(mock.Anything, ownerSession).Return(&usecase.NotificationFeed{
		Entries: []entity.ActivityEntry{{Kind: entity.ActivityReview, Person: "Luis", Timestamp: time.Now()}},
		Unread:  1,
	}, nil)
	uc.EXPECT().MarkAllRead(mock.Anything, ownerSession).Return(nil)

	c, rec := newTestContext(http.MethodGet, "/api/owner/notifications", "", &ownerSession)
	require.NoError(t, h.GetFeed(c))

	var feed usecase.NotificationFeed
	decodeEnvelope(t, rec, &feed)
	assert.Equal(t, 1, feed.Unread)
	require.Len(t, feed.Entries, 1)
	assert.Equal(t, entity.ActivityReview, feed.Entries[0].Kind)

	c, rec = newTestContext(http.MethodPost, "/api/owner/notifications/read", "", &ownerSession)
	require.NoError(t, h.MarkAllRead(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
