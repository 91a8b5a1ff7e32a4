package impl

import (
	"context"

	"bikeshare/internal/domain/entity"
	"bikeshare/internal/domain/service"
	"bikeshare/internal/usecase"
)

// notificationService implements the NotificationUsecase interface over the dashboard view store.
type notificationService struct {
	views service.DashboardViewStore
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(views service.DashboardViewStore) usecase.NotificationUsecase {
	return &notificationService{views: views}
}

// GetFeed returns the activity feed published by the owner's latest dashboard pass.
func (srv *notificationService) GetFeed(_ context.Context, session entity.Session) (*usecase.NotificationFeed, error) {
	feed := srv.views.Feed(session.UserID)

	entries := feed.Entries
	if entries == nil {
		entries = []entity.ActivityEntry{}
	}

	return &usecase.NotificationFeed{
		Entries: entries,
		Unread:  feed.Unread,
	}, nil
}

// MarkAllRead clears the owner's unread counter.
func (srv *notificationService) MarkAllRead(_ context.Context, session entity.Session) error {
	srv.views.MarkRead(session.UserID)

	return nil
}
