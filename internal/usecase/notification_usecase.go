package usecase

import (
	"context"

	"bikeshare/internal/domain/entity"
)

// NotificationUsecase exposes the activity feed published by the latest owner dashboard pass.
type NotificationUsecase interface {
	GetFeed(ctx context.Context, session entity.Session) (*NotificationFeed, error)
	MarkAllRead(ctx context.Context, session entity.Session) error
}

// NotificationFeed is the owner's notification panel.
type NotificationFeed struct {
	Entries []entity.ActivityEntry `json:"entries"`
	Unread  int                    `json:"unread"`
}
