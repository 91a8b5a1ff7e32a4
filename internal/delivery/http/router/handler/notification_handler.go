package handler

import (
	"log/slog"
	"net/http"

	"bikeshare/internal/delivery/http/response"
	"bikeshare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves the owner notification panel.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler.
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// GetFeed returns the activity feed of the latest dashboard pass.
func (h *NotificationHandler) GetFeed(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	feed, err := h.notificationUC.GetFeed(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, feed, "Notifications retrieved successfully")
}

// MarkAllRead clears the unread counter.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	if err := h.notificationUC.MarkAllRead(c.Request().Context(), session); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notifications marked as read")
}
