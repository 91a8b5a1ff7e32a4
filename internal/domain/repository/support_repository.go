package repository

import (
	"context"

	"bikeshare/internal/domain/entity"
)

// TicketInput is a new support request.
type TicketInput struct {
	UserID   int64
	Subject  string
	Category string
	Message  string
}

// SupportRepository defines the support desk capabilities of the marketplace.
type SupportRepository interface {
	ListTickets(ctx context.Context, userID int64) ([]*entity.SupportTicket, error)
	CreateTicket(ctx context.Context, input *TicketInput) (*entity.SupportTicket, error)
}
