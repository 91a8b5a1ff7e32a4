package usecase

import (
	"context"

	"bikeshare/internal/domain/entity"
)

// SupportUsecase defines the support desk operations.
type SupportUsecase interface {
	ListTickets(ctx context.Context, session entity.Session) ([]*entity.SupportTicket, error)
	CreateTicket(ctx context.Context, session entity.Session, input *CreateTicketInput) (*entity.SupportTicket, error)
}

// CreateTicketInput defines the data required to open a support ticket.
type CreateTicketInput struct {
	Subject  string `json:"subject"`
	Category string `json:"category"`
	Message  string `json:"message"`
}
