package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "bikeshare/internal/delivery/context"
	"bikeshare/internal/domain/entity"
	domainerrors "bikeshare/internal/domain/errors"
	"bikeshare/internal/domain/repository"
	"bikeshare/internal/domain/service"
	"bikeshare/internal/usecase"

	"github.com/pkg/errors"
)

// minTicketMessage is the shortest accepted ticket message, in characters.
const minTicketMessage = 20

// supportService implements the SupportUsecase interface.
type supportService struct {
	support   repository.SupportRepository
	sanitizer service.TextSanitizer
	logger    *slog.Logger
}

// NewSupportService is the constructor for supportService.
func NewSupportService(support repository.SupportRepository, sanitizer service.TextSanitizer, logger *slog.Logger) usecase.SupportUsecase {
	return &supportService{
		support:   support,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

func (srv *supportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListTickets returns the caller's tickets in upstream order.
func (srv *supportService) ListTickets(ctx context.Context, session entity.Session) ([]*entity.SupportTicket, error) {
	tickets, err := srv.support.ListTickets(ctx, session.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list support tickets")
	}

	return tickets, nil
}

// CreateTicket opens a support ticket for the caller. Free text is sanitized before it is sent.
func (srv *supportService) CreateTicket(
	ctx context.Context,
	session entity.Session,
	input *usecase.CreateTicketInput,
) (*entity.SupportTicket, error) {
	subject := srv.sanitizer.Sanitize(input.Subject)
	if subject == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("subject is required"))
	}

	category := strings.TrimSpace(input.Category)
	if !entity.IsTicketCategory(category) {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown category " + category))
	}

	message := srv.sanitizer.Sanitize(input.Message)
	if utf8.RuneCountInString(message) < minTicketMessage {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("message must have at least 20 characters"))
	}

	ticket, err := srv.support.CreateTicket(ctx, &repository.TicketInput{
		UserID:   session.UserID,
		Subject:  subject,
		Category: category,
		Message:  message,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create support ticket")
	}

	srv.log(ctx).Info("Support ticket created",
		slog.Int64("ticket_id", ticket.ID),
		slog.String("category", category),
	)

	return ticket, nil
}
