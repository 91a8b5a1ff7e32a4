package marketplace

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"bikeshare/internal/domain/entity"
	"bikeshare/internal/domain/repository"
)

type supportRepository struct {
	client *Client
}

// NewSupportRepository creates the support desk adapter.
func NewSupportRepository(client *Client) repository.SupportRepository {
	return &supportRepository{client: client}
}

func (r *supportRepository) ListTickets(ctx context.Context, userID int64) ([]*entity.SupportTicket, error) {
	query := url.Values{"userId": {strconv.FormatInt(userID, 10)}}

	var payloads []*ticketPayload
	err := r.client.do(ctx, call{op: "list tickets", method: http.MethodGet, path: "/api/support-tickets", query: query}, &payloads)
	if err != nil {
		return nil, err
	}

	return mapSlice(payloads, (*ticketPayload).toEntity), nil
}

func (r *supportRepository) CreateTicket(ctx context.Context, input *repository.TicketInput) (*entity.SupportTicket, error) {
	body := &ticketRequest{
		UserID:   input.UserID,
		Subject:  input.Subject,
		Category: input.Category,
		Message:  input.Message,
	}

	var payload ticketPayload
	err := r.client.do(ctx, call{op: "create ticket", method: http.MethodPost, path: "/api/support-tickets", body: body}, &payload)
	if err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}
