package handler

import (
	"net/http"
	"testing"
	"time"

	"bikeshare/internal/domain/entity"
	domainerrors "bikeshare/internal/domain/errors"
	mocks "bikeshare/internal/mocks/usecase"
	"bikeshare/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSupportHandler(t *testing.T) (*SupportHandler, *mocks.MockSupportUsecase) {
	uc := mocks.NewMockSupportUsecase(t)

	return NewSupportHandler(SupportHandlerParams{SupportUC: uc, Logger: discardLogger()}), uc
}

func TestSupportHandler_ListTickets(t *testing.T) {
	h, uc := newTestSupportHandler(t)
	uc.EXPECT().ListTickets(mock.Anything, renterSession).Return([]*entity.SupportTicket{
		{ID: 1, Subject: "Cobro doble", Category: "Pagos", Status: entity.TicketOpen, CreatedAt: time.Now()},
	}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/me/support/tickets", "", &renterSession)
	require.NoError(t, h.ListTickets(c))

	var out []TicketResponse
	decodeEnvelope(t, rec, &out)
	require.Len(t, out, 1)
	assert.Equal(t, "Pagos", out[0].Category)
}

func TestSupportHandler_CreateTicket(t *testing.T) {
	h, uc := newTestSupportHandler(t)
	input := &usecase.CreateTicketInput{
		Subject: "Cobro doble", Category: "Pagos", Message: "Me cobraron dos veces el mismo alquiler",
	}
	uc.EXPECT().CreateTicket(mock.Anything, renterSession, input).
		Return(&entity.SupportTicket{ID: 9, Subject: input.Subject, Category: input.Category, Status: entity.TicketOpen}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/me/support/tickets",
		`{"subject":"Cobro doble","category":"Pagos","message":"Me cobraron dos veces el mismo alquiler"}`, &renterSession)
	require.NoError(t, h.CreateTicket(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSupportHandler_CreateTicket_UsecaseValidation(t *testing.T) {
	h, uc := newTestSupportHandler(t)
	uc.EXPECT().CreateTicket(mock.Anything, renterSession, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown category Otros")))

	c, _ := newTestContext(http.MethodPost, "/api/me/support/tickets",
		`{"subject":"Hola","category":"Otros","message":"Un mensaje suficientemente largo"}`, &renterSession)
	assert.ErrorIs(t, h.CreateTicket(c), domainerrors.ErrValidationFailed)
}

func TestSupportHandler_ListCategories(t *testing.T) {
	h, _ := newTestSupportHandler(t)

	c, rec := newTestContext(http.MethodGet, "/api/me/support/categories", "", &renterSession)
	require.NoError(t, h.ListCategories(c))

	var out []string
	decodeEnvelope(t, rec, &out)
	assert.Equal(t, entity.TicketCategories, out)
}
