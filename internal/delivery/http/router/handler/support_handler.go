package handler

import (
	"log/slog"
	"net/http"

	"bikeshare/internal/delivery/http/response"
	"bikeshare/internal/domain/entity"
	"bikeshare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SupportHandlerParams holds dependencies for SupportHandler, injected by Fx.
type SupportHandlerParams struct {
	fx.In

	SupportUC usecase.SupportUsecase
	Logger    *slog.Logger
}

// SupportHandler serves the support desk endpoints.
type SupportHandler struct {
	supportUC usecase.SupportUsecase
	logger    *slog.Logger
}

// NewSupportHandler is the constructor for SupportHandler.
func NewSupportHandler(params SupportHandlerParams) *SupportHandler {
	return &SupportHandler{
		supportUC: params.SupportUC,
		logger:    params.Logger,
	}
}

// CreateTicketRequest represents the request body for opening a support ticket
type CreateTicketRequest struct {
	Subject  string `json:"subject" validate:"required,max=150"`
	Category string `json:"category" validate:"required"`
	Message  string `json:"message" validate:"required,max=5000"`
}

// ListTickets returns the caller's tickets.
func (h *SupportHandler) ListTickets(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	tickets, err := h.supportUC.ListTickets(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTicketResponses(tickets), "Tickets retrieved successfully")
}

// ListCategories returns the categories a ticket can be filed under.
func (h *SupportHandler) ListCategories(c echo.Context) error {
	return response.Success(c, http.StatusOK, entity.TicketCategories, "Categories retrieved successfully")
}

// CreateTicket opens a ticket for the caller.
func (h *SupportHandler) CreateTicket(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	var req CreateTicketRequest
	if ok, err := bindAndValidate(c, &req, "Invalid ticket input"); !ok {
		return err
	}

	ticket, err := h.supportUC.CreateTicket(c.Request().Context(), session, &usecase.CreateTicketInput{
		Subject:  req.Subject,
		Category: req.Category,
		Message:  req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTicketResponse(ticket), "Ticket created successfully")
}
