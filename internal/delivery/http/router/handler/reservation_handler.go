package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "bikeshare/internal/delivery/context"
	"bikeshare/internal/delivery/http/response"
	"bikeshare/internal/domain/entity"
	"bikeshare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReservationHandlerParams holds dependencies for ReservationHandler, injected by Fx.
type ReservationHandlerParams struct {
	fx.In

	ReservationUC usecase.ReservationUsecase
	DashboardUC   usecase.DashboardUsecase
	Logger        *slog.Logger
}

// ReservationHandler serves the booking endpoints. Every successful status change
// is answered with the freshly rebuilt dashboard of the acting side.
type ReservationHandler struct {
	reservationUC usecase.ReservationUsecase
	dashboardUC   usecase.DashboardUsecase
	logger        *slog.Logger
}

// NewReservationHandler is the constructor for ReservationHandler.
func NewReservationHandler(params ReservationHandlerParams) *ReservationHandler {
	return &ReservationHandler{
		reservationUC: params.ReservationUC,
		dashboardUC:   params.DashboardUC,
		logger:        params.Logger,
	}
}

// CreateReservationRequest represents the request body for reserving a bike
type CreateReservationRequest struct {
	BikeID    int64      `json:"bike_id" validate:"required,gt=0"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// OwnerActionResponse is the answer to an owner decision. Dashboard is null when the rebuild failed.
type OwnerActionResponse struct {
	Reservation *ReservationResponse    `json:"reservation"`
	Dashboard   *usecase.OwnerDashboard `json:"dashboard"`
}

// RenterActionResponse is the answer to a renter booking change. Dashboard is null when the rebuild failed.
type RenterActionResponse struct {
	Reservation *ReservationResponse     `json:"reservation"`
	Dashboard   *usecase.RenterDashboard `json:"dashboard"`
}

// ListOwnerReservations returns the reservations of the owner's bikes, grouped.
func (h *ReservationHandler) ListOwnerReservations(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	grouped, err := h.reservationUC.ListOwnerReservations(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, grouped, "Reservations retrieved successfully")
}

// AcceptReservation accepts a pending reservation.
func (h *ReservationHandler) AcceptReservation(c echo.Context) error {
	return h.ownerDecision(c, h.reservationUC.AcceptReservation, "Reservation accepted")
}

// DeclineReservation declines a pending reservation.
func (h *ReservationHandler) DeclineReservation(c echo.Context) error {
	return h.ownerDecision(c, h.reservationUC.DeclineReservation, "Reservation declined")
}

type reservationAction func(ctx context.Context, session entity.Session, reservationID int64) (*entity.Reservation, error)

func (h *ReservationHandler) ownerDecision(c echo.Context, action reservationAction, message string) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	reservationID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid reservation ID")
	}

	ctx := c.Request().Context()
	reservation, err := action(ctx, session, reservationID)
	if err != nil {
		return errors.WithStack(err)
	}

	result := &OwnerActionResponse{Reservation: toReservationResponse(reservation)}
	dashboard, err := h.dashboardUC.BuildOwnerDashboard(ctx, session)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Owner dashboard rebuild failed after decision",
			slog.Int64("reservation_id", reservationID),
			slog.Any("error", err),
		)
	} else {
		result.Dashboard = dashboard
	}

	return response.Success(c, http.StatusOK, result, message)
}

// CreateReservation books a bike for the renter.
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	var req CreateReservationRequest
	if ok, err := bindAndValidate(c, &req, "Invalid reservation input"); !ok {
		return err
	}

	ctx := c.Request().Context()
	reservation, err := h.reservationUC.CreateReservation(ctx, session, &usecase.CreateReservationInput{
		BikeID:    req.BikeID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.renterResult(c, session, reservation), "Reservation created successfully")
}

// CancelReservation cancels one of the renter's pending or accepted reservations.
func (h *ReservationHandler) CancelReservation(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	reservationID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid reservation ID")
	}

	reservation, err := h.reservationUC.CancelReservation(c.Request().Context(), session, reservationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.renterResult(c, session, reservation), "Reservation cancelled")
}

func (h *ReservationHandler) renterResult(c echo.Context, session entity.Session, reservation *entity.Reservation) *RenterActionResponse {
	ctx := c.Request().Context()
	result := &RenterActionResponse{Reservation: toReservationResponse(reservation)}

	dashboard, err := h.dashboardUC.BuildRenterDashboard(ctx, session)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Renter dashboard rebuild failed after booking change",
			slog.Int64("reservation_id", reservation.ID),
			slog.Any("error", err),
		)

		return result
	}
	result.Dashboard = dashboard

	return result
}
