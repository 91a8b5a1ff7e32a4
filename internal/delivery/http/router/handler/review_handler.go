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

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler serves the review endpoints of both sides.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// CreateReviewRequest represents the request body for reviewing a rental
type CreateReviewRequest struct {
	ReservationID int64   `json:"reservation_id" validate:"required,gt=0"`
	Rating        float64 `json:"rating" validate:"gt=0,halfstep"`
	Comment       string  `json:"comment" validate:"required,max=2000"`
}

// ListReceived returns the reviews written about the owner.
func (h *ReviewHandler) ListReceived(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	reviews, err := h.reviewUC.ListReceived(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}

// ListWritten returns the reviews the renter wrote.
func (h *ReviewHandler) ListWritten(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	reviews, err := h.reviewUC.ListWritten(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}

// ListReviewable returns the renter's completed rentals that still lack a review.
func (h *ReviewHandler) ListReviewable(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	items, err := h.reviewUC.ListReviewable(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Reviewable rentals retrieved successfully")
}

// CreateReview rates a completed rental.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	var req CreateReviewRequest
	if ok, err := bindAndValidate(c, &req, "Invalid review input"); !ok {
		return err
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), session, &usecase.CreateReviewInput{
		ReservationID: req.ReservationID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toReviewResponse(review), "Review created successfully")
}
