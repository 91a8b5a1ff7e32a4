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

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
	Logger      *slog.Logger
}

// DashboardHandler serves the home views of both marketplace sides.
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
	logger      *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler.
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: params.DashboardUC,
		logger:      params.Logger,
	}
}

// OwnerDashboard builds the owner home view.
func (h *DashboardHandler) OwnerDashboard(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	dashboard, err := h.dashboardUC.BuildOwnerDashboard(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dashboard, "Owner dashboard retrieved successfully")
}

// RenterDashboard builds the renter home view.
func (h *DashboardHandler) RenterDashboard(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	dashboard, err := h.dashboardUC.BuildRenterDashboard(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dashboard, "Renter dashboard retrieved successfully")
}
