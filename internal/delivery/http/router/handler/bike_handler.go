package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"bikeshare/internal/delivery/http/response"
	"bikeshare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// allBikeTypes is the map filter value meaning "no type constraint".
const allBikeTypes = "Todos"

// BikeHandlerParams holds dependencies for BikeHandler, injected by Fx.
type BikeHandlerParams struct {
	fx.In

	BikeUC usecase.BikeUsecase
	Logger *slog.Logger
}

// BikeHandler serves owner bike management and the renter map.
type BikeHandler struct {
	bikeUC usecase.BikeUsecase
	logger *slog.Logger
}

// NewBikeHandler is the constructor for BikeHandler.
func NewBikeHandler(params BikeHandlerParams) *BikeHandler {
	return &BikeHandler{
		bikeUC: params.BikeUC,
		logger: params.Logger,
	}
}

// BikeRequest represents the request body for creating or updating a bike
type BikeRequest struct {
	Model         string  `json:"model" validate:"required,max=120"`
	Type          string  `json:"type" validate:"required,max=60"`
	CostPerMinute float64 `json:"cost_per_minute" validate:"gt=0"`
	ImageURL      string  `json:"image_url" validate:"omitempty,url"`
	Latitude      float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude     float64 `json:"longitude" validate:"min=-180,max=180"`
}

func (r *BikeRequest) toInput() *usecase.BikeInput {
	return &usecase.BikeInput{
		Model:         r.Model,
		Type:          r.Type,
		CostPerMinute: r.CostPerMinute,
		ImageURL:      r.ImageURL,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
	}
}

// MapQueryRequest holds the renter map query parameters
type MapQueryRequest struct {
	Type      string
	MinPrice  *float64 `validate:"omitempty,gte=0"`
	MaxPrice  *float64 `validate:"omitempty,gte=0"`
	Latitude  *float64 `validate:"required_with=Longitude,omitempty,min=-90,max=90"`
	Longitude *float64 `validate:"required_with=Latitude,omitempty,min=-180,max=180"`
}

// ListOwnerBikes returns the owner's bikes.
func (h *BikeHandler) ListOwnerBikes(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	bikes, err := h.bikeUC.ListOwnerBikes(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBikeResponses(bikes), "Bikes retrieved successfully")
}

// CreateBike lists a new bike.
func (h *BikeHandler) CreateBike(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	var req BikeRequest
	if ok, err := bindAndValidate(c, &req, "Invalid bike input"); !ok {
		return err
	}

	bike, err := h.bikeUC.CreateBike(c.Request().Context(), session, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toBikeResponse(bike), "Bike created successfully")
}

// UpdateBike rewrites one of the owner's bikes.
func (h *BikeHandler) UpdateBike(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	bikeID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid bike ID")
	}

	var req BikeRequest
	if ok, err := bindAndValidate(c, &req, "Invalid bike input"); !ok {
		return err
	}

	bike, err := h.bikeUC.UpdateBike(c.Request().Context(), session, bikeID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBikeResponse(bike), "Bike updated successfully")
}

// DeleteBike removes one of the owner's bikes.
func (h *BikeHandler) DeleteBike(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	bikeID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid bike ID")
	}

	if err := h.bikeUC.DeleteBike(c.Request().Context(), session, bikeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Bike deleted successfully")
}

// BrowseMap returns the available bikes for the renter map.
// Query: type, min_price, max_price, lat, lng.
func (h *BikeHandler) BrowseMap(c echo.Context) error {
	req, err := bindMapQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid map query")
	}

	if err := c.Validate(req); err != nil {
		return response.ValidationError(c, err.Error())
	}

	query := &usecase.MapQuery{
		Type:      strings.TrimSpace(req.Type),
		MinPrice:  req.MinPrice,
		MaxPrice:  req.MaxPrice,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if strings.EqualFold(query.Type, allBikeTypes) {
		query.Type = ""
	}

	bikeMap, err := h.bikeUC.BrowseAvailable(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, bikeMap, "Available bikes retrieved successfully")
}

// bindMapQuery reads the optional map parameters. Absent numbers stay nil.
func bindMapQuery(c echo.Context) (*MapQueryRequest, error) {
	req := &MapQueryRequest{Type: c.QueryParam("type")}

	binder := echo.QueryParamsBinder(c)
	optionalFloat(c, binder, "min_price", &req.MinPrice)
	optionalFloat(c, binder, "max_price", &req.MaxPrice)
	optionalFloat(c, binder, "lat", &req.Latitude)
	optionalFloat(c, binder, "lng", &req.Longitude)

	if err := binder.BindError(); err != nil {
		return nil, errors.WithStack(err)
	}

	return req, nil
}

func optionalFloat(c echo.Context, binder *echo.ValueBinder, name string, dest **float64) {
	if c.QueryParam(name) == "" {
		return
	}

	var v float64
	binder.Float64(name, &v)
	*dest = &v
}
