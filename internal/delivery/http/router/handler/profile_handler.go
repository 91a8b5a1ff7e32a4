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

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the caller's own profile and password.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UpdateRenterProfileRequest represents the request body for a renter profile update
type UpdateRenterProfileRequest struct {
	FullName  string `json:"full_name" validate:"required,max=120"`
	Phone     string `json:"phone" validate:"omitempty,max=30"`
	Address   string `json:"address" validate:"omitempty,max=255"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

// UpdateOwnerProfileRequest represents the request body for an owner profile update
type UpdateOwnerProfileRequest struct {
	FullName          string `json:"full_name" validate:"required,max=120"`
	Phone             string `json:"phone" validate:"omitempty,max=30"`
	PublicBio         string `json:"public_bio" validate:"omitempty,max=500"`
	AvatarURL         string `json:"avatar_url" validate:"omitempty,url"`
	PayoutEmail       string `json:"payout_email" validate:"omitempty,email"`
	BankAccountNumber string `json:"bank_account_number" validate:"omitempty,max=34"`
	YapePhoneNumber   string `json:"yape_phone_number" validate:"omitempty,max=15"`
}

// ChangePasswordRequest represents the request body for a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6,nefield=CurrentPassword"`
}

// GetProfile returns the caller's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile), "Profile retrieved successfully")
}

// UpdateProfile applies the renter or owner form depending on the caller's side.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	if session.IsOwner() {
		return h.updateOwnerProfile(c, session)
	}

	return h.updateRenterProfile(c, session)
}

func (h *ProfileHandler) updateRenterProfile(c echo.Context, session entity.Session) error {
	var req UpdateRenterProfileRequest
	if ok, err := bindAndValidate(c, &req, "Invalid profile input"); !ok {
		return err
	}

	profile, err := h.profileUC.UpdateRenterProfile(c.Request().Context(), session, &usecase.UpdateRenterProfileInput{
		FullName:  req.FullName,
		Phone:     req.Phone,
		Address:   req.Address,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile), "Profile updated successfully")
}

func (h *ProfileHandler) updateOwnerProfile(c echo.Context, session entity.Session) error {
	var req UpdateOwnerProfileRequest
	if ok, err := bindAndValidate(c, &req, "Invalid profile input"); !ok {
		return err
	}

	profile, err := h.profileUC.UpdateOwnerProfile(c.Request().Context(), session, &usecase.UpdateOwnerProfileInput{
		FullName:          req.FullName,
		Phone:             req.Phone,
		PublicBio:         req.PublicBio,
		AvatarURL:         req.AvatarURL,
		PayoutEmail:       req.PayoutEmail,
		BankAccountNumber: req.BankAccountNumber,
		YapePhoneNumber:   req.YapePhoneNumber,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile), "Profile updated successfully")
}

// ChangePassword replaces the caller's password.
func (h *ProfileHandler) ChangePassword(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	var req ChangePasswordRequest
	if ok, err := bindAndValidate(c, &req, "Invalid password input"); !ok {
		return err
	}

	err = h.profileUC.ChangePassword(c.Request().Context(), session, &usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}
