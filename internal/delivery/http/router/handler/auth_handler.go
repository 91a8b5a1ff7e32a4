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

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves the public account endpoints.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest represents the request body for registration
type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	IsOwner  bool   `json:"is_owner"`
}

// ResetPasswordRequest represents the request body for a forced password reset
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// Login exchanges marketplace credentials for a gateway session token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bindAndValidate(c, &req, "Invalid login input"); !ok {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Register opens a marketplace account.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if ok, err := bindAndValidate(c, &req, "Invalid registration input"); !ok {
		return err
	}

	err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		IsOwner:  req.IsOwner,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Account created successfully")
}

// ResetPassword sets a new password for the account of an email.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if ok, err := bindAndValidate(c, &req, "Invalid password reset input"); !ok {
		return err
	}

	err := h.authUC.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Email:       req.Email,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset successfully")
}
