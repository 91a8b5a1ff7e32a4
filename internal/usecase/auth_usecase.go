package usecase

import (
	"context"
	"time"

	"bikeshare/internal/domain/entity"
)

// AuthUsecase defines account access: login, registration and password reset.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Register(ctx context.Context, input *RegisterInput) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}

// --- Input DTOs ---

// LoginInput defines the credentials of a login request.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput defines the data required to open an account.
type RegisterInput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsOwner  bool   `json:"is_owner"`
}

// ResetPasswordInput defines the data required to force a password reset.
type ResetPasswordInput struct {
	Email       string `json:"email"`
	NewPassword string `json:"new_password"`
}

// --- Output DTOs ---

// LoginOutput is the gateway session issued on login.
type LoginOutput struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	UserID    int64       `json:"user_id"`
	Role      entity.Role `json:"role"`
}
