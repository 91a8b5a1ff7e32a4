package usecase

import (
	"context"

	"bikeshare/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, session entity.Session) (*entity.Profile, error)
	UpdateRenterProfile(ctx context.Context, session entity.Session, input *UpdateRenterProfileInput) (*entity.Profile, error)
	UpdateOwnerProfile(ctx context.Context, session entity.Session, input *UpdateOwnerProfileInput) (*entity.Profile, error)
	ChangePassword(ctx context.Context, session entity.Session, input *ChangePasswordInput) error
}

// --- Input DTOs ---

// UpdateRenterProfileInput defines the editable renter profile fields.
type UpdateRenterProfileInput struct {
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	AvatarURL string `json:"avatar_url"`
}

// UpdateOwnerProfileInput defines the editable owner profile and payout fields.
type UpdateOwnerProfileInput struct {
	FullName          string `json:"full_name"`
	Phone             string `json:"phone"`
	PublicBio         string `json:"public_bio"`
	AvatarURL         string `json:"avatar_url"`
	PayoutEmail       string `json:"payout_email"`
	BankAccountNumber string `json:"bank_account_number"`
	YapePhoneNumber   string `json:"yape_phone_number"`
}

// ChangePasswordInput defines the data required to change the password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
