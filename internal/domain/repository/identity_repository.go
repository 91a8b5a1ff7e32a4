package repository

import (
	"context"
	"errors"

	"bikeshare/internal/domain/entity"
)

var (
	// ErrProfileNotFound is returned when the user has no profile.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInvalidCredentials is returned when the marketplace rejects a login or password change.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Credentials is the identity confirmed by a successful login.
type Credentials struct {
	Token   string // Upstream token, not forwarded to gateway clients.
	UserID  int64
	IsOwner bool
}

// RegisterInput is a new account request.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
	IsOwner  bool
}

// RenterProfileInput carries the editable renter fields.
type RenterProfileInput struct {
	FullName  string
	Phone     string
	Address   string
	AvatarURL string
}

// OwnerProfileInput carries the editable owner fields.
type OwnerProfileInput struct {
	FullName          string
	Phone             string
	PublicBio         string
	AvatarURL         string
	PayoutEmail       string
	BankAccountNumber string
	YapePhoneNumber   string
}

// IdentityRepository defines the account and profile capabilities of the marketplace.
type IdentityRepository interface {
	Login(ctx context.Context, email, password string) (*Credentials, error)
	Register(ctx context.Context, input *RegisterInput) error
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error
	ForceResetPassword(ctx context.Context, email, newPassword string) error

	// GetProfile retrieves the profile of the account userID.
	GetProfile(ctx context.Context, userID int64) (*entity.Profile, error)

	UpdateRenterProfile(ctx context.Context, profileID int64, input *RenterProfileInput) (*entity.Profile, error)
	UpdateOwnerProfile(ctx context.Context, profileID int64, input *OwnerProfileInput) (*entity.Profile, error)
}
