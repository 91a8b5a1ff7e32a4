package marketplace

import (
	"context"
	"net/http"
	"strconv"

	"bikeshare/internal/domain/entity"
	"bikeshare/internal/domain/repository"

	"github.com/pkg/errors"
)

type identityRepository struct {
	client *Client
}

// NewIdentityRepository creates the account and profile adapter.
func NewIdentityRepository(client *Client) repository.IdentityRepository {
	return &identityRepository{client: client}
}

func (r *identityRepository) Login(ctx context.Context, email, password string) (*repository.Credentials, error) {
	var payload loginPayload
	req := call{op: "login", method: http.MethodPost, path: "/api/auth/login", body: &loginRequest{Email: email, Password: password}}
	if err := r.client.do(ctx, req, &payload); err != nil {
		return nil, credentialsError(err)
	}

	return &repository.Credentials{
		Token:   payload.Token,
		UserID:  payload.UserID,
		IsOwner: payload.IsOwner,
	}, nil
}

func (r *identityRepository) Register(ctx context.Context, input *repository.RegisterInput) error {
	body := &registerRequest{
		FullName: input.FullName,
		Email:    input.Email,
		Password: input.Password,
		IsOwner:  input.IsOwner,
	}

	return r.client.do(ctx, call{op: "register", method: http.MethodPost, path: "/api/auth/register", body: body}, nil)
}

func (r *identityRepository) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	req := call{
		op:     "change password",
		method: http.MethodPut,
		path:   "/api/auth/change-password/" + strconv.FormatInt(userID, 10),
		body:   &changePasswordRequest{CurrentPassword: currentPassword, NewPassword: newPassword},
	}

	return credentialsError(r.client.do(ctx, req, nil))
}

func (r *identityRepository) ForceResetPassword(ctx context.Context, email, newPassword string) error {
	req := call{
		op:     "force reset password",
		method: http.MethodPost,
		path:   "/api/auth/force-reset-password",
		body:   &resetPasswordRequest{Email: email, NewPassword: newPassword},
	}

	return credentialsError(r.client.do(ctx, req, nil))
}

func (r *identityRepository) GetProfile(ctx context.Context, userID int64) (*entity.Profile, error) {
	var payload profilePayload
	req := call{op: "get profile", method: http.MethodGet, path: "/api/profiles/user/" + strconv.FormatInt(userID, 10)}
	if err := r.client.do(ctx, req, &payload); err != nil {
		return nil, profileError(err)
	}

	return payload.toEntity(), nil
}

func (r *identityRepository) UpdateRenterProfile(ctx context.Context, profileID int64, input *repository.RenterProfileInput) (*entity.Profile, error) {
	req := call{
		op:     "update renter profile",
		method: http.MethodPut,
		path:   "/api/profiles/renter/" + strconv.FormatInt(profileID, 10),
		body: &renterProfileRequest{
			FullName:  input.FullName,
			Phone:     input.Phone,
			Address:   input.Address,
			AvatarURL: input.AvatarURL,
		},
	}

	var payload profilePayload
	if err := r.client.do(ctx, req, &payload); err != nil {
		return nil, profileError(err)
	}

	return payload.toEntity(), nil
}

func (r *identityRepository) UpdateOwnerProfile(ctx context.Context, profileID int64, input *repository.OwnerProfileInput) (*entity.Profile, error) {
	req := call{
		op:     "update owner profile",
		method: http.MethodPut,
		path:   "/api/profiles/owner/" + strconv.FormatInt(profileID, 10),
		body: &ownerProfileRequest{
			FullName:          input.FullName,
			Phone:             input.Phone,
			PublicBio:         input.PublicBio,
			AvatarURL:         input.AvatarURL,
			PayoutEmail:       input.PayoutEmail,
			BankAccountNumber: input.BankAccountNumber,
			YapePhoneNumber:   input.YapePhoneNumber,
		},
	}

	var payload profilePayload
	if err := r.client.do(ctx, req, &payload); err != nil {
		return nil, profileError(err)
	}

	return payload.toEntity(), nil
}

func profileError(err error) error {
	if hasStatus(err, http.StatusNotFound) {
		return errors.WithStack(repository.ErrProfileNotFound)
	}

	return err
}

func credentialsError(err error) error {
	if hasStatus(err, http.StatusBadRequest, http.StatusUnauthorized) {
		return errors.WithStack(repository.ErrInvalidCredentials)
	}

	return err
}
