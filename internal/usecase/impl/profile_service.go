package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "bikeshare/internal/delivery/context"
	"bikeshare/internal/domain/entity"
	"bikeshare/internal/domain/repository"
	"bikeshare/internal/usecase"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	identity repository.IdentityRepository
	logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(identity repository.IdentityRepository, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		identity: identity,
		logger:   logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the caller's profile.
func (srv *profileService) GetProfile(ctx context.Context, session entity.Session) (*entity.Profile, error) {
	profile, err := srv.identity.GetProfile(ctx, session.UserID)
	if err != nil {
		return nil, translateProfileError(err)
	}

	return profile, nil
}

// UpdateRenterProfile rewrites the caller's renter profile.
func (srv *profileService) UpdateRenterProfile(
	ctx context.Context,
	session entity.Session,
	input *usecase.UpdateRenterProfileInput,
) (*entity.Profile, error) {
	current, err := srv.GetProfile(ctx, session)
	if err != nil {
		return nil, err
	}

	updated, err := srv.identity.UpdateRenterProfile(ctx, current.ID, &repository.RenterProfileInput{
		FullName:  strings.TrimSpace(input.FullName),
		Phone:     strings.TrimSpace(input.Phone),
		Address:   strings.TrimSpace(input.Address),
		AvatarURL: strings.TrimSpace(input.AvatarURL),
	})
	if err != nil {
		return nil, translateProfileError(err)
	}

	srv.log(ctx).Info("Renter profile updated", slog.Int64("user_id", session.UserID))

	return updated, nil
}

// UpdateOwnerProfile rewrites the caller's owner profile, payout details included.
func (srv *profileService) UpdateOwnerProfile(
	ctx context.Context,
	session entity.Session,
	input *usecase.UpdateOwnerProfileInput,
) (*entity.Profile, error) {
	current, err := srv.GetProfile(ctx, session)
	if err != nil {
		return nil, err
	}

	updated, err := srv.identity.UpdateOwnerProfile(ctx, current.ID, &repository.OwnerProfileInput{
		FullName:          strings.TrimSpace(input.FullName),
		Phone:             strings.TrimSpace(input.Phone),
		PublicBio:         strings.TrimSpace(input.PublicBio),
		AvatarURL:         strings.TrimSpace(input.AvatarURL),
		PayoutEmail:       strings.TrimSpace(input.PayoutEmail),
		BankAccountNumber: strings.TrimSpace(input.BankAccountNumber),
		YapePhoneNumber:   strings.TrimSpace(input.YapePhoneNumber),
	})
	if err != nil {
		return nil, translateProfileError(err)
	}

	srv.log(ctx).Info("Owner profile updated", slog.Int64("user_id", session.UserID))

	return updated, nil
}

// ChangePassword replaces the caller's password after the marketplace checks the current one.
func (srv *profileService) ChangePassword(ctx context.Context, session entity.Session, input *usecase.ChangePasswordInput) error {
	if err := srv.identity.ChangePassword(ctx, session.UserID, input.CurrentPassword, input.NewPassword); err != nil {
		srv.log(ctx).Warn("Password change rejected", slog.Int64("user_id", session.UserID), slog.Any("error", err))

		return translateCredentialsError(err)
	}

	return nil
}
