package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "bikeshare/internal/delivery/context"
	"bikeshare/internal/domain/entity"
	"bikeshare/internal/domain/repository"
	"bikeshare/internal/domain/service"
	"bikeshare/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	identity repository.IdentityRepository
	tokens   service.TokenService
	logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(identity repository.IdentityRepository, tokens service.TokenService, logger *slog.Logger) usecase.AuthUsecase {
	return &authService{
		identity: identity,
		tokens:   tokens,
		logger:   logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks the credentials with the marketplace and issues a gateway session token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	credentials, err := srv.identity.Login(ctx, normalizeEmail(input.Email), input.Password)
	if err != nil {
		return nil, translateCredentialsError(err)
	}

	session := entity.Session{
		UserID: credentials.UserID,
		Role:   entity.RoleFor(credentials.IsOwner),
	}

	token, expiresAt, err := srv.tokens.IssueToken(session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Info("User logged in",
		slog.Int64("user_id", session.UserID),
		slog.String("role", string(session.Role)),
	)

	return &usecase.LoginOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    session.UserID,
		Role:      session.Role,
	}, nil
}

// Register opens a marketplace account.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	err := srv.identity.Register(ctx, &repository.RegisterInput{
		FullName: strings.TrimSpace(input.FullName),
		Email:    normalizeEmail(input.Email),
		Password: input.Password,
		IsOwner:  input.IsOwner,
	})
	if err != nil {
		return errors.Wrap(err, "failed to register account")
	}

	srv.log(ctx).Info("Account registered", slog.Bool("is_owner", input.IsOwner))

	return nil
}

// ResetPassword forces a new password for the account of the given email.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if err := srv.identity.ForceResetPassword(ctx, normalizeEmail(input.Email), input.NewPassword); err != nil {
		return translateCredentialsError(err)
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
