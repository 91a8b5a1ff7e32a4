package impl

import (
	"context"
	"testing"
	"time"

	"bikeshare/internal/domain/entity"
	domainerrors "bikeshare/internal/domain/errors"
	"bikeshare/internal/domain/repository"
	mockRepo "bikeshare/internal/mocks/repository"
	mockSvc "bikeshare/internal/mocks/service"
	"bikeshare/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service  usecase.AuthUsecase
	identity *mockRepo.MockIdentityRepository
	tokens   *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	identity := mockRepo.NewMockIdentityRepository(t)
	tokens := mockSvc.NewMockTokenService(t)

	return authServiceFixtures{
		service:  NewAuthService(identity, tokens, discardLogger()),
		identity: identity,
		tokens:   tokens,
	}
}

func TestAuthService_Login_IssuesOwnerSession(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	expiresAt := baseTime.Add(12 * time.Hour)

	fx.identity.EXPECT().
		Login(ctx, "carla@example.com", "secret1").
		Return(&repository.Credentials{Token: "upstream", UserID: 8, IsOwner: true}, nil)
	fx.tokens.EXPECT().
		IssueToken(entity.Session{UserID: 8, Role: entity.RoleOwner}).
		Return("signed", expiresAt, nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: " Carla@Example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, &usecase.LoginOutput{Token: "signed", ExpiresAt: expiresAt, UserID: 8, Role: entity.RoleOwner}, out)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.identity.EXPECT().Login(ctx, "ana@example.com", "bad").Return(nil, repository.ErrInvalidCredentials)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "bad"})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_TokenFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.identity.EXPECT().Login(ctx, "ana@example.com", "pw").Return(&repository.Credentials{UserID: 42}, nil)
	fx.tokens.EXPECT().IssueToken(entity.Session{UserID: 42, Role: entity.RoleRenter}).Return("", time.Time{}, errors.New("no key"))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "pw"})

	assert.ErrorContains(t, err, "failed to issue session token")
}

func TestAuthService_Register(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.identity.EXPECT().
		Register(ctx, &repository.RegisterInput{FullName: "Ana Torres", Email: "ana@example.com", Password: "secret1"}).
		Return(nil)

	err := fx.service.Register(ctx, &usecase.RegisterInput{FullName: " Ana Torres ", Email: "ANA@example.com", Password: "secret1"})

	require.NoError(t, err)
}

func TestAuthService_ResetPassword_Rejected(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.identity.EXPECT().ForceResetPassword(ctx, "ana@example.com", "newpass").Return(repository.ErrInvalidCredentials)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{Email: "ana@example.com", NewPassword: "newpass"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
