package auth

import (
	"testing"
	"time"

	"bikeshare/config"
	"bikeshare/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	return &config.Config{
		Session: &config.SessionConfig{Secret: secret, TTL: ttl},
	}
}

func TestJWTService_IssueAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_session_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	session := entity.Session{UserID: 42, Role: entity.RoleOwner}

	token, expiresAt, err := jwtService.IssueToken(session)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	got, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)

	_, err = NewJWTService(newTestConfig("", time.Hour))
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_session_secret", time.Hour))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken("invalid.token.string")
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuerSvc, err := NewJWTService(newTestConfig("secret-one", time.Hour))
	require.NoError(t, err)
	verifierSvc, err := NewJWTService(newTestConfig("secret-two", time.Hour))
	require.NoError(t, err)

	token, _, err := issuerSvc.IssueToken(entity.Session{UserID: 1, Role: entity.RoleRenter})
	require.NoError(t, err)

	_, err = verifierSvc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := &jwtService{
		secret: []byte("test_session_secret"),
		ttl:    time.Minute,
		now:    func() time.Time { return time.Now().Add(-2 * time.Hour) },
	}

	token, _, err := svc.IssueToken(entity.Session{UserID: 7, Role: entity.RoleRenter})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsUnknownRole(t *testing.T) {
	secret := []byte("test_session_secret")
	svc := &jwtService{secret: secret, ttl: time.Hour, now: time.Now}

	claims := jwt.MapClaims{
		"iss":  issuer,
		"sub":  "9",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsOtherSigningMethod(t *testing.T) {
	svc := &jwtService{secret: []byte("test_session_secret"), ttl: time.Hour, now: time.Now}

	claims := jwt.MapClaims{"iss": issuer, "sub": "9", "role": "owner", "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
