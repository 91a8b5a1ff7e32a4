// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"bikeshare/config"
	"bikeshare/internal/domain/entity"
	"bikeshare/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const issuer = "bikeshare-gateway"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for session tokens.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Session == nil || cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.Session.Secret),
		ttl:    cfg.Session.TTL,
		now:    time.Now,
	}, nil
}

// IssueToken signs an HS256 token whose subject is the user id.
func (s *jwtService) IssueToken(session entity.Session) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := service.Claims{
		Role: session.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(session.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign session token")
	}

	return token, expiresAt, nil
}

// ValidateToken checks the signature, expiry and claims of a session token.
func (s *jwtService) ValidateToken(tokenString string) (entity.Session, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return entity.Session{}, errors.Wrap(err, "parse session token")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return entity.Session{}, errors.Errorf("invalid subject %q", claims.Subject)
	}

	if claims.Role != entity.RoleOwner && claims.Role != entity.RoleRenter {
		return entity.Session{}, errors.Errorf("invalid role %q", claims.Role)
	}

	return entity.Session{UserID: userID, Role: claims.Role}, nil
}
