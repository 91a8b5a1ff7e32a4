package service

import (
	"time"

	"bikeshare/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims of a gateway session token.
type Claims struct {
	Role entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueToken signs a session token for the given identity.
	IssueToken(session entity.Session) (token string, expiresAt time.Time, err error)

	// ValidateToken checks a token string and returns the session it carries.
	ValidateToken(tokenString string) (entity.Session, error)
}
