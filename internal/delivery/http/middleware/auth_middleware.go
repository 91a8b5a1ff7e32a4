package middleware

import (
	"strings"

	deliverycontext "bikeshare/internal/delivery/context"
	"bikeshare/internal/delivery/http/response"
	"bikeshare/internal/domain/entity"
	"bikeshare/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for session authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer session token and stores the session on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		session, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "SESSION_INVALID", "Invalid or expired token")
		}

		deliverycontext.SetSession(c, session)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the session acts on the given side.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := deliverycontext.GetSession(c)
			if !ok {
				return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
			}

			if session.Role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+string(requiredRole)+"' role")
			}

			return next(c)
		}
	}
}
