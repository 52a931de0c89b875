package middleware

import (
	"strings"

	"storepulse/internal/domain/entity"
	domainerrors "storepulse/internal/domain/errors"
	"storepulse/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// TokenCookieName is the cookie the login handler sets and browsers send
// back on subsequent requests. The Authorization header takes precedence.
const TokenCookieName = "token"

const claimsContextKey = "authClaims"

// AuthMiddleware provides middleware for JWT authentication and role gates.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token from the Authorization header or
// the token cookie and stores the typed claims on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := extractToken(c)
		if err != nil {
			return err
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrTokenInvalid
		}

		c.Set(claimsContextKey, claims)

		return next(c)
	}
}

// RequireRoles gates a route group to the given roles. It must run after
// Authenticate.
func (m *AuthMiddleware) RequireRoles(required ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := GetClaims(c)
			if err != nil {
				return err
			}

			if err := service.Authorize(claims.Role, required...); err != nil {
				return err
			}

			return next(c)
		}
	}
}

// GetClaims returns the claims Authenticate stored for the current request.
func GetClaims(c echo.Context) (*service.Claims, error) {
	claims, ok := c.Get(claimsContextKey).(*service.Claims)
	if !ok || claims == nil {
		return nil, domainerrors.ErrTokenMissing
	}

	return claims, nil
}

func extractToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return "", domainerrors.ErrTokenInvalid.WithMessage("Invalid token format, must be Bearer token")
		}

		return tokenString, nil
	}

	cookie, err := c.Cookie(TokenCookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	return "", domainerrors.ErrTokenMissing
}
