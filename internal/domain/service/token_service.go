package service

import (
	"time"

	"storepulse/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the explicit payload embedded in an access token.
type Claims struct {
	UserID uuid.UUID   `json:"-"`
	Email  string      `json:"email"`
	Role   entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for the given user.
	GenerateToken(user *entity.User) (string, error)

	// ValidateToken checks signature and expiry and yields the typed claims.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration is the single authoritative session lifetime, used
	// for both the token expiry and the cookie Max-Age.
	AccessTokenDuration() time.Duration
}
