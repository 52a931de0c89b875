package auth

import (
	"testing"
	"time"

	"storepulse/config"
	"storepulse/internal/domain/entity"
	"storepulse/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, ttl time.Duration) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: ttl}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	require.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	user := &entity.User{
		ID:    uuid.New(),
		Email: "john@example.com",
		Role:  entity.RoleStoreOwner,
	}

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, entity.RoleStoreOwner, claims.Role)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	token, err := svc.GenerateToken(&entity.User{ID: uuid.New(), Email: "a@example.com", Role: entity.RoleNormalUser})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuer := newTestTokenService(t, time.Hour)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "different-secret"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := issuer.GenerateToken(&entity.User{ID: uuid.New(), Email: "a@example.com", Role: entity.RoleNormalUser})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	// Config would clamp a non-positive TTL to the default, so build the
	// service directly to issue an already-expired token.
	svc := &jwtService{secret: "test-secret", accessTTL: -time.Minute}

	token, err := svc.GenerateToken(&entity.User{ID: uuid.New(), Email: "a@example.com", Role: entity.RoleNormalUser})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_DefaultDuration(t *testing.T) {
	svc := newTestTokenService(t, 0)

	assert.Equal(t, 2*time.Hour, svc.AccessTokenDuration())
}
