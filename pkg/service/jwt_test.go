package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "property-control/pkg/errors"
)

func newTestJWTService() JWTService {
	return NewJWTService("test-secret", time.Minute, time.Hour, zap.NewNop())
}

func TestGenerateTokens(t *testing.T) {
	svc := newTestJWTService()

	pair, err := svc.GenerateTokens(42, "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEmpty(t, pair.RefreshTokenID)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
}

func TestValidateToken_AccessClaims(t *testing.T) {
	svc := newTestJWTService()
	pair, err := svc.GenerateTokens(42, "admin")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.False(t, claims.IsRefreshToken)
}

func TestValidateToken_RefreshClaims(t *testing.T) {
	svc := newTestJWTService()
	pair, err := svc.GenerateTokens(42, "user")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.True(t, claims.IsRefreshToken)
	// jti refresh-токена совпадает с идентификатором из пары
	assert.Equal(t, pair.RefreshTokenID, claims.ID)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestJWTService()

	_, err := svc.ValidateToken("не.настоящий.токен")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newTestJWTService()
	pair, err := svc.GenerateTokens(42, "user")
	require.NoError(t, err)

	other := NewJWTService("другой-секрет", time.Minute, time.Hour, zap.NewNop())
	_, err = other.ValidateToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	expired := NewJWTService("test-secret", -time.Minute, -time.Minute, zap.NewNop())
	pair, err := expired.GenerateTokens(42, "user")
	require.NoError(t, err)

	_, err = expired.ValidateToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestTokenTTLs(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute, time.Hour, zap.NewNop())
	assert.Equal(t, time.Minute, svc.GetAccessTokenTTL())
	assert.Equal(t, time.Hour, svc.GetRefreshTokenTTL())
}
