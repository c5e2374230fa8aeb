package auth

import (
	"testing"
	"time"

	"keygate/internal/domain/entity"
	"keygate/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) (service.TokenService, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	svc, err := NewJWTService(newTestAuthConfig(), clock)
	require.NoError(t, err)

	return svc, clock
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	cfg := newTestAuthConfig()
	cfg.SecretKey.Token = ""

	svc, err := NewJWTService(cfg, &fakeClock{now: time.Now()})

	require.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc, _ := newTestJWTService(t)

	token, err := svc.GenerateAccessToken(entity.Principal{UserID: 42, Role: entity.RoleAdmin})
	require.NoError(t, err)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, "access", claims.Type)
}

func TestJWTService_RefreshTokenCarriesNoRole(t *testing.T) {
	svc, _ := newTestJWTService(t)

	token, err := svc.GenerateRefreshToken(42)
	require.NoError(t, err)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Empty(t, claims.Role)
	assert.Equal(t, "refresh", claims.Type)
}

func TestJWTService_ExpiredTokenRejected(t *testing.T) {
	svc, clock := newTestJWTService(t)

	token, err := svc.GenerateAccessToken(entity.Principal{UserID: 42, Role: entity.RoleUser})
	require.NoError(t, err)

	clock.Advance(16 * time.Minute)

	claims, err := svc.ParseToken(token)
	require.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_TamperedSignatureRejected(t *testing.T) {
	otherCfg := newTestAuthConfig()
	otherCfg.SecretKey.Token = "a-different-secret"
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	other, err := NewJWTService(otherCfg, clock)
	require.NoError(t, err)

	token, err := other.GenerateAccessToken(entity.Principal{UserID: 42, Role: entity.RoleUser})
	require.NoError(t, err)

	svc, _ := newTestJWTService(t)

	claims, err := svc.ParseToken(token)
	require.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenSignature)
}

func TestJWTService_GarbageTokenRejected(t *testing.T) {
	svc, _ := newTestJWTService(t)

	claims, err := svc.ParseToken("not.a.token")
	require.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenMalformed)
}

func TestJWTService_RemainingLifetime(t *testing.T) {
	svc, _ := newTestJWTService(t)

	token, err := svc.GenerateAccessToken(entity.Principal{UserID: 42, Role: entity.RoleUser})
	require.NoError(t, err)

	remaining := svc.RemainingLifetime(token)
	assert.InDelta(t, (15 * time.Minute).Seconds(), remaining.Seconds(), 1)
}

func TestJWTService_RemainingLifetimeFallsBackForGarbage(t *testing.T) {
	svc, _ := newTestJWTService(t)

	remaining := svc.RemainingLifetime("garbage")
	assert.Equal(t, 7*24*time.Hour, remaining)
}

func TestJWTService_RemainingLifetimeFallsBackForExpired(t *testing.T) {
	svc, clock := newTestJWTService(t)

	token, err := svc.GenerateAccessToken(entity.Principal{UserID: 42, Role: entity.RoleUser})
	require.NoError(t, err)

	clock.Advance(time.Hour)

	remaining := svc.RemainingLifetime(token)
	assert.Equal(t, 7*24*time.Hour, remaining)
}
