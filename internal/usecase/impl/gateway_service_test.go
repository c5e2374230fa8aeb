package impl

import (
	"context"
	"testing"
	"time"

	"keygate/internal/domain/entity"
	domainerrors "keygate/internal/domain/errors"
	"keygate/internal/domain/service"
	mockRepo "keygate/internal/mocks/repository"
	mockSvc "keygate/internal/mocks/service"
	mockUC "keygate/internal/mocks/usecase"
	"keygate/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatewayServiceFixtures holds all test dependencies for gateway tests.
type gatewayServiceFixtures struct {
	service        usecase.GatewayUsecase
	licenseUsecase *mockUC.MockLicenseUsecase
	tokenService   *mockSvc.MockTokenService
	revocationRepo *mockRepo.MockRevocationRepository
}

func createTestGatewayService(t *testing.T) gatewayServiceFixtures {
	licenseUsecase := mockUC.NewMockLicenseUsecase(t)
	tokenService := mockSvc.NewMockTokenService(t)
	revocationRepo := mockRepo.NewMockRevocationRepository(t)

	svc := NewGatewayService(
		licenseUsecase,
		tokenService,
		revocationRepo,
		newDiscardLogger(),
	)

	return gatewayServiceFixtures{
		service:        svc,
		licenseUsecase: licenseUsecase,
		tokenService:   tokenService,
		revocationRepo: revocationRepo,
	}
}

func TestGatewayService_Authenticate_ValidBearerToken(t *testing.T) {
	fx := createTestGatewayService(t)

	ctx := context.Background()
	token := "access_token"

	fx.revocationRepo.EXPECT().IsRevoked(ctx, token).Return(false, nil)
	fx.tokenService.EXPECT().
		ParseToken(token).
		Return(&service.Claims{UserID: 7, Role: entity.RoleAdmin, Type: "access"}, nil)

	principal, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{BearerToken: token})

	require.NoError(t, err)
	assert.Equal(t, int64(7), principal.UserID)
	assert.Equal(t, entity.RoleAdmin, principal.Role)
}

func TestGatewayService_Authenticate_MissingTokenShortCircuits(t *testing.T) {
	fx := createTestGatewayService(t)

	ctx := context.Background()

	// No IsRevoked expectation: an empty token must reject before the
	// registry is consulted, even if the registry is down.
	principal, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{})

	require.Error(t, err)
	assert.Nil(t, principal)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestGatewayService_Authenticate_RevokedToken(t *testing.T) {
	fx := createTestGatewayService(t)

	ctx := context.Background()
	token := "revoked_token"

	fx.revocationRepo.EXPECT().IsRevoked(ctx, token).Return(true, nil)

	principal, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{BearerToken: token})

	require.Error(t, err)
	assert.Nil(t, principal)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestGatewayService_Authenticate_RegistryUnavailableFailsClosed(t *testing.T) {
	fx := createTestGatewayService(t)

	ctx := context.Background()
	token := "access_token"

	fx.revocationRepo.EXPECT().
		IsRevoked(ctx, token).
		Return(false, errors.New("connection refused"))

	principal, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{BearerToken: token})

	require.Error(t, err)
	assert.Nil(t, principal)
	assert.ErrorIs(t, err, domainerrors.ErrRevocationUnavailable)
}

func TestGatewayService_Authenticate_RefreshTokenRejectedForAccess(t *testing.T) {
	fx := createTestGatewayService(t)

	ctx := context.Background()
	token := "refresh_token"

	fx.revocationRepo.EXPECT().IsRevoked(ctx, token).Return(false, nil)
	fx.tokenService.EXPECT().
		ParseToken(token).
		Return(&service.Claims{UserID: 7, Type: "refresh"}, nil)

	principal, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{BearerToken: token})

	require.Error(t, err)
	assert.Nil(t, principal)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestGatewayService_Authenticate_LicenseKeyTakesPrecedence(t *testing.T) {
	fx := createTestGatewayService(t)

	ctx := context.Background()
	expiresAt := time.Now().Add(24 * time.Hour)

	// Only the license path may run; any token or registry call would fail
	// the unexpected-call check.
	fx.licenseUsecase.EXPECT().
		Validate(ctx, &usecase.ValidateLicenseInput{Key: "valid.key"}).
		Return(&entity.LicenseValidationResult{
			Valid:     true,
			UserID:    7,
			ExpiresAt: &expiresAt,
			IsOffline: true,
		}, nil)

	principal, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{
		LicenseKey:  "valid.key",
		BearerToken: "some_access_token",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), principal.UserID)
	assert.Equal(t, entity.RoleUser, principal.Role)
}

func TestGatewayService_Authenticate_InvalidLicenseNotSavedByBearerToken(t *testing.T) {
	fx := createTestGatewayService(t)

	ctx := context.Background()

	fx.licenseUsecase.EXPECT().
		Validate(ctx, &usecase.ValidateLicenseInput{Key: "expired.key"}).
		Return(&entity.LicenseValidationResult{
			Valid:     false,
			Reason:    entity.LicenseReasonExpired,
			IsOffline: true,
		}, nil)

	principal, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{
		LicenseKey:  "expired.key",
		BearerToken: "valid_access_token",
	})

	require.Error(t, err)
	assert.Nil(t, principal)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LICENSE_REJECTED", appErr.ErrorCode())
	assert.Equal(t, entity.LicenseReasonExpired, appErr.Details())
}
