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
	"keygate/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// licenseServiceFixtures holds all test dependencies for license service tests.
type licenseServiceFixtures struct {
	service  usecase.LicenseUsecase
	userRepo *mockRepo.MockUserRepository
	codec    *mockSvc.MockLicenseCodec
	billing  *mockSvc.MockBillingService
	clock    *fakeClock
}

func createTestLicenseService(t *testing.T) licenseServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	codec := mockSvc.NewMockLicenseCodec(t)
	billing := mockSvc.NewMockBillingService(t)
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	svc := NewLicenseService(
		userRepo,
		codec,
		billing,
		clock,
		newDiscardLogger(),
	)

	return licenseServiceFixtures{
		service:  svc,
		userRepo: userRepo,
		codec:    codec,
		billing:  billing,
		clock:    clock,
	}
}

func TestLicenseService_Activate_Success(t *testing.T) {
	fx := createTestLicenseService(t)

	ctx := context.Background()
	input := &usecase.ActivateLicenseInput{UserID: 7, Plan: "pro"}
	expiresAt := fx.clock.now.Add(365 * 24 * time.Hour)
	expiresAtMillis := expiresAt.UnixMilli()

	fx.billing.EXPECT().CreateSubscription(ctx, input.UserID, input.Plan).Return("sub_abc", nil)
	fx.codec.EXPECT().ChaosCode(input.UserID, "sub_abc", expiresAtMillis).Return("Xy-Zq-Ab-Cd")
	fx.codec.EXPECT().
		Encode(entity.LicensePayload{
			UserID:         input.UserID,
			SubscriptionID: "sub_abc",
			ExpiresAt:      expiresAtMillis,
			ChaosCode:      "Xy-Zq-Ab-Cd",
		}).
		Return("payload.signature", nil)
	fx.userRepo.EXPECT().SetLicense(ctx, input.UserID, "payload.signature", expiresAt).Return(nil)

	output, err := fx.service.Activate(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "payload.signature", output.LicenseKey)
	assert.Equal(t, "sub_abc", output.SubscriptionID)
	assert.Equal(t, expiresAt, output.ExpiresAt)
}

func TestLicenseService_Activate_BillingDown(t *testing.T) {
	fx := createTestLicenseService(t)

	ctx := context.Background()
	input := &usecase.ActivateLicenseInput{UserID: 7, Plan: "pro"}

	fx.billing.EXPECT().
		CreateSubscription(ctx, input.UserID, input.Plan).
		Return("", errors.New("gateway timeout"))

	output, err := fx.service.Activate(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrBillingUnavailable)
}

func TestLicenseService_Validate_OfflineValid(t *testing.T) {
	fx := createTestLicenseService(t)

	ctx := context.Background()
	expiresAtMillis := fx.clock.now.Add(24 * time.Hour).UnixMilli()
	payload := &entity.LicensePayload{
		UserID:         7,
		SubscriptionID: "sub_abc",
		ExpiresAt:      expiresAtMillis,
		ChaosCode:      "Xy-Zq-Ab-Cd",
	}

	fx.codec.EXPECT().Decode("valid.key").Return(payload, nil)
	// No billing expectation: offline validation never leaves the process.

	result, err := fx.service.Validate(ctx, &usecase.ValidateLicenseInput{Key: "valid.key"})

	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.True(t, result.IsOffline)
	assert.Equal(t, int64(7), result.UserID)
	require.NotNil(t, result.ExpiresAt)
	assert.Equal(t, expiresAtMillis, result.ExpiresAt.UnixMilli())
}

func TestLicenseService_Validate_TamperedSignature(t *testing.T) {
	fx := createTestLicenseService(t)

	ctx := context.Background()

	fx.codec.EXPECT().Decode("tampered.key").Return(nil, service.ErrLicenseSignature)

	result, err := fx.service.Validate(ctx, &usecase.ValidateLicenseInput{Key: "tampered.key"})

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, entity.LicenseReasonBadSignature, result.Reason)
}

func TestLicenseService_Validate_MalformedKey(t *testing.T) {
	fx := createTestLicenseService(t)

	ctx := context.Background()

	fx.codec.EXPECT().Decode("not-a-key").Return(nil, service.ErrLicenseMalformed)

	result, err := fx.service.Validate(ctx, &usecase.ValidateLicenseInput{Key: "not-a-key"})

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, entity.LicenseReasonValidationFailed, result.Reason)
}

func TestLicenseService_Validate_Expired(t *testing.T) {
	fx := createTestLicenseService(t)

	ctx := context.Background()
	payload := &entity.LicensePayload{
		UserID:         7,
		SubscriptionID: "sub_abc",
		ExpiresAt:      fx.clock.now.Add(-time.Minute).UnixMilli(),
	}

	fx.codec.EXPECT().Decode("expired.key").Return(payload, nil)

	result, err := fx.service.Validate(ctx, &usecase.ValidateLicenseInput{Key: "expired.key"})

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, entity.LicenseReasonExpired, result.Reason)
}

func TestLicenseService_Validate_OnlineChecksBillingStatus(t *testing.T) {
	fx := createTestLicenseService(t)

	ctx := context.Background()
	payload := &entity.LicensePayload{
		UserID:         7,
		SubscriptionID: "sub_abc",
		ExpiresAt:      fx.clock.now.Add(24 * time.Hour).UnixMilli(),
	}

	fx.codec.EXPECT().Decode("valid.key").Return(payload, nil)
	fx.billing.EXPECT().GetSubscriptionStatus(ctx, "sub_abc").Return(entity.SubscriptionActive, nil)

	result, err := fx.service.Validate(ctx, &usecase.ValidateLicenseInput{Key: "valid.key", Online: true})

	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.False(t, result.IsOffline)
}

func TestLicenseService_Validate_OnlineInactiveSubscription(t *testing.T) {
	fx := createTestLicenseService(t)

	ctx := context.Background()
	payload := &entity.LicensePayload{
		UserID:         7,
		SubscriptionID: "sub_abc",
		ExpiresAt:      fx.clock.now.Add(24 * time.Hour).UnixMilli(),
	}

	fx.codec.EXPECT().Decode("valid.key").Return(payload, nil)
	fx.billing.EXPECT().GetSubscriptionStatus(ctx, "sub_abc").Return(entity.SubscriptionCanceled, nil)

	result, err := fx.service.Validate(ctx, &usecase.ValidateLicenseInput{Key: "valid.key", Online: true})

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, entity.LicenseReasonInactiveSubscription, result.Reason)
}

func TestLicenseService_Validate_OnlineBillingDown(t *testing.T) {
	fx := createTestLicenseService(t)

	ctx := context.Background()
	payload := &entity.LicensePayload{
		UserID:         7,
		SubscriptionID: "sub_abc",
		ExpiresAt:      fx.clock.now.Add(24 * time.Hour).UnixMilli(),
	}

	fx.codec.EXPECT().Decode("valid.key").Return(payload, nil)
	fx.billing.EXPECT().
		GetSubscriptionStatus(ctx, "sub_abc").
		Return(entity.SubscriptionStatus(""), errors.New("gateway timeout"))

	result, err := fx.service.Validate(ctx, &usecase.ValidateLicenseInput{Key: "valid.key", Online: true})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrBillingUnavailable)
}

func TestLicenseService_Revoke_Success(t *testing.T) {
	fx := createTestLicenseService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().ClearLicense(ctx, int64(7)).Return(nil)

	err := fx.service.Revoke(ctx, 7)

	require.NoError(t, err)
}
