package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "keygate/internal/delivery/context"
	"keygate/internal/domain/entity"
	domainerrors "keygate/internal/domain/errors"
	"keygate/internal/domain/repository"
	"keygate/internal/domain/service"
	"keygate/internal/usecase"

	"github.com/pkg/errors"
)

// defaultLicenseLifetime is used when a subscription is activated without an
// explicit expiry.
const defaultLicenseLifetime = 365 * 24 * time.Hour

// licenseService implements the LicenseUsecase interface.
type licenseService struct {
	userRepo repository.UserRepository
	codec    service.LicenseCodec
	billing  service.BillingService
	clock    service.Clock
	logger   *slog.Logger
}

// NewLicenseService is the constructor for licenseService.
func NewLicenseService(
	userRepo repository.UserRepository,
	codec service.LicenseCodec,
	billing service.BillingService,
	clock service.Clock,
	logger *slog.Logger,
) usecase.LicenseUsecase {
	return &licenseService{
		userRepo: userRepo,
		codec:    codec,
		billing:  billing,
		clock:    clock,
		logger:   logger,
	}
}

func (srv *licenseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Activate creates a billing subscription, issues a license key for it, and
// persists the key on the user record.
func (srv *licenseService) Activate(ctx context.Context, input *usecase.ActivateLicenseInput) (*usecase.ActivateLicenseOutput, error) {
	srv.log(ctx).Debug("Activating license", slog.Int64("userID", input.UserID), slog.String("plan", input.Plan))

	subscriptionID, err := srv.billing.CreateSubscription(ctx, input.UserID, input.Plan)
	if err != nil {
		srv.log(ctx).Error("Failed to create billing subscription", slog.Int64("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrBillingUnavailable, "license activation failed")
	}

	expiresAt := srv.clock.Now().Add(defaultLicenseLifetime)

	key, err := srv.Generate(ctx, &usecase.GenerateLicenseInput{
		UserID:         input.UserID,
		SubscriptionID: subscriptionID,
		ExpiresAt:      expiresAt,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate license during activation")
	}

	if err := srv.userRepo.SetLicense(ctx, input.UserID, key, expiresAt); err != nil {
		srv.log(ctx).Error("Failed to persist license", slog.Int64("userID", input.UserID), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "license activation failed")
		}

		return nil, errors.Wrap(err, "failed to persist license during activation")
	}

	srv.log(ctx).Info("License activated",
		slog.Int64("userID", input.UserID),
		slog.String("subscriptionID", subscriptionID),
		slog.Time("expiresAt", expiresAt),
	)

	return &usecase.ActivateLicenseOutput{
		LicenseKey:     key,
		SubscriptionID: subscriptionID,
		ExpiresAt:      expiresAt,
	}, nil
}

// Generate produces a signed license key. Pure aside from the codec's
// secret; no store or billing I/O.
func (srv *licenseService) Generate(ctx context.Context, input *usecase.GenerateLicenseInput) (string, error) {
	expiresAtMillis := input.ExpiresAt.UnixMilli()

	payload := entity.LicensePayload{
		UserID:         input.UserID,
		SubscriptionID: input.SubscriptionID,
		ExpiresAt:      expiresAtMillis,
		ChaosCode:      srv.codec.ChaosCode(input.UserID, input.SubscriptionID, expiresAtMillis),
	}

	key, err := srv.codec.Encode(payload)
	if err != nil {
		srv.log(ctx).Error("Failed to encode license key", slog.Int64("userID", input.UserID), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to encode license key")
	}

	return key, nil
}

// Validate checks a license key offline or online. Rejections are carried in
// the result; an error means the check itself could not run.
func (srv *licenseService) Validate(ctx context.Context, input *usecase.ValidateLicenseInput) (*entity.LicenseValidationResult, error) {
	isOffline := !input.Online

	payload, err := srv.codec.Decode(input.Key)
	if err != nil {
		// The structural distinction stays in logs only; the caller sees the
		// normalized reason to avoid a format oracle.
		switch {
		case errors.Is(err, service.ErrLicenseSignature):
			srv.log(ctx).Warn("License signature mismatch")

			return &entity.LicenseValidationResult{Valid: false, Reason: entity.LicenseReasonBadSignature, IsOffline: isOffline}, nil
		default:
			srv.log(ctx).Warn("Malformed license key", slog.Any("error", err))

			return &entity.LicenseValidationResult{Valid: false, Reason: entity.LicenseReasonValidationFailed, IsOffline: isOffline}, nil
		}
	}

	expiresAt := payload.ExpiryTime()
	if expiresAt.Before(srv.clock.Now()) {
		return &entity.LicenseValidationResult{Valid: false, Reason: entity.LicenseReasonExpired, IsOffline: isOffline}, nil
	}

	if input.Online {
		status, err := srv.billing.GetSubscriptionStatus(ctx, payload.SubscriptionID)
		if err != nil {
			srv.log(ctx).Error("Billing lookup failed during online validation",
				slog.String("subscriptionID", payload.SubscriptionID),
				slog.Any("error", err),
			)

			return nil, errors.Wrap(domainerrors.ErrBillingUnavailable, "online license validation failed")
		}
		if status != entity.SubscriptionActive {
			return &entity.LicenseValidationResult{Valid: false, Reason: entity.LicenseReasonInactiveSubscription, IsOffline: false}, nil
		}
	}

	return &entity.LicenseValidationResult{
		Valid:     true,
		UserID:    payload.UserID,
		ExpiresAt: &expiresAt,
		IsOffline: isOffline,
	}, nil
}

// Revoke clears the user's stored license fields. Keys already in flight
// stay signature-valid until their embedded expiry.
func (srv *licenseService) Revoke(ctx context.Context, userID int64) error {
	if err := srv.userRepo.ClearLicense(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to revoke license", slog.Int64("userID", userID), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "license revocation failed")
		}

		return errors.Wrap(err, "failed to revoke license")
	}

	srv.log(ctx).Info("License revoked", slog.Int64("userID", userID))

	return nil
}
