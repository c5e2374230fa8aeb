package usecase

import (
	"context"
	"time"

	"keygate/internal/domain/entity"
)

// ActivateLicenseInput starts a subscription and issues a license for it.
type ActivateLicenseInput struct {
	UserID int64  `json:"userId" validate:"required"`
	Plan   string `json:"plan" validate:"required"`
}

// ActivateLicenseOutput returns the issued license key.
type ActivateLicenseOutput struct {
	LicenseKey     string    `json:"licenseKey"`
	SubscriptionID string    `json:"subscriptionId"`
	ExpiresAt      time.Time `json:"expiresAt"`
}

// GenerateLicenseInput issues a license key for an existing subscription.
type GenerateLicenseInput struct {
	UserID         int64     `json:"userId" validate:"required"`
	SubscriptionID string    `json:"subscriptionId" validate:"required"`
	ExpiresAt      time.Time `json:"expiresAt" validate:"required"`
}

// ValidateLicenseInput carries a license key and the validation mode.
type ValidateLicenseInput struct {
	Key    string `json:"key" validate:"required"`
	Online bool   `json:"online"`
}

// LicenseUsecase defines the interface for license lifecycle operations.
type LicenseUsecase interface {
	// Activate creates a billing subscription for the user, generates a
	// license key, and persists it on the user record.
	Activate(ctx context.Context, input *ActivateLicenseInput) (*ActivateLicenseOutput, error)

	// Generate produces a signed license key without touching billing or the
	// user store.
	Generate(ctx context.Context, input *GenerateLicenseInput) (string, error)

	// Validate checks a license key offline (signature and expiry) or online
	// (additionally requiring an active billing subscription). Failures are
	// reported in the result, not as errors; errors mean the check itself
	// could not run.
	Validate(ctx context.Context, input *ValidateLicenseInput) (*entity.LicenseValidationResult, error)

	// Revoke clears the user's stored license fields. Already-issued keys
	// remain signature-valid until their embedded expiry; callers re-check
	// status online or rely on short expiries.
	Revoke(ctx context.Context, userID int64) error
}
