package entity

import "time"

// LicensePayload is the signed body of a license key. The short JSON keys
// are part of the wire format and must not change.
type LicensePayload struct {
	UserID         int64  `json:"u"`
	SubscriptionID string `json:"s"`
	ExpiresAt      int64  `json:"e"` // Unix milliseconds.
	ChaosCode      string `json:"c"` // Obfuscated marker, kept for format compatibility only.
}

// ExpiryTime returns the payload expiry as a time.Time.
func (p *LicensePayload) ExpiryTime() time.Time {
	return time.UnixMilli(p.ExpiresAt)
}

// LicenseValidationResult reports the outcome of validating a license key.
type LicenseValidationResult struct {
	Valid     bool       `json:"valid"`
	Reason    string     `json:"reason,omitempty"`
	UserID    int64      `json:"userId,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	IsOffline bool       `json:"isOffline"`
}

// License validation failure reasons. These strings are part of the
// validation result contract.
const (
	// LicenseReasonValidationFailed is the normalized reason for any malformed
	// key. The structural detail stays in logs to avoid a format oracle.
	LicenseReasonValidationFailed     = "Validation failed"
	LicenseReasonBadSignature         = "Invalid signature"
	LicenseReasonExpired              = "License expired"
	LicenseReasonInactiveSubscription = "Subscription not active"
)

// SubscriptionStatus is the billing collaborator's view of a subscription.
type SubscriptionStatus string

const (
	// SubscriptionActive is the only status that passes online validation.
	SubscriptionActive SubscriptionStatus = "active"
	// SubscriptionCanceled indicates the subscription has been terminated.
	SubscriptionCanceled SubscriptionStatus = "canceled"
	// SubscriptionPastDue indicates payment failure; not valid for licensing.
	SubscriptionPastDue SubscriptionStatus = "past_due"
)
