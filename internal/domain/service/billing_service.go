package service

import (
	"context"

	"keygate/internal/domain/entity"
)

// BillingService is the external billing collaborator. The license flow
// calls it to create subscriptions and to look up live subscription status
// during online validation.
type BillingService interface {
	// GetSubscriptionStatus returns the current status of a subscription.
	GetSubscriptionStatus(ctx context.Context, subscriptionID string) (entity.SubscriptionStatus, error)

	// CreateSubscription provisions a subscription for the user on the given
	// plan and returns its identifier.
	CreateSubscription(ctx context.Context, userID int64, plan string) (string, error)
}
