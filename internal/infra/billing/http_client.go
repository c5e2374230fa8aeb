// Package billing provides the HTTP client for the external billing collaborator.
package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"keygate/config"
	"keygate/internal/domain/entity"
	"keygate/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultBillingTimeout = 30 * time.Second

// httpBillingClient implements BillingService against the billing system's
// REST API. It is consulted only on the online license validation path and
// during subscription activation.
type httpBillingClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// subscriptionResponse is the billing API's subscription representation.
type subscriptionResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// createSubscriptionRequest is the payload for provisioning a subscription.
type createSubscriptionRequest struct {
	UserID int64  `json:"userId"`
	Plan   string `json:"plan"`
}

// NewHTTPBillingClient creates a new billing client from configuration.
func NewHTTPBillingClient(cfg *config.Config, logger *slog.Logger) (service.BillingService, error) {
	if cfg.Billing == nil || cfg.Billing.BaseURL == "" {
		return nil, errors.New("billing base URL must be provided")
	}

	timeout := cfg.Billing.Timeout
	if timeout <= 0 {
		timeout = defaultBillingTimeout
	}

	return &httpBillingClient{
		baseURL: cfg.Billing.BaseURL,
		apiKey:  cfg.Billing.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// GetSubscriptionStatus returns the live status of a subscription.
func (c *httpBillingClient) GetSubscriptionStatus(ctx context.Context, subscriptionID string) (entity.SubscriptionStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/subscriptions/"+subscriptionID, nil)
	if err != nil {
		return "", errors.WithStack(err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("billing returned non-success status: %d", resp.StatusCode)
	}

	var sub subscriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&sub); err != nil {
		return "", errors.Wrap(err, "failed to decode subscription response")
	}

	return entity.SubscriptionStatus(sub.Status), nil
}

// CreateSubscription provisions a subscription and returns its identifier.
func (c *httpBillingClient) CreateSubscription(ctx context.Context, userID int64, plan string) (string, error) {
	body, err := json.Marshal(createSubscriptionRequest{UserID: userID, Plan: plan})
	if err != nil {
		return "", errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/subscriptions", bytes.NewReader(body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("billing returned non-success status: %d", resp.StatusCode)
	}

	var sub subscriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&sub); err != nil {
		return "", errors.Wrap(err, "failed to decode subscription response")
	}

	c.logger.Info("Subscription created",
		slog.Int64("userID", userID),
		slog.String("subscriptionID", sub.ID),
	)

	return sub.ID, nil
}

func (c *httpBillingClient) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}
