package usecase

import (
	"context"

	"keygate/internal/domain/entity"
)

// AuthenticateInput carries the credentials extracted from a request. Either
// may be empty; precedence is fixed by the gateway.
type AuthenticateInput struct {
	LicenseKey  string // Raw license-key header value.
	BearerToken string // Bearer token with the scheme prefix already stripped.
}

// GatewayUsecase is the single authorize-or-reject entry point for protected
// operations. A present license key always takes precedence over a bearer
// token, and a missing token short-circuits before any revocation lookup.
type GatewayUsecase interface {
	Authenticate(ctx context.Context, input *AuthenticateInput) (*entity.Principal, error)
}
