package impl

import (
	"context"
	"log/slog"

	deliverycontext "keygate/internal/delivery/context"
	"keygate/internal/domain/entity"
	domainerrors "keygate/internal/domain/errors"
	"keygate/internal/domain/repository"
	"keygate/internal/domain/service"
	"keygate/internal/usecase"

	"github.com/pkg/errors"
)

// gatewayService implements the GatewayUsecase interface. Dispatch order is
// fixed: a present license key always wins over a bearer token, and a
// missing token rejects before any revocation lookup.
type gatewayService struct {
	licenseUsecase usecase.LicenseUsecase
	tokenService   service.TokenService
	revocationRepo repository.RevocationRepository
	logger         *slog.Logger
}

// NewGatewayService is the constructor for gatewayService.
func NewGatewayService(
	licenseUsecase usecase.LicenseUsecase,
	tokenService service.TokenService,
	revocationRepo repository.RevocationRepository,
	logger *slog.Logger,
) usecase.GatewayUsecase {
	return &gatewayService{
		licenseUsecase: licenseUsecase,
		tokenService:   tokenService,
		revocationRepo: revocationRepo,
		logger:         logger,
	}
}

func (srv *gatewayService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate resolves the request credentials to a principal or rejects.
func (srv *gatewayService) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*entity.Principal, error) {
	if input.LicenseKey != "" {
		return srv.authenticateLicense(ctx, input.LicenseKey)
	}

	return srv.authenticateBearer(ctx, input.BearerToken)
}

// authenticateLicense validates the key offline. A license grants base
// access only, never elevated roles.
func (srv *gatewayService) authenticateLicense(ctx context.Context, key string) (*entity.Principal, error) {
	result, err := srv.licenseUsecase.Validate(ctx, &usecase.ValidateLicenseInput{Key: key})
	if err != nil {
		return nil, errors.Wrap(err, "license authentication failed")
	}
	if !result.Valid {
		srv.log(ctx).Warn("License authentication rejected", slog.String("reason", result.Reason))

		return nil, errors.Wrap(domainerrors.ErrLicenseRejected.WithDetails(result.Reason), "license authentication failed")
	}

	return &entity.Principal{UserID: result.UserID, Role: entity.RoleUser}, nil
}

func (srv *gatewayService) authenticateBearer(ctx context.Context, token string) (*entity.Principal, error) {
	// An absent token short-circuits before the registry is touched.
	if token == "" {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "missing bearer token")
	}

	revoked, err := srv.revocationRepo.IsRevoked(ctx, token)
	if err != nil {
		srv.log(ctx).Error("Revocation registry unavailable during authentication", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRevocationUnavailable, "authentication failed")
	}
	if revoked {
		srv.log(ctx).Warn("Revoked token presented")

		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "token revoked")
	}

	claims, err := srv.tokenService.ParseToken(token)
	if err != nil {
		// Which check failed (format, signature, expiry) stays internal.
		srv.log(ctx).Warn("Token failed verification", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "token verification failed")
	}
	if claims.Type != "access" {
		srv.log(ctx).Warn("Non-access token presented for authentication", slog.Int64("userID", claims.UserID))

		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "token verification failed")
	}

	return &entity.Principal{UserID: claims.UserID, Role: claims.Role}, nil
}
