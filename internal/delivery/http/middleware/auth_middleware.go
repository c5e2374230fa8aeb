package middleware

import (
	"strings"

	"keygate/internal/delivery/http/response"
	"keygate/internal/domain/entity"
	domainerrors "keygate/internal/domain/errors"
	"keygate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// HeaderLicenseKey carries a license key credential. When present it
	// takes precedence over any bearer token.
	HeaderLicenseKey = "X-License-Key"

	bearerPrefix = "Bearer "
)

// Context keys set for downstream handlers.
const (
	ContextKeyUserID = "userID"
	ContextKeyRole   = "role"
)

// AuthMiddleware authenticates requests through the gateway, accepting
// either a license key or a bearer token.
type AuthMiddleware struct {
	gateway usecase.GatewayUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(gateway usecase.GatewayUsecase) *AuthMiddleware {
	return &AuthMiddleware{gateway: gateway}
}

// Authenticate is the core middleware function resolving request credentials
// to a principal.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		input := &usecase.AuthenticateInput{
			LicenseKey:  c.Request().Header.Get(HeaderLicenseKey),
			BearerToken: extractBearerToken(c.Request().Header.Get("Authorization")),
		}

		principal, err := m.gateway.Authenticate(c.Request().Context(), input)
		if err != nil {
			return errors.WithStack(err)
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUserID, principal.UserID)
		c.Set(ContextKeyRole, principal.Role)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roleVal := c.Get(ContextKeyRole)
			role, ok := roleVal.(entity.Role)
			if !ok {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Permission denied: role information missing")
			}

			if role != requiredRole {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// extractBearerToken strips the Bearer scheme; anything else yields an empty
// token, which the gateway rejects before touching the registry.
func extractBearerToken(header string) string {
	if header == "" {
		return ""
	}

	token := strings.TrimPrefix(header, bearerPrefix)
	if token == header {
		return ""
	}

	return token
}
