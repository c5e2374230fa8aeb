// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"keygate/config"
	"keygate/internal/domain/entity"
	"keygate/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     string        // Secret key for signing both token types.
	accessTTL  time.Duration // Time-to-live for access tokens.
	refreshTTL time.Duration // Time-to-live for refresh tokens.
	clock      service.Clock
}

// NewJWTService is the constructor for jwtService.
// It fails when the signing secret is absent; there is no default secret.
func NewJWTService(cfg *config.Config, clock service.Clock) (service.TokenService, error) {
	if cfg.SecretKey.Token == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	return &jwtService{
		secret:     cfg.SecretKey.Token,
		accessTTL:  cfg.Auth.AccessTokenTTL,
		refreshTTL: cfg.Auth.RefreshTokenTTL,
		clock:      clock,
	}, nil
}

// GenerateAccessToken creates a short-lived access token carrying the principal's role.
func (s *jwtService) GenerateAccessToken(principal entity.Principal) (string, error) {
	return s.generateToken(principal.UserID, principal.Role, s.accessTTL, "access")
}

// GenerateRefreshToken creates a refresh token without a role claim.
func (s *jwtService) GenerateRefreshToken(userID int64) (string, error) {
	return s.generateToken(userID, "", s.refreshTTL, "refresh")
}

// ParseToken verifies signature and expiry, returning the claims or one of
// the service sentinel errors.
func (s *jwtService) ParseToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	}, jwt.WithTimeFunc(s.clock.Now))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, service.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
			return nil, service.ErrTokenSignature
		default:
			return nil, service.ErrTokenMalformed
		}
	}
	if !token.Valid {
		return nil, service.ErrTokenSignature
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, service.ErrTokenMalformed
	}

	return s.toClaims(mapClaims)
}

// RemainingLifetime reads the expiry claim without verifying the signature,
// so revoked-on-logout entries can get an accurate TTL even for tokens that
// no longer verify. Falls back to the refresh token duration.
func (s *jwtService) RemainingLifetime(tokenString string) time.Duration {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return s.refreshTTL
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return s.refreshTTL
	}

	remaining := exp.Sub(s.clock.Now())
	if remaining <= 0 {
		return s.refreshTTL
	}

	return remaining
}

// RefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID int64, role entity.Role, ttl time.Duration, tokenType string) (string, error) {
	now := s.clock.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(userID, 10), // Subject (who the token is for)
		"iat":  now.Unix(),                    // Issued At
		"exp":  now.Add(ttl).Unix(),           // Expiration Time
		"type": tokenType,                     // Type of token (access or refresh)
	}
	// Only the access token carries a role for stateless authorization.
	if role != "" {
		claims["role"] = role.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// toClaims converts verified map claims into the typed domain claims.
func (s *jwtService) toClaims(mapClaims jwt.MapClaims) (*service.Claims, error) {
	sub, err := mapClaims.GetSubject()
	if err != nil {
		return nil, service.ErrTokenMalformed
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, service.ErrTokenMalformed
	}

	tokenType, _ := mapClaims["type"].(string)
	if tokenType == "" {
		return nil, service.ErrTokenMalformed
	}

	claims := &service.Claims{
		UserID: userID,
		Type:   tokenType,
	}
	if roleStr, ok := mapClaims["role"].(string); ok {
		role := entity.Role(roleStr)
		if !role.IsValid() {
			return nil, service.ErrTokenMalformed
		}
		claims.Role = role
	}

	return claims, nil
}
