package service

import (
	"errors"
	"time"

	"keygate/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Sentinel errors distinguishing why a token failed verification. They are
// logged internally and all normalize to the same unauthorized response, so
// the failure mode never leaks to the caller.
var (
	// ErrTokenMalformed means the string is not a parseable token.
	ErrTokenMalformed = errors.New("token malformed")
	// ErrTokenExpired means the token was valid but its expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenSignature means the signature did not verify.
	ErrTokenSignature = errors.New("token signature invalid")
)

// Claims defines the custom claims carried by issued tokens.
type Claims struct {
	UserID int64
	Role   entity.Role // Empty on refresh tokens.
	Type   string      // "access" or "refresh".
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying signed tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a short-lived access token carrying the
	// principal's role.
	GenerateAccessToken(principal entity.Principal) (string, error)

	// GenerateRefreshToken creates a longer-lived refresh token. It carries
	// no role; rotation authority comes from comparing against the single
	// stored refresh token, not from claims.
	GenerateRefreshToken(userID int64) (string, error)

	// ParseToken verifies the signature and expiry of a token string and
	// returns its claims, or one of the sentinel errors above.
	ParseToken(tokenString string) (*Claims, error)

	// RemainingLifetime returns how long the token stays valid from now,
	// reading the expiry claim without requiring a valid signature. When the
	// expiry cannot be determined it returns the refresh token duration as a
	// fallback, so revocation entries never outlive their usefulness.
	RemainingLifetime(tokenString string) time.Duration

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}
