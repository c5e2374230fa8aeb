// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"keygate/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrRefreshTokenStale is returned by RotateRefreshToken when the stored
// refresh token no longer matches the one being rotated, meaning the token
// was already superseded or cleared by a logout.
var ErrRefreshTokenStale = errors.New("stored refresh token does not match")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// UpdateLoginState persists the lockout counters and timestamps of the user.
	UpdateLoginState(ctx context.Context, user *entity.User) error

	// SetRefreshToken overwrites the user's stored refresh token. A nil token
	// clears it (logout).
	SetRefreshToken(ctx context.Context, userID int64, token *string) error

	// RotateRefreshToken atomically replaces oldToken with newToken for the
	// given user. The update is conditional on the stored value still equaling
	// oldToken; if it does not, ErrRefreshTokenStale is returned and no state
	// changes. Only the most recently issued refresh token can ever rotate.
	RotateRefreshToken(ctx context.Context, userID int64, oldToken, newToken string) error

	// SetLicense stores a newly generated license key and its expiry.
	SetLicense(ctx context.Context, userID int64, key string, expiresAt time.Time) error

	// ClearLicense removes the user's stored license key and expiry.
	ClearLicense(ctx context.Context, userID int64) error
}
