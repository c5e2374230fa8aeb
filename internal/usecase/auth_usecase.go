// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"keygate/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshInput carries the refresh token being exchanged for a new pair.
type RefreshInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// LogoutInput carries the refresh token being retired.
type LogoutInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	UserID int64       `json:"userId"`
	Email  string      `json:"email"`
	Role   entity.Role `json:"role"`
}

// TokenPairOutput returns the generated tokens after login or refresh.
type TokenPairOutput struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthUsecase defines the interface for credential and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new account after validating password strength.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials behind the lockout gate and issues a token
	// pair. The new refresh token supersedes any previously stored one.
	Login(ctx context.Context, input *LoginInput) (*TokenPairOutput, error)

	// Refresh rotates a refresh token for a new pair. Only the most recently
	// issued refresh token for a user is ever honored.
	Refresh(ctx context.Context, input *RefreshInput) (*TokenPairOutput, error)

	// Logout blacklists the refresh token and clears the stored one. Tokens
	// that no longer verify are still blacklisted.
	Logout(ctx context.Context, input *LogoutInput) error
}
