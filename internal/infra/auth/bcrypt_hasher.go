// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"unicode"

	"keygate/config"
	domainerrors "keygate/internal/domain/errors"
	"keygate/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength *config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{
		cost:     cost,
		strength: cfg.PasswordStrength,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength checks the candidate password against the
// configured requirements. With no configuration a minimum length of 8 with
// upper, lower, and numeric characters is required.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	minLength := 8
	requireUpper, requireLower, requireNumbers := true, true, true
	requireSpecial := false
	maxLength := 0

	if h.strength != nil {
		if h.strength.MinLength > 0 {
			minLength = h.strength.MinLength
		}
		requireUpper = h.strength.RequireUppercase
		requireLower = h.strength.RequireLowercase
		requireNumbers = h.strength.RequireNumbers
		requireSpecial = h.strength.RequireSpecial
		maxLength = h.strength.MaxLength
	}

	if len(password) < minLength {
		return domainerrors.ErrPasswordStrength.WrapMessage("password too short")
	}
	if maxLength > 0 && len(password) > maxLength {
		return domainerrors.ErrPasswordStrength.WrapMessage("password too long")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if requireUpper && !hasUpper {
		return domainerrors.ErrPasswordStrength.WrapMessage("missing uppercase character")
	}
	if requireLower && !hasLower {
		return domainerrors.ErrPasswordStrength.WrapMessage("missing lowercase character")
	}
	if requireNumbers && !hasNumber {
		return domainerrors.ErrPasswordStrength.WrapMessage("missing numeric character")
	}
	if requireSpecial && !hasSpecial {
		return domainerrors.ErrPasswordStrength.WrapMessage("missing special character")
	}

	return nil
}
