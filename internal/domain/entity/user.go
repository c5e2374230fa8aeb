// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the credential record for a single account. Besides identity it
// carries the lockout counters and the single active refresh token that
// session rotation compares against.
type User struct {
	ID                  int64      // Numeric identifier for the user.
	Email               string     // The user's login identifier.
	PasswordHash        string     // Salted bcrypt hash; never the plaintext.
	Role                Role       // The user's role, embedded into access tokens.
	FailedLoginAttempts int        // Consecutive failed logins since the last success.
	LastFailedLogin     *time.Time // Timestamp of the most recent failed login, nil when clean.
	AccountLockedUntil  *time.Time // Set only once FailedLoginAttempts reaches the threshold.
	RefreshToken        *string    // The single refresh token currently honored for this user.
	LicenseKey          *string    // Active license key, nil when none issued or revoked.
	LicenseExpiresAt    *time.Time // Expiry of the active license key.
	CreatedAt           time.Time  // Timestamp of when this account was created.
	UpdatedAt           time.Time  // Timestamp of the last modification.
}

// Locked reports whether the account is locked at the given instant.
func (u *User) Locked(now time.Time) bool {
	return u.AccountLockedUntil != nil && u.AccountLockedUntil.After(now)
}
