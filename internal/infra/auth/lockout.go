package auth

import (
	"math"
	"time"

	"keygate/config"
	"keygate/internal/domain/entity"
	"keygate/internal/domain/service"
)

// maxLockoutExponent caps the backoff exponent so the window never overflows
// a time.Duration. 5^12 minutes is already around 460 years.
const maxLockoutExponent = 12

// lockoutPolicy implements exponential-backoff account lockout. The window
// is 5^(attempts-threshold+1) minutes once the threshold is reached:
// 5, 25, 125, ... for consecutive failures beyond it.
type lockoutPolicy struct {
	threshold int
	clock     service.Clock
}

// NewLockoutPolicy is the constructor for lockoutPolicy.
func NewLockoutPolicy(cfg *config.Config, clock service.Clock) service.LockoutPolicy {
	threshold := 5
	if cfg.Auth != nil && cfg.Auth.LockoutThreshold > 0 {
		threshold = cfg.Auth.LockoutThreshold
	}

	return &lockoutPolicy{
		threshold: threshold,
		clock:     clock,
	}
}

// CheckLock reports the lock state and lazily clears an expired lock.
func (p *lockoutPolicy) CheckLock(user *entity.User) service.LockStatus {
	if user.AccountLockedUntil == nil {
		return service.LockStatus{}
	}

	now := p.clock.Now()
	if user.AccountLockedUntil.After(now) {
		remaining := int(math.Ceil(user.AccountLockedUntil.Sub(now).Minutes()))

		return service.LockStatus{Locked: true, RemainingMinutes: remaining}
	}

	// The window has passed; reset in place. No background sweep exists, so
	// this check is the only place stale locks get cleared.
	user.AccountLockedUntil = nil
	user.LastFailedLogin = nil
	user.FailedLoginAttempts = 0

	return service.LockStatus{Expired: true}
}

// RecordFailure bumps the counter and locks the account once the threshold
// is reached.
func (p *lockoutPolicy) RecordFailure(user *entity.User) {
	now := p.clock.Now()
	user.FailedLoginAttempts++
	user.LastFailedLogin = &now

	if user.FailedLoginAttempts < p.threshold {
		return
	}

	exponent := user.FailedLoginAttempts - p.threshold + 1
	if exponent > maxLockoutExponent {
		exponent = maxLockoutExponent
	}

	lockoutMinutes := math.Pow(5, float64(exponent))
	lockedUntil := now.Add(time.Duration(lockoutMinutes) * time.Minute)
	user.AccountLockedUntil = &lockedUntil
}

// RecordSuccess clears all lockout state after a successful login.
func (p *lockoutPolicy) RecordSuccess(user *entity.User) {
	user.FailedLoginAttempts = 0
	user.LastFailedLogin = nil
	user.AccountLockedUntil = nil
}
