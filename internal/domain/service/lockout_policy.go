package service

import "keygate/internal/domain/entity"

// LockStatus is the outcome of a lockout check.
type LockStatus struct {
	Locked           bool
	RemainingMinutes int  // Rounded up; meaningful only when Locked.
	Expired          bool // True when a past lock was lazily cleared by this check.
}

// LockoutPolicy tracks consecutive failed login attempts and computes
// exponential-backoff lockout windows. It mutates the in-memory user record;
// persisting the result is the caller's responsibility.
type LockoutPolicy interface {
	// CheckLock inspects the user's lock state. A lock whose window has
	// already passed is cleared in place (counters reset to zero) and
	// reported via Expired; there is no background sweep.
	CheckLock(user *entity.User) LockStatus

	// RecordFailure increments the failure counter and stamps the failure
	// time. Once the counter reaches the threshold the account is locked for
	// an exponentially growing window.
	RecordFailure(user *entity.User)

	// RecordSuccess resets the failure counter and clears the lock fields.
	RecordSuccess(user *entity.User)
}
