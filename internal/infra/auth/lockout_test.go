package auth

import (
	"testing"
	"time"

	"keygate/internal/domain/entity"
	"keygate/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLockoutPolicy() (service.LockoutPolicy, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	return NewLockoutPolicy(newTestAuthConfig(), clock), clock
}

func TestLockoutPolicy_FailuresBelowThresholdDoNotLock(t *testing.T) {
	policy, _ := newTestLockoutPolicy()
	user := &entity.User{ID: 42}

	for i := 0; i < 4; i++ {
		policy.RecordFailure(user)
	}

	assert.Equal(t, 4, user.FailedLoginAttempts)
	assert.Nil(t, user.AccountLockedUntil)
	assert.False(t, policy.CheckLock(user).Locked)
}

func TestLockoutPolicy_FifthFailureLocksForFiveMinutes(t *testing.T) {
	policy, clock := newTestLockoutPolicy()
	user := &entity.User{ID: 42}

	for i := 0; i < 5; i++ {
		policy.RecordFailure(user)
	}

	require.NotNil(t, user.AccountLockedUntil)
	assert.Equal(t, clock.now.Add(5*time.Minute), *user.AccountLockedUntil)

	status := policy.CheckLock(user)
	assert.True(t, status.Locked)
	assert.Equal(t, 5, status.RemainingMinutes)
}

func TestLockoutPolicy_WindowGrowsExponentially(t *testing.T) {
	policy, clock := newTestLockoutPolicy()
	user := &entity.User{ID: 42}

	for i := 0; i < 6; i++ {
		policy.RecordFailure(user)
	}
	require.NotNil(t, user.AccountLockedUntil)
	assert.Equal(t, clock.now.Add(25*time.Minute), *user.AccountLockedUntil)

	policy.RecordFailure(user)
	assert.Equal(t, clock.now.Add(125*time.Minute), *user.AccountLockedUntil)
}

func TestLockoutPolicy_ExpiredLockClearedLazily(t *testing.T) {
	policy, clock := newTestLockoutPolicy()
	user := &entity.User{ID: 42}

	for i := 0; i < 5; i++ {
		policy.RecordFailure(user)
	}
	require.NotNil(t, user.AccountLockedUntil)

	clock.Advance(6 * time.Minute)

	status := policy.CheckLock(user)
	assert.False(t, status.Locked)
	assert.True(t, status.Expired)
	assert.Zero(t, user.FailedLoginAttempts)
	assert.Nil(t, user.AccountLockedUntil)
	assert.Nil(t, user.LastFailedLogin)
}

func TestLockoutPolicy_FailureAfterExpiredLockStartsOver(t *testing.T) {
	policy, clock := newTestLockoutPolicy()
	user := &entity.User{ID: 42}

	for i := 0; i < 5; i++ {
		policy.RecordFailure(user)
	}

	clock.Advance(6 * time.Minute)
	policy.CheckLock(user)

	// The counter was reset, so the next failure is attempt one again.
	policy.RecordFailure(user)
	assert.Equal(t, 1, user.FailedLoginAttempts)
	assert.Nil(t, user.AccountLockedUntil)
}

func TestLockoutPolicy_RemainingMinutesRoundsUp(t *testing.T) {
	policy, clock := newTestLockoutPolicy()
	user := &entity.User{ID: 42}

	for i := 0; i < 5; i++ {
		policy.RecordFailure(user)
	}

	clock.Advance(4*time.Minute + 30*time.Second)

	status := policy.CheckLock(user)
	assert.True(t, status.Locked)
	assert.Equal(t, 1, status.RemainingMinutes)
}

func TestLockoutPolicy_RecordSuccessClearsEverything(t *testing.T) {
	policy, _ := newTestLockoutPolicy()
	user := &entity.User{ID: 42}

	for i := 0; i < 5; i++ {
		policy.RecordFailure(user)
	}

	policy.RecordSuccess(user)

	assert.Zero(t, user.FailedLoginAttempts)
	assert.Nil(t, user.LastFailedLogin)
	assert.Nil(t, user.AccountLockedUntil)
}
