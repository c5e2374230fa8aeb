package auth

import (
	"testing"

	"keygate/config"
	domainerrors "keygate/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(newTestAuthConfig())

	hash, err := hasher.Hash("Password123")
	require.NoError(t, err)
	assert.NotEqual(t, "Password123", hash)

	assert.True(t, hasher.Check("Password123", hash))
	assert.False(t, hasher.Check("Password124", hash))
}

func TestBcryptHasher_ValidatePasswordStrength_Defaults(t *testing.T) {
	hasher := NewBcryptHasher(newTestAuthConfig())

	testCases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid password", password: "Password123", wantErr: false},
		{name: "too short", password: "Pw1", wantErr: true},
		{name: "missing uppercase", password: "password123", wantErr: true},
		{name: "missing lowercase", password: "PASSWORD123", wantErr: true},
		{name: "missing number", password: "PasswordABC", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tc.password)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestBcryptHasher_ValidatePasswordStrength_Configured(t *testing.T) {
	cfg := newTestAuthConfig()
	cfg.PasswordStrength = &config.PasswordStrengthConfig{
		MinLength:      12,
		RequireSpecial: true,
	}
	hasher := NewBcryptHasher(cfg)

	assert.Error(t, hasher.ValidatePasswordStrength("Password123"))
	assert.NoError(t, hasher.ValidatePasswordStrength("longenough!pw"))
}
