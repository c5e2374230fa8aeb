package license

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"keygate/config"
	"keygate/internal/domain/entity"
	"keygate/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T) service.LicenseCodec {
	cfg := &config.Config{
		License: &config.LicenseConfig{
			Secret: "test-license-secret",
			Salt:   "test-salt",
		},
	}

	codec, err := NewHMACCodec(cfg)
	require.NoError(t, err)

	return codec
}

func TestNewHMACCodec_MissingSecretOrSalt(t *testing.T) {
	_, err := NewHMACCodec(&config.Config{})
	require.Error(t, err)

	_, err = NewHMACCodec(&config.Config{License: &config.LicenseConfig{Secret: "only-secret"}})
	require.Error(t, err)

	_, err = NewHMACCodec(&config.Config{License: &config.LicenseConfig{Salt: "only-salt"}})
	require.Error(t, err)
}

func TestHMACCodec_EncodeDecodeRoundTrip(t *testing.T) {
	codec := newTestCodec(t)

	expiresAtMillis := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	payload := entity.LicensePayload{
		UserID:         7,
		SubscriptionID: "sub_abc",
		ExpiresAt:      expiresAtMillis,
		ChaosCode:      codec.ChaosCode(7, "sub_abc", expiresAtMillis),
	}

	key, err := codec.Encode(payload)
	require.NoError(t, err)
	assert.Contains(t, key, ".")

	decoded, err := codec.Decode(key)
	require.NoError(t, err)
	assert.Equal(t, payload, *decoded)
}

func TestHMACCodec_KeyStructure(t *testing.T) {
	codec := newTestCodec(t)

	key, err := codec.Encode(entity.LicensePayload{
		UserID:         7,
		SubscriptionID: "sub_abc",
		ExpiresAt:      1750000000000,
	})
	require.NoError(t, err)

	encodedPayload, signature, found := strings.Cut(key, ".")
	require.True(t, found)

	raw, err := base64.StdEncoding.DecodeString(encodedPayload)
	require.NoError(t, err)
	// Field order in the serialized payload is fixed.
	assert.True(t, strings.HasPrefix(string(raw), `{"u":7,"s":"sub_abc","e":1750000000000`))

	assert.Regexp(t, "^[0-9a-f]{64}$", signature)
}

func TestHMACCodec_TamperedPayloadRejected(t *testing.T) {
	codec := newTestCodec(t)

	key, err := codec.Encode(entity.LicensePayload{
		UserID:         7,
		SubscriptionID: "sub_abc",
		ExpiresAt:      1750000000000,
	})
	require.NoError(t, err)

	// Swap the payload for one claiming a different user, keeping the
	// original signature.
	_, signature, _ := strings.Cut(key, ".")
	forged, err := codec.Encode(entity.LicensePayload{
		UserID:         8,
		SubscriptionID: "sub_abc",
		ExpiresAt:      1750000000000,
	})
	require.NoError(t, err)
	forgedPayload, _, _ := strings.Cut(forged, ".")

	decoded, err := codec.Decode(forgedPayload + "." + signature)
	require.Error(t, err)
	assert.Nil(t, decoded)
	assert.ErrorIs(t, err, service.ErrLicenseSignature)
}

func TestHMACCodec_MalformedKeysRejected(t *testing.T) {
	codec := newTestCodec(t)

	testCases := []struct {
		name string
		key  string
	}{
		{name: "empty", key: ""},
		{name: "no separator", key: "bm9zZXBhcmF0b3I"},
		{name: "empty payload", key: ".abcdef"},
		{name: "empty signature", key: "bm9zZXBhcmF0b3I."},
		{name: "invalid base64", key: "!!!not-base64!!!.abcdef"},
		{name: "payload not json", key: base64.StdEncoding.EncodeToString([]byte("not json")) + ".abcdef"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			decoded, err := codec.Decode(tc.key)
			require.Error(t, err)
			assert.Nil(t, decoded)
			assert.ErrorIs(t, err, service.ErrLicenseMalformed)
		})
	}
}

func TestHMACCodec_DifferentSecretsProduceDifferentSignatures(t *testing.T) {
	codec := newTestCodec(t)

	otherCfg := &config.Config{
		License: &config.LicenseConfig{Secret: "another-secret", Salt: "test-salt"},
	}
	other, err := NewHMACCodec(otherCfg)
	require.NoError(t, err)

	payload := entity.LicensePayload{UserID: 7, SubscriptionID: "sub_abc", ExpiresAt: 1750000000000}

	key, err := codec.Encode(payload)
	require.NoError(t, err)

	decoded, err := other.Decode(key)
	require.Error(t, err)
	assert.Nil(t, decoded)
	assert.ErrorIs(t, err, service.ErrLicenseSignature)
}

func TestHMACCodec_ChaosCodeDeterministic(t *testing.T) {
	codec := newTestCodec(t)

	first := codec.ChaosCode(7, "sub_abc", 1750000000000)
	second := codec.ChaosCode(7, "sub_abc", 1750000000000)
	assert.Equal(t, first, second)

	// Four chunks of eight characters joined by dashes.
	parts := strings.Split(first, "-")
	require.Len(t, parts, 4)
	for _, part := range parts {
		assert.Len(t, []rune(part), 8)
	}
}

func TestHMACCodec_ChaosCodeVariesWithInputs(t *testing.T) {
	codec := newTestCodec(t)

	base := codec.ChaosCode(7, "sub_abc", 1750000000000)
	assert.NotEqual(t, base, codec.ChaosCode(8, "sub_abc", 1750000000000))
	assert.NotEqual(t, base, codec.ChaosCode(7, "sub_xyz", 1750000000000))
	assert.NotEqual(t, base, codec.ChaosCode(7, "sub_abc", 1750000000001))
}

func TestHMACCodec_ChaosCodeVariesWithSalt(t *testing.T) {
	codec := newTestCodec(t)

	otherCfg := &config.Config{
		License: &config.LicenseConfig{Secret: "test-license-secret", Salt: "another-salt"},
	}
	other, err := NewHMACCodec(otherCfg)
	require.NoError(t, err)

	assert.NotEqual(t,
		codec.ChaosCode(7, "sub_abc", 1750000000000),
		other.ChaosCode(7, "sub_abc", 1750000000000),
	)
}
