package service

import (
	"errors"

	"keygate/internal/domain/entity"
)

// Sentinel errors for license key decoding.
var (
	// ErrLicenseMalformed means the key is missing its separator or either
	// half fails to decode.
	ErrLicenseMalformed = errors.New("license key malformed")
	// ErrLicenseSignature means the HMAC signature did not verify.
	ErrLicenseSignature = errors.New("license signature invalid")
)

// LicenseCodec encodes and decodes the two-part signed license key format:
// base64(payload JSON) + "." + hex(HMAC-SHA256(payload JSON)).
type LicenseCodec interface {
	// Encode signs the payload and produces the opaque key string.
	Encode(payload entity.LicensePayload) (string, error)

	// Decode splits the key, verifies the signature in constant time, and
	// returns the payload. Expiry is NOT checked here; that belongs to the
	// validation flow.
	Decode(key string) (*entity.LicensePayload, error)

	// ChaosCode derives the deterministic obfuscated marker embedded in the
	// payload. It has no verification purpose and exists only for format
	// compatibility.
	ChaosCode(userID int64, subscriptionID string, expiresAtMillis int64) string
}
