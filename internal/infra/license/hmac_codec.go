// Package license implements the signed license key codec.
package license

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"keygate/config"
	"keygate/internal/domain/entity"
	"keygate/internal/domain/service"

	"github.com/pkg/errors"
)

// hmacCodec implements service.LicenseCodec. A key is
// base64(payload JSON) + "." + hex(HMAC-SHA256(payload JSON)), with the JSON
// field order fixed by the payload struct declaration.
type hmacCodec struct {
	secret []byte
	salt   string
}

// NewHMACCodec is the constructor for hmacCodec.
// It fails when the license secret or salt is absent; there is no default.
func NewHMACCodec(cfg *config.Config) (service.LicenseCodec, error) {
	if cfg.License == nil || cfg.License.Secret == "" || cfg.License.Salt == "" {
		return nil, errors.New("license secret and salt must be provided")
	}

	return &hmacCodec{
		secret: []byte(cfg.License.Secret),
		salt:   cfg.License.Salt,
	}, nil
}

// Encode signs the payload and produces the opaque key string.
func (c *hmacCodec) Encode(payload entity.LicensePayload) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal license payload")
	}

	return base64.StdEncoding.EncodeToString(raw) + "." + c.sign(raw), nil
}

// Decode splits the key and verifies the signature in constant time.
// Expiry is not checked here.
func (c *hmacCodec) Decode(key string) (*entity.LicensePayload, error) {
	encodedPayload, signature, found := strings.Cut(key, ".")
	if !found || encodedPayload == "" || signature == "" {
		return nil, service.ErrLicenseMalformed
	}

	raw, err := base64.StdEncoding.DecodeString(encodedPayload)
	if err != nil {
		return nil, service.ErrLicenseMalformed
	}

	var payload entity.LicensePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, service.ErrLicenseMalformed
	}

	// Re-marshal so the signature covers the canonical serialization, then
	// compare without short-circuiting on length or early byte mismatch.
	canonical, err := json.Marshal(payload)
	if err != nil {
		return nil, service.ErrLicenseMalformed
	}
	if !hmac.Equal([]byte(signature), []byte(c.sign(canonical))) {
		return nil, service.ErrLicenseSignature
	}

	return &payload, nil
}

// ChaosCode derives the deterministic obfuscated marker. The seed hash is
// split into four 8-character hex chunks; each chunk's alphabetic characters
// are shifted by that chunk's numeric value mod 26. The shift intentionally
// does not wrap, matching the historical key format.
func (c *hmacCodec) ChaosCode(userID int64, subscriptionID string, expiresAtMillis int64) string {
	seed := fmt.Sprintf("%d-%s-%d-%s", userID, subscriptionID, expiresAtMillis, c.salt)
	sum := sha256.Sum256([]byte(seed))
	hash := hex.EncodeToString(sum[:])

	chunks := []string{
		hash[0:8],
		hash[8:16],
		hash[16:24],
		hash[24:32],
	}

	transformed := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		value, _ := strconv.ParseUint(chunk, 16, 64)
		shift := rune(value % 26)

		var sb strings.Builder
		sb.Grow(len(chunk))
		for _, r := range chunk {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				sb.WriteRune(r + shift)
			} else {
				sb.WriteRune(r)
			}
		}
		transformed = append(transformed, sb.String())
	}

	return strings.Join(transformed, "-")
}

// sign computes the hex HMAC-SHA256 of the serialized payload.
func (c *hmacCodec) sign(raw []byte) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write(raw)

	return hex.EncodeToString(mac.Sum(nil))
}
