// Package domain defines credential, signature and token models for the auth layer.
package domain

import "time"

// PasswordAlgorithm selects the adaptive hash used for new password hashes.
//
// Verification always auto-detects the algorithm from the stored hash, so switching
// the configured algorithm never invalidates existing credentials.
type PasswordAlgorithm string

const (
	// Argon2id hashes with github.com/allisson/go-pwdhash (PHC string format).
	Argon2id PasswordAlgorithm = "argon2id"

	// Bcrypt hashes with golang.org/x/crypto/bcrypt.
	Bcrypt PasswordAlgorithm = "bcrypt"
)

const (
	// APIKeyPrefix marks platform API keys so they are recognizable in logs and configs.
	APIKeyPrefix = "bts_"

	// APIKeyRandomBytes is the entropy behind an API key (64 hex characters).
	APIKeyRandomBytes = 32

	// HMACSignatureLength is the hex length of an HMAC-SHA256 signature.
	HMACSignatureLength = 64

	// DefaultBcryptCost is used when BCRYPT_COST is not set.
	DefaultBcryptCost = 12

	// DefaultTokenExpiration is used when a token is issued without an explicit TTL.
	DefaultTokenExpiration = 24 * time.Hour

	// MinSigningSecretLength is the shortest JWT secret accepted for HS256.
	MinSigningSecretLength = 32
)

// ParsePasswordAlgorithm converts a configuration string into a PasswordAlgorithm.
// An empty string selects Argon2id.
func ParsePasswordAlgorithm(s string) (PasswordAlgorithm, error) {
	switch PasswordAlgorithm(s) {
	case "":
		return Argon2id, nil
	case Argon2id, Bcrypt:
		return PasswordAlgorithm(s), nil
	default:
		return "", ErrUnsupportedPasswordAlgorithm
	}
}
