// Package service provides credential hashing, message signing, token issuance and
// API key services.
//
// All services are stateless apart from configuration captured at construction, and
// are safe for concurrent use.
package service

import (
	"time"

	authDomain "github.com/bitesapp/security/internal/auth/domain"
)

// PasswordService hashes and verifies credentials with an adaptive, salted algorithm.
type PasswordService interface {
	// Hash returns a self-describing hash of password. The salt and cost parameters are
	// embedded in the result, so hashing the same password twice yields different hashes.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. It returns false, never an error,
	// for a wrong password, an empty input, a hash in an unknown format or an Argon2id
	// hash whose parameters are malformed or cost more than the hashing policy.
	Verify(password, hash string) bool
}

// HMACService signs and verifies data with HMAC-SHA256 and a caller-supplied secret.
type HMACService interface {
	// Sign returns the 64-character hex HMAC-SHA256 of data under secret.
	Sign(data, secret string) (string, error)

	// Verify recomputes the signature and compares it in constant time. Malformed
	// signatures return false.
	Verify(data, signature, secret string) bool
}

// JWTService issues and verifies HS256 signed tokens.
type JWTService interface {
	// Generate signs claims into a token that expires after ttl. A zero ttl selects the
	// configured default expiration; a negative ttl fails with ErrInvalidTokenTTL.
	// Claim values must be representable in canonical form (CanonicalClaimValue).
	Generate(claims authDomain.Claims, ttl time.Duration) (*authDomain.IssuedToken, error)

	// Verify checks signature, algorithm and expiry and returns the caller claims in
	// canonical form, identical to canonical claims passed to Generate.
	Verify(token string) (authDomain.Claims, error)
}

// APIKeyService generates and recognizes platform API keys ("bts_" + 64 hex).
type APIKeyService interface {
	// Generate returns a fresh API key.
	Generate() (string, error)

	// Validate reports whether key has the API key prefix followed by a 64-character
	// lowercase hex token.
	Validate(key string) bool

	// Hash returns the SHA-256 hex digest of key for storage and lookup.
	Hash(key string) string
}
