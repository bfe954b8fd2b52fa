// Package usecase implements envelope encryption over the configured process keys.
//
// Keys are resolved lazily through a KeyProvider so a missing or malformed key surfaces
// as a configuration error on the first call that needs it, never at process start.
package usecase

import (
	"context"

	cryptoDomain "github.com/bitesapp/security/internal/crypto/domain"
)

// KeyProvider resolves the process-wide key material used for envelopes.
//
// Implementations must be safe for concurrent use and must return the same result on
// every call once resolved.
type KeyProvider interface {
	// GeneralKey returns the key used by Encrypt and Decrypt.
	GeneralKey() (cryptoDomain.SymmetricKey, error)

	// PIIKey returns the key used by EncryptPII and DecryptPII.
	PIIKey() (cryptoDomain.SymmetricKey, error)

	// Algorithm returns the configured AEAD algorithm.
	Algorithm() (cryptoDomain.Algorithm, error)
}

// EnvelopeUseCase encrypts and decrypts text into "iv:authTag:ciphertext" envelopes.
//
// Every encryption draws a fresh random IV, so encrypting the same plaintext twice
// yields two different envelopes. Decryption fails closed: a malformed envelope returns
// ErrInvalidEnvelope and a tag mismatch returns ErrDecryptionFailed, never partial text.
type EnvelopeUseCase interface {
	// Encrypt seals plaintext with the general-purpose key.
	Encrypt(ctx context.Context, plaintext string) (string, error)

	// Decrypt opens an envelope produced by Encrypt.
	Decrypt(ctx context.Context, envelope string) (string, error)

	// EncryptWithKey seals plaintext with an explicitly supplied key instead of the
	// configured one. The key accepts the same forms as ENCRYPTION_KEY.
	EncryptWithKey(ctx context.Context, plaintext, key string) (string, error)

	// DecryptWithKey opens an envelope with an explicitly supplied key.
	DecryptWithKey(ctx context.Context, envelope, key string) (string, error)

	// EncryptPII seals personally identifying data with the PII key.
	EncryptPII(ctx context.Context, plaintext string) (string, error)

	// DecryptPII opens an envelope produced by EncryptPII.
	DecryptPII(ctx context.Context, envelope string) (string, error)
}
