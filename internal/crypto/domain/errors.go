// Package domain defines the envelope encryption models, key validation rules and errors.
package domain

import (
	"github.com/bitesapp/security/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap the classification sentinels from internal/errors
// so the HTTP layer and CLI can map them without knowing crypto details.
var (
	// ErrUnsupportedAlgorithm indicates the configured encryption algorithm is unknown.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrConfiguration, "unsupported algorithm")

	// ErrInvalidKeySize indicates a key that does not resolve to 32 raw bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrConfiguration, "invalid key size")

	// ErrKeyNotConfigured indicates no key was supplied and none is configured.
	ErrKeyNotConfigured = errors.Wrap(errors.ErrConfiguration, "encryption key not configured")

	// ErrEmptyPlaintext indicates an encryption request with nothing to encrypt.
	ErrEmptyPlaintext = errors.Wrap(errors.ErrInvalidInput, "plaintext must not be empty")

	// ErrInvalidEnvelope indicates the envelope is not three non-empty colon-delimited
	// segments, or a segment is not valid base64 of the expected size.
	ErrInvalidEnvelope = errors.Wrap(errors.ErrInvalidFormat, "invalid envelope")

	// ErrDecryptionFailed indicates the tag did not verify: wrong key or tampered data.
	//
	// The specific cause is never disclosed.
	ErrDecryptionFailed = errors.Wrap(errors.ErrAuthenticationFailed, "decryption failed")
)
