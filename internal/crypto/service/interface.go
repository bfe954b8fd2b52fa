// Package service provides the cryptographic primitives behind the envelope format:
// AEAD ciphers (AES-256-GCM, ChaCha20-Poly1305) and secure random generation.
package service

import (
	cryptoDomain "github.com/bitesapp/security/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)
	// Decrypt decrypts ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// RandomGenerator produces cryptographically secure tokens and numbers.
// Implementations must draw from a CSPRNG and keep no state between calls.
type RandomGenerator interface {
	// Token returns byteLength random bytes hex-encoded (2*byteLength characters).
	Token(byteLength int) (string, error)

	// Number returns a uniformly distributed integer in [min, max].
	Number(min, max int64) (int64, error)

	// SessionID returns a 64-character hex session identifier.
	SessionID() (string, error)
}
