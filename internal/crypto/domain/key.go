package domain

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// SymmetricKey is the raw 32-byte key material used for envelope encryption.
//
// Keys are resolved once from configuration and never mutated afterward. Callers that
// derive temporary copies should clear them with Zero when done.
type SymmetricKey []byte

// ValidateEncryptionKey reports whether key is acceptable for envelope encryption.
//
// Accepted forms:
//   - a 64-character hex string (32 raw bytes)
//   - a raw string of at least 32 bytes
//
// Empty and short strings are rejected.
func ValidateEncryptionKey(key string) bool {
	if isHexKey(key) {
		return true
	}
	return len(key) >= KeySize
}

// ParseSymmetricKey resolves a configured key string into raw key material.
//
// A 64-character hex string is decoded. A raw string of exactly 32 bytes is used as-is.
// Longer raw strings are condensed to 32 bytes with SHA-256 so that passphrase-style
// configuration still yields a full-strength AES-256 key.
//
// Returns ErrInvalidKeySize for anything ValidateEncryptionKey rejects.
func ParseSymmetricKey(key string) (SymmetricKey, error) {
	if key == "" {
		return nil, ErrKeyNotConfigured
	}
	if !ValidateEncryptionKey(key) {
		return nil, fmt.Errorf("%w: got %d bytes, want at least %d", ErrInvalidKeySize, len(key), KeySize)
	}

	if isHexKey(key) {
		raw, err := hex.DecodeString(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKeySize, err)
		}
		return raw, nil
	}

	if len(key) == KeySize {
		return SymmetricKey(key), nil
	}

	sum := sha256.Sum256([]byte(key))
	return sum[:], nil
}

// GenerateEncryptionKey produces a fresh 32-byte key encoded as 64 hex characters,
// suitable for ENCRYPTION_KEY or PII_ENCRYPTION_KEY.
func GenerateEncryptionKey() (string, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("failed to generate encryption key: %w", err)
	}
	defer Zero(key)

	return hex.EncodeToString(key), nil
}

func isHexKey(key string) bool {
	if len(key) != KeySize*2 {
		return false
	}
	_, err := hex.DecodeString(key)
	return err == nil
}
