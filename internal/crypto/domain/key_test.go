package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/bitesapp/security/internal/errors"
)

const testHexKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func TestValidateEncryptionKey(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		valid bool
	}{
		{name: "64-char hex key", key: testHexKey, valid: true},
		{name: "uppercase hex key", key: strings.ToUpper(testHexKey), valid: true},
		{name: "raw 32-byte string", key: strings.Repeat("k", 32), valid: true},
		{name: "raw passphrase longer than 32 bytes", key: strings.Repeat("passphrase", 5), valid: true},
		{name: "empty", key: "", valid: false},
		{name: "short raw string", key: "too-short", valid: false},
		{name: "31 bytes", key: strings.Repeat("k", 31), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateEncryptionKey(tt.key))
		})
	}
}

func TestParseSymmetricKey(t *testing.T) {
	t.Run("decodes hex key", func(t *testing.T) {
		key, err := ParseSymmetricKey(testHexKey)
		require.NoError(t, err)

		expected, _ := hex.DecodeString(testHexKey)
		assert.Equal(t, SymmetricKey(expected), key)
	})

	t.Run("uses 32-byte raw key as-is", func(t *testing.T) {
		raw := strings.Repeat("r", 32)
		key, err := ParseSymmetricKey(raw)
		require.NoError(t, err)
		assert.Equal(t, SymmetricKey(raw), key)
	})

	t.Run("condenses long raw key", func(t *testing.T) {
		raw := strings.Repeat("long-passphrase-", 4)
		key, err := ParseSymmetricKey(raw)
		require.NoError(t, err)

		sum := sha256.Sum256([]byte(raw))
		assert.Equal(t, SymmetricKey(sum[:]), key)
		assert.Len(t, key, KeySize)
	})

	t.Run("missing key is a configuration error", func(t *testing.T) {
		_, err := ParseSymmetricKey("")
		assert.ErrorIs(t, err, ErrKeyNotConfigured)
		assert.ErrorIs(t, err, apperrors.ErrConfiguration)
	})

	t.Run("short key is a configuration error", func(t *testing.T) {
		_, err := ParseSymmetricKey("short")
		assert.ErrorIs(t, err, ErrInvalidKeySize)
		assert.ErrorIs(t, err, apperrors.ErrConfiguration)
	})
}

func TestGenerateEncryptionKey(t *testing.T) {
	key1, err := GenerateEncryptionKey()
	require.NoError(t, err)
	key2, err := GenerateEncryptionKey()
	require.NoError(t, err)

	assert.Len(t, key1, 64)
	assert.True(t, ValidateEncryptionKey(key1))
	assert.NotEqual(t, key1, key2)

	raw, err := ParseSymmetricKey(key1)
	require.NoError(t, err)
	assert.Len(t, raw, KeySize)
}

func TestParseAlgorithm(t *testing.T) {
	alg, err := ParseAlgorithm("aes-gcm")
	require.NoError(t, err)
	assert.Equal(t, AESGCM, alg)

	alg, err = ParseAlgorithm("chacha20-poly1305")
	require.NoError(t, err)
	assert.Equal(t, ChaCha20, alg)

	_, err = ParseAlgorithm("AES-GCM")
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}
