package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	cryptoService "github.com/bitesapp/security/internal/crypto/service"
	cryptoUseCase "github.com/bitesapp/security/internal/crypto/usecase"
	cryptoMocks "github.com/bitesapp/security/internal/crypto/usecase/mocks"
)

func TestRunEncrypt(t *testing.T) {
	ctx := context.Background()

	t.Run("general", func(t *testing.T) {
		mockUseCase := &cryptoMocks.MockEnvelopeUseCase{}
		mockUseCase.On("Encrypt", ctx, "order-123").Return("aa:bb:cc", nil)

		var out bytes.Buffer
		require.NoError(t, RunEncrypt(ctx, mockUseCase, IOTuple{Writer: &out}, "order-123", false, "text"))
		require.Equal(t, "envelope: aa:bb:cc\n", out.String())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("pii-from-stdin", func(t *testing.T) {
		mockUseCase := &cryptoMocks.MockEnvelopeUseCase{}
		mockUseCase.On("EncryptPII", ctx, "+2348012345678").Return("dd:ee:ff", nil)

		var out bytes.Buffer
		tuple := IOTuple{Reader: strings.NewReader("+2348012345678\n"), Writer: &out}
		require.NoError(t, RunEncrypt(ctx, mockUseCase, tuple, "", true, "json"))
		require.Contains(t, out.String(), `"envelope": "dd:ee:ff"`)
		mockUseCase.AssertExpectations(t)
	})
}

func TestRunEncryptDecrypt_RoundTrip(t *testing.T) {
	ctx := context.Background()
	keys := cryptoUseCase.NewKeyProvider(cryptoUseCase.KeyConfig{
		EncryptionKey: "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
	})
	useCase := cryptoUseCase.NewEnvelopeUseCase(keys, cryptoService.NewAEADManager())

	var encrypted bytes.Buffer
	require.NoError(t, RunEncrypt(ctx, useCase, IOTuple{Writer: &encrypted}, "ada@example.com", true, "text"))
	envelope := strings.TrimPrefix(strings.TrimSpace(encrypted.String()), "envelope: ")

	var decrypted bytes.Buffer
	require.NoError(t, RunDecrypt(ctx, useCase, IOTuple{Writer: &decrypted}, envelope, true, "text"))
	require.Equal(t, "plaintext: ada@example.com\n", decrypted.String())

	// A PII envelope does not open with the general key.
	err := RunDecrypt(ctx, useCase, IOTuple{Writer: &bytes.Buffer{}}, envelope, false, "text")
	require.Error(t, err)
}
