package commands

import (
	"context"
	"fmt"

	cryptoUseCase "github.com/bitesapp/security/internal/crypto/usecase"
)

// RunEncrypt seals plaintext into an iv:authTag:ciphertext envelope. With pii set the
// PII key is used. An empty plaintext is read from tuple.Reader.
func RunEncrypt(
	ctx context.Context,
	envelopeUseCase cryptoUseCase.EnvelopeUseCase,
	tuple IOTuple,
	plaintext string,
	pii bool,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	plaintext, err := readValue(tuple, plaintext, "plaintext")
	if err != nil {
		return err
	}

	encrypt := envelopeUseCase.Encrypt
	if pii {
		encrypt = envelopeUseCase.EncryptPII
	}

	envelope, err := encrypt(ctx, plaintext)
	if err != nil {
		return fmt.Errorf("failed to encrypt: %w", err)
	}

	return writeResult(tuple.Writer, format, [][2]string{{"envelope", envelope}})
}

// RunDecrypt opens an envelope produced by RunEncrypt with the same pii setting.
func RunDecrypt(
	ctx context.Context,
	envelopeUseCase cryptoUseCase.EnvelopeUseCase,
	tuple IOTuple,
	envelope string,
	pii bool,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	envelope, err := readValue(tuple, envelope, "envelope")
	if err != nil {
		return err
	}

	decrypt := envelopeUseCase.Decrypt
	if pii {
		decrypt = envelopeUseCase.DecryptPII
	}

	plaintext, err := decrypt(ctx, envelope)
	if err != nil {
		return fmt.Errorf("failed to decrypt: %w", err)
	}

	return writeResult(tuple.Writer, format, [][2]string{{"plaintext", plaintext}})
}
