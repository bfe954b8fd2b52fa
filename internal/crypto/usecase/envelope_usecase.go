package usecase

import (
	"context"

	cryptoDomain "github.com/bitesapp/security/internal/crypto/domain"
	cryptoService "github.com/bitesapp/security/internal/crypto/service"
)

type envelopeUseCase struct {
	keys        KeyProvider
	aeadManager cryptoService.AEADManager
}

// NewEnvelopeUseCase creates an EnvelopeUseCase over the given key provider.
func NewEnvelopeUseCase(keys KeyProvider, aeadManager cryptoService.AEADManager) EnvelopeUseCase {
	return &envelopeUseCase{
		keys:        keys,
		aeadManager: aeadManager,
	}
}

func (e *envelopeUseCase) Encrypt(ctx context.Context, plaintext string) (string, error) {
	key, err := e.keys.GeneralKey()
	if err != nil {
		return "", err
	}
	return e.seal(key, plaintext)
}

func (e *envelopeUseCase) Decrypt(ctx context.Context, envelope string) (string, error) {
	key, err := e.keys.GeneralKey()
	if err != nil {
		return "", err
	}
	return e.open(key, envelope)
}

func (e *envelopeUseCase) EncryptWithKey(ctx context.Context, plaintext, key string) (string, error) {
	symKey, err := cryptoDomain.ParseSymmetricKey(key)
	if err != nil {
		return "", err
	}
	return e.seal(symKey, plaintext)
}

func (e *envelopeUseCase) DecryptWithKey(ctx context.Context, envelope, key string) (string, error) {
	symKey, err := cryptoDomain.ParseSymmetricKey(key)
	if err != nil {
		return "", err
	}
	return e.open(symKey, envelope)
}

func (e *envelopeUseCase) EncryptPII(ctx context.Context, plaintext string) (string, error) {
	key, err := e.keys.PIIKey()
	if err != nil {
		return "", err
	}
	return e.seal(key, plaintext)
}

func (e *envelopeUseCase) DecryptPII(ctx context.Context, envelope string) (string, error) {
	key, err := e.keys.PIIKey()
	if err != nil {
		return "", err
	}
	return e.open(key, envelope)
}

func (e *envelopeUseCase) seal(key cryptoDomain.SymmetricKey, plaintext string) (string, error) {
	if plaintext == "" {
		return "", cryptoDomain.ErrEmptyPlaintext
	}

	cipher, err := e.cipher(key)
	if err != nil {
		return "", err
	}

	sealed, nonce, err := cipher.Encrypt([]byte(plaintext), nil)
	if err != nil {
		return "", err
	}

	envelope, err := cryptoDomain.NewEnvelope(nonce, sealed)
	if err != nil {
		return "", err
	}
	return envelope.String(), nil
}

func (e *envelopeUseCase) open(key cryptoDomain.SymmetricKey, content string) (string, error) {
	envelope, err := cryptoDomain.ParseEnvelope(content)
	if err != nil {
		return "", err
	}

	cipher, err := e.cipher(key)
	if err != nil {
		return "", err
	}

	plaintext, err := cipher.Decrypt(envelope.Sealed(), envelope.IV, nil)
	if err != nil {
		return "", cryptoDomain.ErrDecryptionFailed
	}
	return string(plaintext), nil
}

func (e *envelopeUseCase) cipher(key cryptoDomain.SymmetricKey) (cryptoService.AEAD, error) {
	alg, err := e.keys.Algorithm()
	if err != nil {
		return nil, err
	}
	return e.aeadManager.CreateCipher(key, alg)
}
