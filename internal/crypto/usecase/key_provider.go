package usecase

import (
	"crypto/sha256"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/hkdf"

	cryptoDomain "github.com/bitesapp/security/internal/crypto/domain"
)

// piiKeyInfo is the HKDF info label for the PII subkey derived from ENCRYPTION_KEY.
const piiKeyInfo = "pii-encryption-v1"

// KeyConfig carries the raw key settings as read from the environment.
type KeyConfig struct {
	EncryptionKey    string
	PIIEncryptionKey string
	Algorithm        string
}

type keyProvider struct {
	general   func() (cryptoDomain.SymmetricKey, error)
	pii       func() (cryptoDomain.SymmetricKey, error)
	algorithm func() (cryptoDomain.Algorithm, error)
}

// NewKeyProvider creates a KeyProvider that validates each value on first use and caches
// the outcome, error included, for the life of the process.
//
// When PIIEncryptionKey is empty the PII key is an HKDF-SHA256 subkey of the general key,
// so PII envelopes never share a key with general envelopes.
func NewKeyProvider(cfg KeyConfig) KeyProvider {
	p := &keyProvider{}

	p.general = sync.OnceValues(func() (cryptoDomain.SymmetricKey, error) {
		key, err := cryptoDomain.ParseSymmetricKey(cfg.EncryptionKey)
		if err != nil {
			return nil, fmt.Errorf("ENCRYPTION_KEY: %w", err)
		}
		return key, nil
	})

	p.pii = sync.OnceValues(func() (cryptoDomain.SymmetricKey, error) {
		if cfg.PIIEncryptionKey != "" {
			key, err := cryptoDomain.ParseSymmetricKey(cfg.PIIEncryptionKey)
			if err != nil {
				return nil, fmt.Errorf("PII_ENCRYPTION_KEY: %w", err)
			}
			return key, nil
		}

		general, err := p.general()
		if err != nil {
			return nil, err
		}
		return derivePIIKey(general)
	})

	p.algorithm = sync.OnceValues(func() (cryptoDomain.Algorithm, error) {
		if cfg.Algorithm == "" {
			return cryptoDomain.AESGCM, nil
		}
		alg, err := cryptoDomain.ParseAlgorithm(cfg.Algorithm)
		if err != nil {
			return "", fmt.Errorf("ENCRYPTION_ALGORITHM %q: %w", cfg.Algorithm, err)
		}
		return alg, nil
	})

	return p
}

func (p *keyProvider) GeneralKey() (cryptoDomain.SymmetricKey, error) {
	return p.general()
}

func (p *keyProvider) PIIKey() (cryptoDomain.SymmetricKey, error) {
	return p.pii()
}

func (p *keyProvider) Algorithm() (cryptoDomain.Algorithm, error) {
	return p.algorithm()
}

func derivePIIKey(general cryptoDomain.SymmetricKey) (cryptoDomain.SymmetricKey, error) {
	reader := hkdf.New(sha256.New, general, nil, []byte(piiKeyInfo))

	key := make([]byte, cryptoDomain.KeySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive PII key: %w", err)
	}
	return key, nil
}
