package service

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	authDomain "github.com/bitesapp/security/internal/auth/domain"
	cryptoService "github.com/bitesapp/security/internal/crypto/service"
)

// apiKeyService implements APIKeyService on top of the secure random generator.
type apiKeyService struct {
	random cryptoService.RandomGenerator
}

// NewAPIKeyService creates an APIKeyService.
func NewAPIKeyService(random cryptoService.RandomGenerator) APIKeyService {
	return &apiKeyService{random: random}
}

func (a *apiKeyService) Generate() (string, error) {
	token, err := a.random.Token(authDomain.APIKeyRandomBytes)
	if err != nil {
		return "", err
	}
	return authDomain.APIKeyPrefix + token, nil
}

func (a *apiKeyService) Validate(key string) bool {
	token, ok := strings.CutPrefix(key, authDomain.APIKeyPrefix)
	if !ok || len(token) != authDomain.APIKeyRandomBytes*2 {
		return false
	}
	for i := 0; i < len(token); i++ {
		c := token[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// Hash returns the SHA-256 digest of key as hex. API keys carry 256 bits of entropy,
// so a fast hash is enough for lookup storage.
func (a *apiKeyService) Hash(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}
