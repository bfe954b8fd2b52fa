package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	authDomain "github.com/bitesapp/security/internal/auth/domain"
)

type hmacService struct{}

// NewHMACService creates an HMAC-SHA256 signing service.
func NewHMACService() HMACService {
	return &hmacService{}
}

func (h *hmacService) Sign(data, secret string) (string, error) {
	if secret == "" {
		return "", authDomain.ErrEmptySecret
	}
	return hex.EncodeToString(h.mac(data, secret)), nil
}

// Verify decodes the signature before comparing so that only well-formed 32-byte
// codes reach hmac.Equal.
func (h *hmacService) Verify(data, signature, secret string) bool {
	if secret == "" || len(signature) != authDomain.HMACSignatureLength {
		return false
	}

	provided, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	return hmac.Equal(h.mac(data, secret), provided)
}

func (h *hmacService) mac(data, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(data))
	return mac.Sum(nil)
}
