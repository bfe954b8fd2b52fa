package dto

import (
	"time"

	authDomain "github.com/bitesapp/security/internal/auth/domain"
)

// HashPasswordResponse contains a password hash.
type HashPasswordResponse struct {
	Hash string `json:"hash"`
}

// VerifyResponse reports the outcome of a password, signature or API key check.
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// SignResponse contains an HMAC-SHA256 signature.
type SignResponse struct {
	Signature string `json:"signature"`
}

// VerifyTokenResponse contains the caller claims of a verified token.
type VerifyTokenResponse struct {
	Claims authDomain.Claims `json:"claims"`
}

// APIKeyResponse contains a freshly generated API key and its storage hash.
type APIKeyResponse struct {
	APIKey    string    `json:"api_key"`
	Hash      string    `json:"hash"`
	CreatedAt time.Time `json:"created_at"`
}
