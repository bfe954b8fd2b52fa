package dto

// EncryptResponse contains a sealed envelope in "iv:authTag:ciphertext" form.
type EncryptResponse struct {
	Envelope string `json:"envelope"`
}

// DecryptResponse contains the recovered plaintext.
type DecryptResponse struct {
	Plaintext string `json:"plaintext"`
}

// RandomTokenResponse contains a hex token.
type RandomTokenResponse struct {
	Token string `json:"token"`
}

// RandomNumberResponse contains a random integer.
type RandomNumberResponse struct {
	Number int64 `json:"number"`
}

// SessionIDResponse contains a session identifier.
type SessionIDResponse struct {
	SessionID string `json:"session_id"`
}
