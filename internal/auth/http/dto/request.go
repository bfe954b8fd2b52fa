// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/bitesapp/security/internal/validation"
)

const (
	// maxPasswordBytes matches the bcrypt input limit so both algorithms accept the same passwords.
	maxPasswordBytes = 72

	maxSignedDataBytes = 1 << 20
)

// HashPasswordRequest contains the password to hash.
type HashPasswordRequest struct {
	Password string `json:"password"`
}

// Validate checks if the hash password request is valid.
func (r *HashPasswordRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Password,
			validation.Required,
			customValidation.MaxBytes(maxPasswordBytes),
		),
	)
}

// VerifyPasswordRequest contains a password and the stored hash to check it against.
type VerifyPasswordRequest struct {
	Password string `json:"password"`
	Hash     string `json:"hash"`
}

// Validate checks if the verify password request is valid.
func (r *VerifyPasswordRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Password, validation.Required, customValidation.MaxBytes(maxPasswordBytes)),
		validation.Field(&r.Hash, validation.Required, customValidation.NoWhitespace),
	)
}

// SignRequest contains the data and secret for an HMAC signature.
type SignRequest struct {
	Data   string `json:"data"`
	Secret string `json:"secret"`
}

// Validate checks if the sign request is valid.
func (r *SignRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Data, customValidation.MaxBytes(maxSignedDataBytes)),
		validation.Field(&r.Secret, validation.Required),
	)
}

// VerifySignatureRequest contains data, the claimed signature and the secret.
type VerifySignatureRequest struct {
	Data      string `json:"data"`
	Signature string `json:"signature"`
	Secret    string `json:"secret"`
}

// Validate checks if the verify signature request is valid.
//
// The signature format is not validated here: a malformed signature is a failed
// verification, not a bad request.
func (r *VerifySignatureRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Data, customValidation.MaxBytes(maxSignedDataBytes)),
		validation.Field(&r.Signature, validation.Required),
		validation.Field(&r.Secret, validation.Required),
	)
}

// VerifyTokenRequest contains a token to verify.
type VerifyTokenRequest struct {
	Token string `json:"token"`
}

// Validate checks if the verify token request is valid.
func (r *VerifyTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Token, validation.Required, customValidation.NoWhitespace),
	)
}

// ValidateAPIKeyRequest contains an API key to check.
type ValidateAPIKeyRequest struct {
	APIKey string `json:"api_key"`
}

// Validate checks if the validate API key request is valid.
func (r *ValidateAPIKeyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.APIKey, validation.Required),
	)
}
