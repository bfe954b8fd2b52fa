// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/bitesapp/security/internal/validation"
)

// Scope selects which process key an envelope is sealed with.
type Scope string

const (
	ScopeGeneral Scope = "general"
	ScopePII     Scope = "pii"
)

const (
	maxPlaintextBytes = 1 << 20

	// MaxTokenBytes bounds the random token size accepted over HTTP.
	MaxTokenBytes = 256
)

// EncryptRequest contains plaintext to seal into an envelope.
type EncryptRequest struct {
	Plaintext string `json:"plaintext"`
	Scope     Scope  `json:"scope"`
}

// Validate checks if the encrypt request is valid.
func (r *EncryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Plaintext,
			validation.Required,
			customValidation.MaxBytes(maxPlaintextBytes),
		),
		validation.Field(&r.Scope, validation.In(ScopeGeneral, ScopePII)),
	)
}

// DecryptRequest contains an envelope to open.
type DecryptRequest struct {
	Envelope string `json:"envelope"`
	Scope    Scope  `json:"scope"`
}

// Validate checks if the decrypt request is valid.
//
// Only presence is checked here. The envelope shape is checked by the use case so
// every malformed envelope produces the same format error.
func (r *DecryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Envelope, validation.Required),
		validation.Field(&r.Scope, validation.In(ScopeGeneral, ScopePII)),
	)
}

// RandomTokenRequest selects the number of random bytes to generate.
type RandomTokenRequest struct {
	Bytes int `json:"bytes"`
}

// Validate checks if the random token request is valid. Zero selects the default size.
func (r *RandomTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Bytes, validation.Min(0), validation.Max(MaxTokenBytes)),
	)
}

// RandomNumberRequest selects an inclusive range. Both zero selects the 6-digit default.
type RandomNumberRequest struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Validate checks if the random number request is valid.
func (r *RandomNumberRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Max, validation.Min(r.Min).Error("must be greater than or equal to min")),
	)
}
