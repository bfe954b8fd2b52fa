// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	threatDomain "github.com/bitesapp/security/internal/threat/domain"
	customValidation "github.com/bitesapp/security/internal/validation"
)

const maxInspectBodyBytes = 1 << 20

// InspectRequest describes a request captured by another service for inspection.
type InspectRequest struct {
	Method  string            `json:"method"`
	Path    string            `json:"path"`
	Query   string            `json:"query"`
	Headers map[string]string `json:"headers"`
	Body    string            `json:"body"`
}

// Validate checks if the inspect request is valid.
func (r *InspectRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Method, validation.Length(0, 16)),
		validation.Field(&r.Path, validation.Required, validation.Length(1, 8192)),
		validation.Field(&r.Query, validation.Length(0, 8192)),
		validation.Field(&r.Headers, validation.Length(0, 100)),
		validation.Field(&r.Body, customValidation.MaxBytes(maxInspectBodyBytes)),
	)
}

// ToDomain maps the request to the detector input.
func (r *InspectRequest) ToDomain() threatDomain.Request {
	return threatDomain.Request{
		Method:  r.Method,
		Path:    r.Path,
		Query:   r.Query,
		Headers: r.Headers,
		Body:    r.Body,
	}
}
