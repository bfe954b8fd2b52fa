// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"
)

// maxRecordFields bounds the size of a record accepted for masking.
const maxRecordFields = 512

// RecordRequest contains a flat record to mask or anonymize.
type RecordRequest struct {
	Data map[string]any `json:"data"`
}

// Validate checks if the record request is valid.
func (r *RecordRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Data, validation.NotNil, validation.Length(0, maxRecordFields)),
	)
}

// MaskCardRequest contains a card number to truncate.
type MaskCardRequest struct {
	CardNumber string `json:"card_number"`
}

// Validate checks if the mask card request is valid. Malformed numbers are not an
// error here: they produce the invalid-card marker.
func (r *MaskCardRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CardNumber, validation.Length(0, 64)),
	)
}
