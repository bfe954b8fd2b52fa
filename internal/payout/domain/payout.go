package domain

import (
	"time"

	validation "github.com/jellydator/validation"

	customValidation "github.com/bitesapp/security/internal/validation"
)

const (
	// GatewayKeySize is the AES-128 key length the gateway mandates.
	GatewayKeySize = 16

	// MerchantIDSize is the merchant identifier length; the gateway uses it as the IV.
	MerchantIDSize = 16
)

// PayoutRequest is the body sent to the payout gateway for one transfer.
//
// Amount is in minor units (cents) to avoid floating point rounding.
type PayoutRequest struct {
	Reference     string    `json:"reference"`
	BeneficiaryID string    `json:"beneficiaryId"`
	AccountNumber string    `json:"accountNumber"`
	BankCode      string    `json:"bankCode"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	Narration     string    `json:"narration,omitempty"`
	RequestedAt   time.Time `json:"requestedAt"`
}

// Validate checks the request fields before it is sealed.
func (r *PayoutRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.BeneficiaryID, validation.Required, customValidation.NotBlank),
		validation.Field(&r.AccountNumber, validation.Required, customValidation.NoWhitespace),
		validation.Field(&r.BankCode, validation.Required, customValidation.NoWhitespace),
		validation.Field(&r.Amount, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Currency, validation.Required, customValidation.CurrencyCode),
		validation.Field(&r.Narration, validation.Length(0, 140)),
	)
	if err != nil {
		return customValidation.WrapValidationError(err)
	}
	return nil
}

// SealedPayout is the wire form the gateway accepts: the merchant in clear text and
// the encrypted request body.
type SealedPayout struct {
	MerchantID string `json:"merchantId"`
	EncData    string `json:"encData"`
}
