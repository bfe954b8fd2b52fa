// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	payoutDomain "github.com/bitesapp/security/internal/payout/domain"
	customValidation "github.com/bitesapp/security/internal/validation"
)

// SealPayoutRequest contains a payout to encrypt for the gateway.
type SealPayoutRequest struct {
	Reference     string `json:"reference"`
	BeneficiaryID string `json:"beneficiary_id"`
	AccountNumber string `json:"account_number"`
	BankCode      string `json:"bank_code"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Narration     string `json:"narration"`
}

// Validate checks that the required fields are present. Field formats are checked by
// the payout domain before sealing.
func (r *SealPayoutRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.BeneficiaryID, validation.Required),
		validation.Field(&r.AccountNumber, validation.Required),
		validation.Field(&r.BankCode, validation.Required),
		validation.Field(&r.Amount, validation.Required),
		validation.Field(&r.Currency, validation.Required),
	)
}

// ToDomain maps the request to a payout request.
func (r *SealPayoutRequest) ToDomain() *payoutDomain.PayoutRequest {
	return &payoutDomain.PayoutRequest{
		Reference:     r.Reference,
		BeneficiaryID: r.BeneficiaryID,
		AccountNumber: r.AccountNumber,
		BankCode:      r.BankCode,
		Amount:        r.Amount,
		Currency:      r.Currency,
		Narration:     r.Narration,
	}
}

// OpenPayoutRequest contains a sealed payout to decrypt.
type OpenPayoutRequest struct {
	MerchantID string `json:"merchant_id"`
	EncData    string `json:"enc_data"`
}

// Validate checks if the open payout request is valid.
func (r *OpenPayoutRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.MerchantID, validation.Required),
		validation.Field(&r.EncData, validation.Required, customValidation.Base64),
	)
}
