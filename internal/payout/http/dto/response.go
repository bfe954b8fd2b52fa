package dto

import (
	"time"

	payoutDomain "github.com/bitesapp/security/internal/payout/domain"
)

// SealedPayoutResponse is the gateway wire form of a sealed payout.
type SealedPayoutResponse struct {
	MerchantID string `json:"merchant_id"`
	EncData    string `json:"enc_data"`
}

// PayoutResponse is a decrypted payout request.
type PayoutResponse struct {
	Reference     string    `json:"reference"`
	BeneficiaryID string    `json:"beneficiary_id"`
	AccountNumber string    `json:"account_number"`
	BankCode      string    `json:"bank_code"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	Narration     string    `json:"narration,omitempty"`
	RequestedAt   time.Time `json:"requested_at"`
}

// MapPayoutToResponse converts a payout request to its response form.
func MapPayoutToResponse(req *payoutDomain.PayoutRequest) PayoutResponse {
	return PayoutResponse{
		Reference:     req.Reference,
		BeneficiaryID: req.BeneficiaryID,
		AccountNumber: req.AccountNumber,
		BankCode:      req.BankCode,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Narration:     req.Narration,
		RequestedAt:   req.RequestedAt,
	}
}
