// Package domain defines payout request models and the gateway cipher contract.
package domain

import (
	"github.com/bitesapp/security/internal/errors"
)

// Payout gateway errors.
var (
	// ErrInvalidGatewayKey indicates PAYOUT_GATEWAY_KEY is not exactly 16 bytes.
	ErrInvalidGatewayKey = errors.Wrap(errors.ErrConfiguration, "payout gateway key must be 16 bytes")

	// ErrInvalidMerchantID indicates PAYOUT_GATEWAY_MERCHANT_ID is not exactly 16 bytes.
	ErrInvalidMerchantID = errors.Wrap(errors.ErrConfiguration, "payout gateway merchant id must be 16 bytes")

	// ErrInvalidCiphertext indicates gateway ciphertext that is not valid base64 of
	// whole blocks, or that does not unpad cleanly.
	ErrInvalidCiphertext = errors.Wrap(errors.ErrInvalidFormat, "invalid gateway ciphertext")

	// ErrMerchantMismatch indicates a sealed payout addressed to another merchant.
	ErrMerchantMismatch = errors.Wrap(errors.ErrInvalidInput, "sealed payout belongs to a different merchant")

	// ErrInvalidPayoutRequest indicates a payout request that failed validation.
	ErrInvalidPayoutRequest = errors.Wrap(errors.ErrInvalidInput, "invalid payout request")
)
