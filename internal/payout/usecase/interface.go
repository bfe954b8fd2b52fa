// Package usecase seals payout requests for the external payout gateway.
package usecase

import (
	"context"

	payoutDomain "github.com/bitesapp/security/internal/payout/domain"
)

// PayoutSealer turns payout requests into the gateway's encrypted wire form.
type PayoutSealer interface {
	// Seal validates req, assigns a reference when missing and encrypts its JSON
	// encoding. Gateway configuration is checked before any encryption, so a bad key
	// or merchant id fails before a request could reach the network.
	Seal(ctx context.Context, req *payoutDomain.PayoutRequest) (*payoutDomain.SealedPayout, error)

	// Open decrypts a sealed payout addressed to the configured merchant.
	Open(ctx context.Context, sealed *payoutDomain.SealedPayout) (*payoutDomain.PayoutRequest, error)
}
