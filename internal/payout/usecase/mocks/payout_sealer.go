// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	payoutDomain "github.com/bitesapp/security/internal/payout/domain"
)

// MockPayoutSealer is a mock implementation of PayoutSealer for testing.
type MockPayoutSealer struct {
	mock.Mock
}

// Seal mocks the Seal method of PayoutSealer.
func (m *MockPayoutSealer) Seal(
	ctx context.Context,
	req *payoutDomain.PayoutRequest,
) (*payoutDomain.SealedPayout, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payoutDomain.SealedPayout), args.Error(1)
}

// Open mocks the Open method of PayoutSealer.
func (m *MockPayoutSealer) Open(
	ctx context.Context,
	sealed *payoutDomain.SealedPayout,
) (*payoutDomain.PayoutRequest, error) {
	args := m.Called(ctx, sealed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payoutDomain.PayoutRequest), args.Error(1)
}
