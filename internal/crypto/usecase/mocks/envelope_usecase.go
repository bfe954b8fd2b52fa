// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEnvelopeUseCase is a mock implementation of EnvelopeUseCase for testing.
type MockEnvelopeUseCase struct {
	mock.Mock
}

// Encrypt mocks the Encrypt method of EnvelopeUseCase.
func (m *MockEnvelopeUseCase) Encrypt(ctx context.Context, plaintext string) (string, error) {
	args := m.Called(ctx, plaintext)
	return args.String(0), args.Error(1)
}

// Decrypt mocks the Decrypt method of EnvelopeUseCase.
func (m *MockEnvelopeUseCase) Decrypt(ctx context.Context, envelope string) (string, error) {
	args := m.Called(ctx, envelope)
	return args.String(0), args.Error(1)
}

// EncryptWithKey mocks the EncryptWithKey method of EnvelopeUseCase.
func (m *MockEnvelopeUseCase) EncryptWithKey(ctx context.Context, plaintext, key string) (string, error) {
	args := m.Called(ctx, plaintext, key)
	return args.String(0), args.Error(1)
}

// DecryptWithKey mocks the DecryptWithKey method of EnvelopeUseCase.
func (m *MockEnvelopeUseCase) DecryptWithKey(ctx context.Context, envelope, key string) (string, error) {
	args := m.Called(ctx, envelope, key)
	return args.String(0), args.Error(1)
}

// EncryptPII mocks the EncryptPII method of EnvelopeUseCase.
func (m *MockEnvelopeUseCase) EncryptPII(ctx context.Context, plaintext string) (string, error) {
	args := m.Called(ctx, plaintext)
	return args.String(0), args.Error(1)
}

// DecryptPII mocks the DecryptPII method of EnvelopeUseCase.
func (m *MockEnvelopeUseCase) DecryptPII(ctx context.Context, envelope string) (string, error) {
	args := m.Called(ctx, envelope)
	return args.String(0), args.Error(1)
}
