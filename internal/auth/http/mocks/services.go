// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/bitesapp/security/internal/auth/domain"
)

// MockPasswordService is a mock implementation of PasswordService for testing.
type MockPasswordService struct {
	mock.Mock
}

// Hash mocks the Hash method of PasswordService.
func (m *MockPasswordService) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

// Verify mocks the Verify method of PasswordService.
func (m *MockPasswordService) Verify(password, hash string) bool {
	args := m.Called(password, hash)
	return args.Bool(0)
}

// MockJWTService is a mock implementation of JWTService for testing.
type MockJWTService struct {
	mock.Mock
}

// Generate mocks the Generate method of JWTService.
func (m *MockJWTService) Generate(claims authDomain.Claims, ttl time.Duration) (*authDomain.IssuedToken, error) {
	args := m.Called(claims, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.IssuedToken), args.Error(1)
}

// Verify mocks the Verify method of JWTService.
func (m *MockJWTService) Verify(token string) (authDomain.Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(authDomain.Claims), args.Error(1)
}
