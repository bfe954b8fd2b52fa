package service

import (
	"context"
	"time"

	authDomain "github.com/bitesapp/security/internal/auth/domain"
	apperrors "github.com/bitesapp/security/internal/errors"
	"github.com/bitesapp/security/internal/metrics"
)

// passwordServiceWithMetrics decorates PasswordService with metrics instrumentation.
type passwordServiceWithMetrics struct {
	next    PasswordService
	metrics metrics.BusinessMetrics
}

// NewPasswordServiceWithMetrics wraps a PasswordService with metrics recording.
func NewPasswordServiceWithMetrics(service PasswordService, m metrics.BusinessMetrics) PasswordService {
	return &passwordServiceWithMetrics{
		next:    service,
		metrics: m,
	}
}

func (p *passwordServiceWithMetrics) Hash(password string) (string, error) {
	start := time.Now()
	hash, err := p.next.Hash(password)
	record(p.metrics, "password_hash", start, metrics.Status(err))
	return hash, err
}

func (p *passwordServiceWithMetrics) Verify(password, hash string) bool {
	start := time.Now()
	ok := p.next.Verify(password, hash)
	record(p.metrics, "password_verify", start, metrics.VerifyStatus(ok, nil))
	return ok
}

// jwtServiceWithMetrics decorates JWTService with metrics instrumentation.
type jwtServiceWithMetrics struct {
	next    JWTService
	metrics metrics.BusinessMetrics
}

// NewJWTServiceWithMetrics wraps a JWTService with metrics recording.
func NewJWTServiceWithMetrics(service JWTService, m metrics.BusinessMetrics) JWTService {
	return &jwtServiceWithMetrics{
		next:    service,
		metrics: m,
	}
}

func (j *jwtServiceWithMetrics) Generate(claims authDomain.Claims, ttl time.Duration) (*authDomain.IssuedToken, error) {
	start := time.Now()
	issued, err := j.next.Generate(claims, ttl)
	record(j.metrics, "token_issue", start, metrics.Status(err))
	return issued, err
}

func (j *jwtServiceWithMetrics) Verify(token string) (authDomain.Claims, error) {
	start := time.Now()
	claims, err := j.next.Verify(token)
	status := metrics.Status(err)
	if err != nil && !isConfigurationError(err) {
		status = metrics.StatusInvalid
	}
	record(j.metrics, "token_verify", start, status)
	return claims, err
}

// The service interfaces are context-free, so metrics are recorded against a
// background context.
func record(m metrics.BusinessMetrics, operation string, start time.Time, status string) {
	metrics.Observe(context.Background(), m, "auth", operation, start, status)
}

func isConfigurationError(err error) bool {
	return apperrors.Is(err, apperrors.ErrConfiguration)
}
