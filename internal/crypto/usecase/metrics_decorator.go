package usecase

import (
	"context"
	"time"

	"github.com/bitesapp/security/internal/metrics"
)

// envelopeUseCaseWithMetrics decorates EnvelopeUseCase with metrics instrumentation.
type envelopeUseCaseWithMetrics struct {
	next    EnvelopeUseCase
	metrics metrics.BusinessMetrics
}

// NewEnvelopeUseCaseWithMetrics wraps an EnvelopeUseCase with metrics recording.
func NewEnvelopeUseCaseWithMetrics(useCase EnvelopeUseCase, m metrics.BusinessMetrics) EnvelopeUseCase {
	return &envelopeUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (e *envelopeUseCaseWithMetrics) Encrypt(ctx context.Context, plaintext string) (string, error) {
	start := time.Now()
	out, err := e.next.Encrypt(ctx, plaintext)
	e.record(ctx, "envelope_encrypt", start, err)
	return out, err
}

func (e *envelopeUseCaseWithMetrics) Decrypt(ctx context.Context, envelope string) (string, error) {
	start := time.Now()
	out, err := e.next.Decrypt(ctx, envelope)
	e.record(ctx, "envelope_decrypt", start, err)
	return out, err
}

func (e *envelopeUseCaseWithMetrics) EncryptWithKey(ctx context.Context, plaintext, key string) (string, error) {
	start := time.Now()
	out, err := e.next.EncryptWithKey(ctx, plaintext, key)
	e.record(ctx, "envelope_encrypt_with_key", start, err)
	return out, err
}

func (e *envelopeUseCaseWithMetrics) DecryptWithKey(ctx context.Context, envelope, key string) (string, error) {
	start := time.Now()
	out, err := e.next.DecryptWithKey(ctx, envelope, key)
	e.record(ctx, "envelope_decrypt_with_key", start, err)
	return out, err
}

func (e *envelopeUseCaseWithMetrics) EncryptPII(ctx context.Context, plaintext string) (string, error) {
	start := time.Now()
	out, err := e.next.EncryptPII(ctx, plaintext)
	e.record(ctx, "pii_encrypt", start, err)
	return out, err
}

func (e *envelopeUseCaseWithMetrics) DecryptPII(ctx context.Context, envelope string) (string, error) {
	start := time.Now()
	out, err := e.next.DecryptPII(ctx, envelope)
	e.record(ctx, "pii_decrypt", start, err)
	return out, err
}

func (e *envelopeUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	metrics.Observe(ctx, e.metrics, "crypto", operation, start, metrics.Status(err))
}
