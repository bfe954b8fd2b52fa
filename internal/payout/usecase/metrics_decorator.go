package usecase

import (
	"context"
	"time"

	"github.com/bitesapp/security/internal/metrics"
	payoutDomain "github.com/bitesapp/security/internal/payout/domain"
)

// payoutSealerWithMetrics decorates PayoutSealer with metrics instrumentation.
type payoutSealerWithMetrics struct {
	next    PayoutSealer
	metrics metrics.BusinessMetrics
}

// NewPayoutSealerWithMetrics wraps a PayoutSealer with metrics recording.
func NewPayoutSealerWithMetrics(sealer PayoutSealer, m metrics.BusinessMetrics) PayoutSealer {
	return &payoutSealerWithMetrics{
		next:    sealer,
		metrics: m,
	}
}

func (p *payoutSealerWithMetrics) Seal(
	ctx context.Context,
	req *payoutDomain.PayoutRequest,
) (*payoutDomain.SealedPayout, error) {
	start := time.Now()
	sealed, err := p.next.Seal(ctx, req)
	metrics.Observe(ctx, p.metrics, "payout", "payout_seal", start, metrics.Status(err))
	return sealed, err
}

func (p *payoutSealerWithMetrics) Open(
	ctx context.Context,
	sealed *payoutDomain.SealedPayout,
) (*payoutDomain.PayoutRequest, error) {
	start := time.Now()
	req, err := p.next.Open(ctx, sealed)
	metrics.Observe(ctx, p.metrics, "payout", "payout_open", start, metrics.Status(err))
	return req, err
}
