package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/bitesapp/security/internal/errors"
	payoutDomain "github.com/bitesapp/security/internal/payout/domain"
	payoutService "github.com/bitesapp/security/internal/payout/service"
)

// GatewayConfig carries the payout gateway settings as read from the environment.
type GatewayConfig struct {
	Key        string
	MerchantID string
}

type payoutSealer struct {
	merchantID string
	cipher     func() (*payoutService.GatewayCipher, error)
	now        func() time.Time
}

// NewPayoutSealer creates a PayoutSealer. The gateway key and merchant id are validated
// on first use and the result is cached.
func NewPayoutSealer(cfg GatewayConfig) PayoutSealer {
	return &payoutSealer{
		merchantID: cfg.MerchantID,
		cipher: sync.OnceValues(func() (*payoutService.GatewayCipher, error) {
			return payoutService.NewGatewayCipher([]byte(cfg.Key), []byte(cfg.MerchantID))
		}),
		now: time.Now,
	}
}

func (p *payoutSealer) Seal(
	ctx context.Context,
	req *payoutDomain.PayoutRequest,
) (*payoutDomain.SealedPayout, error) {
	gatewayCipher, err := p.cipher()
	if err != nil {
		return nil, err
	}

	if req == nil {
		return nil, payoutDomain.ErrInvalidPayoutRequest
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	body := *req
	if body.Reference == "" {
		body.Reference = uuid.Must(uuid.NewV7()).String()
	}
	if body.RequestedAt.IsZero() {
		body.RequestedAt = p.now().UTC()
	}

	payload, err := json.Marshal(&body)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encode payout request")
	}

	return &payoutDomain.SealedPayout{
		MerchantID: p.merchantID,
		EncData:    gatewayCipher.Encrypt(payload),
	}, nil
}

func (p *payoutSealer) Open(
	ctx context.Context,
	sealed *payoutDomain.SealedPayout,
) (*payoutDomain.PayoutRequest, error) {
	gatewayCipher, err := p.cipher()
	if err != nil {
		return nil, err
	}

	if sealed == nil {
		return nil, payoutDomain.ErrInvalidCiphertext
	}
	if sealed.MerchantID != p.merchantID {
		return nil, payoutDomain.ErrMerchantMismatch
	}

	payload, err := gatewayCipher.Decrypt(sealed.EncData)
	if err != nil {
		return nil, err
	}

	var req payoutDomain.PayoutRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, apperrors.Wrap(payoutDomain.ErrInvalidCiphertext, "payload is not a payout request")
	}
	return &req, nil
}
