package app

import (
	"fmt"
	"sync"

	payoutHTTP "github.com/bitesapp/security/internal/payout/http"
	payoutUseCase "github.com/bitesapp/security/internal/payout/usecase"
)

type payoutComponents struct {
	sealer  payoutUseCase.PayoutSealer
	handler *payoutHTTP.PayoutHandler

	sealerInit  sync.Once
	handlerInit sync.Once
}

// PayoutSealer returns the gateway payout sealer. Gateway settings are validated on first use.
func (c *Container) PayoutSealer() (payoutUseCase.PayoutSealer, error) {
	var err error
	c.payout.sealerInit.Do(func() {
		c.payout.sealer, err = c.initPayoutSealer()
		if err != nil {
			c.initErrors["payoutSealer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["payoutSealer"]; exists {
		return nil, storedErr
	}
	return c.payout.sealer, nil
}

// PayoutHandler returns the payout HTTP handler.
func (c *Container) PayoutHandler() (*payoutHTTP.PayoutHandler, error) {
	var err error
	c.payout.handlerInit.Do(func() {
		var sealer payoutUseCase.PayoutSealer
		sealer, err = c.PayoutSealer()
		if err != nil {
			err = fmt.Errorf("failed to get payout sealer for payout handler: %w", err)
			c.initErrors["payoutHandler"] = err
			return
		}
		c.payout.handler = payoutHTTP.NewPayoutHandler(sealer, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["payoutHandler"]; exists {
		return nil, storedErr
	}
	return c.payout.handler, nil
}

// initPayoutSealer creates the payout sealer, wrapped with metrics if enabled.
func (c *Container) initPayoutSealer() (payoutUseCase.PayoutSealer, error) {
	baseSealer := payoutUseCase.NewPayoutSealer(payoutUseCase.GatewayConfig{
		Key:        c.config.PayoutGatewayKey,
		MerchantID: c.config.PayoutGatewayMerchantID,
	})

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for payout sealer: %w", err)
		}
		return payoutUseCase.NewPayoutSealerWithMetrics(baseSealer, businessMetrics), nil
	}

	return baseSealer, nil
}
