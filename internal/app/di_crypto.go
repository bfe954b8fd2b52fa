package app

import (
	"fmt"
	"sync"

	cryptoHTTP "github.com/bitesapp/security/internal/crypto/http"
	cryptoService "github.com/bitesapp/security/internal/crypto/service"
	cryptoUseCase "github.com/bitesapp/security/internal/crypto/usecase"
)

type cryptoComponents struct {
	random          cryptoService.RandomGenerator
	aeadManager     cryptoService.AEADManager
	keyProvider     cryptoUseCase.KeyProvider
	envelopeUseCase cryptoUseCase.EnvelopeUseCase
	envelopeHandler *cryptoHTTP.EnvelopeHandler
	randomHandler   *cryptoHTTP.RandomHandler

	randomInit          sync.Once
	aeadManagerInit     sync.Once
	keyProviderInit     sync.Once
	envelopeUseCaseInit sync.Once
	envelopeHandlerInit sync.Once
	randomHandlerInit   sync.Once
}

// RandomGenerator returns the CSPRNG-backed generator shared by tokens and API keys.
func (c *Container) RandomGenerator() cryptoService.RandomGenerator {
	c.crypto.randomInit.Do(func() {
		c.crypto.random = cryptoService.NewRandomGenerator()
	})
	return c.crypto.random
}

// AEADManager returns the AEAD manager service.
func (c *Container) AEADManager() cryptoService.AEADManager {
	c.crypto.aeadManagerInit.Do(func() {
		c.crypto.aeadManager = cryptoService.NewAEADManager()
	})
	return c.crypto.aeadManager
}

// KeyProvider returns the envelope key provider. Keys are validated on first use.
func (c *Container) KeyProvider() cryptoUseCase.KeyProvider {
	c.crypto.keyProviderInit.Do(func() {
		c.crypto.keyProvider = cryptoUseCase.NewKeyProvider(cryptoUseCase.KeyConfig{
			EncryptionKey:    c.config.EncryptionKey,
			PIIEncryptionKey: c.config.PIIEncryptionKey,
			Algorithm:        c.config.EncryptionAlgorithm,
		})
	})
	return c.crypto.keyProvider
}

// EnvelopeUseCase returns the envelope encryption use case.
func (c *Container) EnvelopeUseCase() (cryptoUseCase.EnvelopeUseCase, error) {
	var err error
	c.crypto.envelopeUseCaseInit.Do(func() {
		c.crypto.envelopeUseCase, err = c.initEnvelopeUseCase()
		if err != nil {
			c.initErrors["envelopeUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["envelopeUseCase"]; exists {
		return nil, storedErr
	}
	return c.crypto.envelopeUseCase, nil
}

// EnvelopeHandler returns the envelope HTTP handler.
func (c *Container) EnvelopeHandler() (*cryptoHTTP.EnvelopeHandler, error) {
	var err error
	c.crypto.envelopeHandlerInit.Do(func() {
		var useCase cryptoUseCase.EnvelopeUseCase
		useCase, err = c.EnvelopeUseCase()
		if err != nil {
			err = fmt.Errorf("failed to get envelope use case for envelope handler: %w", err)
			c.initErrors["envelopeHandler"] = err
			return
		}
		c.crypto.envelopeHandler = cryptoHTTP.NewEnvelopeHandler(useCase, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["envelopeHandler"]; exists {
		return nil, storedErr
	}
	return c.crypto.envelopeHandler, nil
}

// RandomHandler returns the random token HTTP handler.
func (c *Container) RandomHandler() *cryptoHTTP.RandomHandler {
	c.crypto.randomHandlerInit.Do(func() {
		c.crypto.randomHandler = cryptoHTTP.NewRandomHandler(c.RandomGenerator(), c.Logger())
	})
	return c.crypto.randomHandler
}

// initEnvelopeUseCase creates the envelope use case, wrapped with metrics if enabled.
func (c *Container) initEnvelopeUseCase() (cryptoUseCase.EnvelopeUseCase, error) {
	baseUseCase := cryptoUseCase.NewEnvelopeUseCase(c.KeyProvider(), c.AEADManager())

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for envelope use case: %w", err)
		}
		return cryptoUseCase.NewEnvelopeUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
