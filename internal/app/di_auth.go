package app

import (
	"fmt"
	"sync"

	authDomain "github.com/bitesapp/security/internal/auth/domain"
	authHTTP "github.com/bitesapp/security/internal/auth/http"
	authService "github.com/bitesapp/security/internal/auth/service"
)

type authComponents struct {
	passwordService  authService.PasswordService
	hmacService      authService.HMACService
	jwtService       authService.JWTService
	apiKeyService    authService.APIKeyService
	passwordHandler  *authHTTP.PasswordHandler
	signatureHandler *authHTTP.SignatureHandler
	tokenHandler     *authHTTP.TokenHandler
	apiKeyHandler    *authHTTP.APIKeyHandler

	passwordServiceInit  sync.Once
	hmacServiceInit      sync.Once
	jwtServiceInit       sync.Once
	apiKeyServiceInit    sync.Once
	passwordHandlerInit  sync.Once
	signatureHandlerInit sync.Once
	tokenHandlerInit     sync.Once
	apiKeyHandlerInit    sync.Once
}

// PasswordService returns the password hashing service for the configured algorithm.
func (c *Container) PasswordService() (authService.PasswordService, error) {
	var err error
	c.auth.passwordServiceInit.Do(func() {
		c.auth.passwordService, err = c.initPasswordService()
		if err != nil {
			c.initErrors["passwordService"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["passwordService"]; exists {
		return nil, storedErr
	}
	return c.auth.passwordService, nil
}

// HMACService returns the HMAC-SHA256 signing service.
func (c *Container) HMACService() authService.HMACService {
	c.auth.hmacServiceInit.Do(func() {
		c.auth.hmacService = authService.NewHMACService()
	})
	return c.auth.hmacService
}

// JWTService returns the JWT service. The secret is checked per call, so an unset
// JWT_SECRET does not fail here.
func (c *Container) JWTService() (authService.JWTService, error) {
	var err error
	c.auth.jwtServiceInit.Do(func() {
		c.auth.jwtService, err = c.initJWTService()
		if err != nil {
			c.initErrors["jwtService"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["jwtService"]; exists {
		return nil, storedErr
	}
	return c.auth.jwtService, nil
}

// APIKeyService returns the API key service.
func (c *Container) APIKeyService() authService.APIKeyService {
	c.auth.apiKeyServiceInit.Do(func() {
		c.auth.apiKeyService = authService.NewAPIKeyService(c.RandomGenerator())
	})
	return c.auth.apiKeyService
}

// PasswordHandler returns the password HTTP handler.
func (c *Container) PasswordHandler() (*authHTTP.PasswordHandler, error) {
	var err error
	c.auth.passwordHandlerInit.Do(func() {
		var service authService.PasswordService
		service, err = c.PasswordService()
		if err != nil {
			err = fmt.Errorf("failed to get password service for password handler: %w", err)
			c.initErrors["passwordHandler"] = err
			return
		}
		c.auth.passwordHandler = authHTTP.NewPasswordHandler(service, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["passwordHandler"]; exists {
		return nil, storedErr
	}
	return c.auth.passwordHandler, nil
}

// SignatureHandler returns the HMAC signature HTTP handler.
func (c *Container) SignatureHandler() *authHTTP.SignatureHandler {
	c.auth.signatureHandlerInit.Do(func() {
		c.auth.signatureHandler = authHTTP.NewSignatureHandler(c.HMACService(), c.Logger())
	})
	return c.auth.signatureHandler
}

// TokenHandler returns the token verification HTTP handler.
func (c *Container) TokenHandler() (*authHTTP.TokenHandler, error) {
	var err error
	c.auth.tokenHandlerInit.Do(func() {
		var service authService.JWTService
		service, err = c.JWTService()
		if err != nil {
			err = fmt.Errorf("failed to get jwt service for token handler: %w", err)
			c.initErrors["tokenHandler"] = err
			return
		}
		c.auth.tokenHandler = authHTTP.NewTokenHandler(service, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenHandler"]; exists {
		return nil, storedErr
	}
	return c.auth.tokenHandler, nil
}

// APIKeyHandler returns the API key HTTP handler.
func (c *Container) APIKeyHandler() *authHTTP.APIKeyHandler {
	c.auth.apiKeyHandlerInit.Do(func() {
		c.auth.apiKeyHandler = authHTTP.NewAPIKeyHandler(c.APIKeyService(), c.Logger())
	})
	return c.auth.apiKeyHandler
}

// initPasswordService creates the password service, wrapped with metrics if enabled.
func (c *Container) initPasswordService() (authService.PasswordService, error) {
	alg, err := authDomain.ParsePasswordAlgorithm(c.config.PasswordHashAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("PASSWORD_HASH_ALGORITHM %q: %w", c.config.PasswordHashAlgorithm, err)
	}

	baseService, err := authService.NewPasswordService(alg, c.config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to create password service: %w", err)
	}

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for password service: %w", err)
		}
		return authService.NewPasswordServiceWithMetrics(baseService, businessMetrics), nil
	}

	return baseService, nil
}

// initJWTService creates the JWT service, wrapped with metrics if enabled.
func (c *Container) initJWTService() (authService.JWTService, error) {
	baseService := authService.NewJWTService(authService.JWTConfig{
		Secret:     c.config.JWTSecret,
		Expiration: c.config.JWTExpiration,
		Issuer:     c.config.JWTIssuer,
	})

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for jwt service: %w", err)
		}
		return authService.NewJWTServiceWithMetrics(baseService, businessMetrics), nil
	}

	return baseService, nil
}
