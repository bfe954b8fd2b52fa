package app

import (
	"sync"

	protectionHTTP "github.com/bitesapp/security/internal/protection/http"
	protectionService "github.com/bitesapp/security/internal/protection/service"
	threatDomain "github.com/bitesapp/security/internal/threat/domain"
	threatHTTP "github.com/bitesapp/security/internal/threat/http"
	threatService "github.com/bitesapp/security/internal/threat/service"
)

type protectionComponents struct {
	masker        protectionService.Masker
	detector      threatService.Detector
	dataHandler   *protectionHTTP.DataHandler
	threatHandler *threatHTTP.ThreatHandler

	maskerInit        sync.Once
	detectorInit      sync.Once
	dataHandlerInit   sync.Once
	threatHandlerInit sync.Once
}

// Masker returns the masker for the default field policy. The logger depends on it, so
// it must never log during construction.
func (c *Container) Masker() protectionService.Masker {
	c.protection.maskerInit.Do(func() {
		c.protection.masker = protectionService.NewMasker(nil)
	})
	return c.protection.masker
}

// Detector returns the suspicious-request detector.
func (c *Container) Detector() threatService.Detector {
	c.protection.detectorInit.Do(func() {
		c.protection.detector = threatService.NewDetector()
	})
	return c.protection.detector
}

// DataHandler returns the masking and anonymization HTTP handler.
func (c *Container) DataHandler() *protectionHTTP.DataHandler {
	c.protection.dataHandlerInit.Do(func() {
		c.protection.dataHandler = protectionHTTP.NewDataHandler(c.Masker(), c.Logger())
	})
	return c.protection.dataHandler
}

// ThreatHandler returns the request inspection HTTP handler.
func (c *Container) ThreatHandler() *threatHTTP.ThreatHandler {
	c.protection.threatHandlerInit.Do(func() {
		c.protection.threatHandler = threatHTTP.NewThreatHandler(
			c.Detector(),
			threatDomain.DefaultHeaderPolicy(),
			c.Logger(),
		)
	})
	return c.protection.threatHandler
}
