// Package http provides HTTP server implementation and request handlers.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/bitesapp/security/internal/auth/http"
	authService "github.com/bitesapp/security/internal/auth/service"
	"github.com/bitesapp/security/internal/config"
	cryptoHTTP "github.com/bitesapp/security/internal/crypto/http"
	"github.com/bitesapp/security/internal/metrics"
	payoutHTTP "github.com/bitesapp/security/internal/payout/http"
	protectionHTTP "github.com/bitesapp/security/internal/protection/http"
	threatDomain "github.com/bitesapp/security/internal/threat/domain"
	threatHTTP "github.com/bitesapp/security/internal/threat/http"
	threatService "github.com/bitesapp/security/internal/threat/service"
)

// readinessTimeout bounds all readiness checks of one probe.
const readinessTimeout = 2 * time.Second

// ReadinessCheck reports whether one component can serve traffic.
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// Handlers groups the domain handlers mounted under /v1.
type Handlers struct {
	Envelope  *cryptoHTTP.EnvelopeHandler
	Random    *cryptoHTTP.RandomHandler
	Password  *authHTTP.PasswordHandler
	Signature *authHTTP.SignatureHandler
	Token     *authHTTP.TokenHandler
	APIKey    *authHTTP.APIKeyHandler
	Data      *protectionHTTP.DataHandler
	Payout    *payoutHTTP.PayoutHandler
	Threat    *threatHTTP.ThreatHandler
}

// Server represents the HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
	checks []ReadinessCheck
}

// NewServer creates a new HTTP server. Each check is run by the readiness probe.
func NewServer(
	host string,
	port int,
	logger *slog.Logger,
	checks ...ReadinessCheck,
) *Server {
	return &Server{
		logger: logger,
		checks: checks,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter configures the Gin router with all routes and middleware.
func (s *Server) SetupRouter(
	cfg *config.Config,
	handlers Handlers,
	jwtService authService.JWTService,
	detector threatService.Detector,
	headerPolicy threatDomain.HeaderPolicy,
	businessMetrics metrics.BusinessMetrics,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.Use(threatHTTP.SecurityHeadersMiddleware(headerPolicy))
	router.Use(BodyLimitMiddleware(cfg.MaxRequestBodyBytes))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.ThreatDetectionEnabled {
		router.Use(threatHTTP.ThreatGuardMiddleware(detector, businessMetrics, s.logger))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	v1.Use(authHTTP.AuthenticationMiddleware(jwtService, s.logger))
	if cfg.RateLimitEnabled {
		v1.Use(authHTTP.RateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	cryptoGroup := v1.Group("/crypto")
	{
		cryptoGroup.POST("/encrypt", handlers.Envelope.EncryptHandler)
		cryptoGroup.POST("/decrypt", handlers.Envelope.DecryptHandler)
	}

	signatures := v1.Group("/signatures")
	{
		signatures.POST("/sign", handlers.Signature.SignHandler)
		signatures.POST("/verify", handlers.Signature.VerifyHandler)
	}

	passwords := v1.Group("/passwords")
	if cfg.RateLimitPasswordEnabled {
		passwords.Use(authHTTP.IPRateLimitMiddleware(
			cfg.RateLimitPasswordRequestsPerSec,
			cfg.RateLimitPasswordBurst,
			s.logger,
		))
	}
	{
		passwords.POST("/hash", handlers.Password.HashHandler)
		passwords.POST("/verify", handlers.Password.VerifyHandler)
	}

	v1.POST("/tokens/verify", handlers.Token.VerifyHandler)

	data := v1.Group("/data")
	{
		data.POST("/mask", handlers.Data.MaskHandler)
		data.POST("/anonymize", handlers.Data.AnonymizeHandler)
		data.POST("/mask-card", handlers.Data.MaskCardHandler)
	}

	random := v1.Group("/random")
	{
		random.POST("/token", handlers.Random.TokenHandler)
		random.POST("/number", handlers.Random.NumberHandler)
		random.POST("/session-id", handlers.Random.SessionIDHandler)
		random.POST("/api-key", handlers.APIKey.GenerateHandler)
	}

	v1.POST("/api-keys/validate", handlers.APIKey.ValidateHandler)

	payouts := v1.Group("/payouts")
	{
		payouts.POST("/seal", handlers.Payout.SealHandler)
		payouts.POST("/open", handlers.Payout.OpenHandler)
	}

	v1.POST("/threats/inspect", handlers.Threat.InspectHandler)
	v1.GET("/security-headers", handlers.Threat.SecurityHeadersHandler)

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not initialized, call SetupRouter first")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler runs every readiness check and reports per-component status.
func (s *Server) readinessHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	ready := true
	components := make(map[string]string, len(s.checks))
	for _, check := range s.checks {
		if err := check.Check(ctx); err != nil {
			ready = false
			components[check.Name] = "error"
			s.logger.Warn("readiness check failed",
				slog.String("component", check.Name),
				slog.Any("error", err),
			)
			continue
		}
		components[check.Name] = "ok"
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}
