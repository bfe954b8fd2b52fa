package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/bitesapp/security/internal/auth/domain"
	authHTTP "github.com/bitesapp/security/internal/auth/http"
	authService "github.com/bitesapp/security/internal/auth/service"
	"github.com/bitesapp/security/internal/config"
	cryptoHTTP "github.com/bitesapp/security/internal/crypto/http"
	cryptoDTO "github.com/bitesapp/security/internal/crypto/http/dto"
	cryptoService "github.com/bitesapp/security/internal/crypto/service"
	cryptoUseCase "github.com/bitesapp/security/internal/crypto/usecase"
	"github.com/bitesapp/security/internal/metrics"
	payoutHTTP "github.com/bitesapp/security/internal/payout/http"
	payoutUseCase "github.com/bitesapp/security/internal/payout/usecase"
	protectionHTTP "github.com/bitesapp/security/internal/protection/http"
	protectionService "github.com/bitesapp/security/internal/protection/service"
	threatDomain "github.com/bitesapp/security/internal/threat/domain"
	threatHTTP "github.com/bitesapp/security/internal/threat/http"
	threatService "github.com/bitesapp/security/internal/threat/service"
)

const (
	testEncryptionKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
	testJWTSecret     = "router-test-secret-of-at-least-32-bytes"
)

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createTestServer creates a test server whose only readiness check fails.
func createTestServer() *Server {
	return NewServer("localhost", 8080, discardLogger(), ReadinessCheck{
		Name:  "encryption_key",
		Check: func(context.Context) error { return errors.New("not configured") },
	})
}

func testConfig() *config.Config {
	return &config.Config{
		EncryptionKey:                   testEncryptionKey,
		JWTSecret:                       testJWTSecret,
		JWTExpiration:                   time.Hour,
		JWTIssuer:                       "bites-security",
		RateLimitEnabled:                true,
		RateLimitRequestsPerSec:         100,
		RateLimitBurst:                  100,
		RateLimitPasswordEnabled:        true,
		RateLimitPasswordRequestsPerSec: 0.001,
		RateLimitPasswordBurst:          1,
		ThreatDetectionEnabled:          true,
		MaxRequestBodyBytes:             1024,
		MetricsNamespace:                "test_app",
	}
}

// createFullServer wires every handler against real services.
func createFullServer(t *testing.T, cfg *config.Config) (*Server, authService.JWTService) {
	t.Helper()
	logger := discardLogger()

	random := cryptoService.NewRandomGenerator()
	keys := cryptoUseCase.NewKeyProvider(cryptoUseCase.KeyConfig{EncryptionKey: cfg.EncryptionKey})
	envelopes := cryptoUseCase.NewEnvelopeUseCase(keys, cryptoService.NewAEADManager())
	passwords, err := authService.NewPasswordService(authDomain.Bcrypt, 4)
	require.NoError(t, err)
	jwtService := authService.NewJWTService(authService.JWTConfig{
		Secret:     cfg.JWTSecret,
		Expiration: cfg.JWTExpiration,
		Issuer:     cfg.JWTIssuer,
	})
	detector := threatService.NewDetector()
	policy := threatDomain.DefaultHeaderPolicy()

	handlers := Handlers{
		Envelope:  cryptoHTTP.NewEnvelopeHandler(envelopes, logger),
		Random:    cryptoHTTP.NewRandomHandler(random, logger),
		Password:  authHTTP.NewPasswordHandler(passwords, logger),
		Signature: authHTTP.NewSignatureHandler(authService.NewHMACService(), logger),
		Token:     authHTTP.NewTokenHandler(jwtService, logger),
		APIKey:    authHTTP.NewAPIKeyHandler(authService.NewAPIKeyService(random), logger),
		Data:      protectionHTTP.NewDataHandler(protectionService.NewMasker(nil), logger),
		Payout: payoutHTTP.NewPayoutHandler(payoutUseCase.NewPayoutSealer(payoutUseCase.GatewayConfig{
			Key:        "0123456789abcdef",
			MerchantID: "MRCH000000000042",
		}), logger),
		Threat: threatHTTP.NewThreatHandler(detector, policy, logger),
	}

	server := NewServer("localhost", 8080, logger)
	server.SetupRouter(cfg, handlers, jwtService, detector, policy, metrics.NewNoOpBusinessMetrics(), nil)
	return server, jwtService
}

func bearerToken(t *testing.T, jwtService authService.JWTService) string {
	t.Helper()
	issued, err := jwtService.Generate(authDomain.Claims{"sub": "svc-orders"}, 0)
	require.NoError(t, err)
	return "Bearer " + issued.Token
}

func doJSON(router http.Handler, method, path, auth string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	switch v := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(v)
	default:
		data, _ := json.Marshal(v)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestHealthHandler tests the health check endpoint handler.
func TestHealthHandler(t *testing.T) {
	server := createTestServer()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	server.healthHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "healthy", response["status"])
}

func TestReadinessHandler(t *testing.T) {
	t.Run("NotReady_FailingCheck", func(t *testing.T) {
		server := createTestServer()

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		server.readinessHandler(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "not_ready", response["status"])

		components, ok := response["components"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "error", components["encryption_key"])
	})

	t.Run("Ready_AllChecksPass", func(t *testing.T) {
		server := NewServer("localhost", 8080, discardLogger(),
			ReadinessCheck{Name: "encryption_key", Check: func(context.Context) error { return nil }},
			ReadinessCheck{Name: "jwt_secret", Check: func(context.Context) error { return nil }},
		)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		server.readinessHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"status":"ready","components":{"encryption_key":"ok","jwt_secret":"ok"}}`,
			w.Body.String(),
		)
	})
}

// TestCustomLoggerMiddleware tests the custom logging middleware.
func TestCustomLoggerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(logger))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "test"})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test?token=abc", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http request", entry["msg"])
	assert.Equal(t, "/test", entry["path"])
	assert.Equal(t, w.Header().Get("X-Request-Id"), entry["request_id"])
	assert.NotContains(t, buf.String(), "abc")
}

// TestRecoveryMiddleware tests Gin's built-in recovery middleware.
func TestRecoveryMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CustomLoggerMiddleware(discardLogger()))
	router.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestBodyLimitMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(BodyLimitMiddleware(8))
	router.POST("/echo", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.String(http.StatusOK, string(body))
	})

	t.Run("WithinLimit", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/echo", "", "12345678")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "12345678", w.Body.String())
	})

	t.Run("DeclaredLengthTooLarge", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/echo", "", "123456789")
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Contains(t, w.Body.String(), "request_too_large")
	})
}

// TestServer_ShutdownGracefully tests graceful server shutdown.
func TestServer_ShutdownGracefully(t *testing.T) {
	server := NewServer("localhost", 0, discardLogger())
	server.router = gin.New()

	errChan := make(chan error, 1)
	go func() {
		if err := server.Start(context.Background()); err != nil {
			errChan <- err
		}
	}()

	time.Sleep(100 * time.Millisecond)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	assert.NoError(t, server.Shutdown(shutdownCtx))

	select {
	case err := <-errChan:
		t.Fatalf("server startup failed: %v", err)
	default:
	}
}

func TestServer_StartWithoutRouter(t *testing.T) {
	server := NewServer("localhost", 0, discardLogger())
	assert.Error(t, server.Start(context.Background()))
}

// TestMetricsServer_Endpoints tests the metrics server endpoints.
func TestMetricsServer_Endpoints(t *testing.T) {
	provider, err := metrics.NewProvider("test_app")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	metricsServer := NewMetricsServer("localhost", 8081, discardLogger(), provider)
	require.NotNil(t, metricsServer)

	w := httptest.NewRecorder()
	metricsServer.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

func TestRouter(t *testing.T) {
	t.Run("Health_PublicWithSecurityHeaders", func(t *testing.T) {
		server, _ := createFullServer(t, testConfig())

		w := doJSON(server.GetHandler(), http.MethodGet, "/health", "", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "nosniff", w.Header().Get(threatDomain.HeaderContentTypeOptions))
		assert.Equal(t, "DENY", w.Header().Get(threatDomain.HeaderFrameOptions))
		assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	})

	t.Run("NoMetricsEndpoint", func(t *testing.T) {
		server, _ := createFullServer(t, testConfig())

		w := doJSON(server.GetHandler(), http.MethodGet, "/metrics", "", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("V1_RequiresToken", func(t *testing.T) {
		server, _ := createFullServer(t, testConfig())

		w := doJSON(server.GetHandler(), http.MethodPost, "/v1/crypto/encrypt", "", map[string]string{
			"plaintext": "hello",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("EncryptDecryptRoundTrip", func(t *testing.T) {
		server, jwtService := createFullServer(t, testConfig())
		auth := bearerToken(t, jwtService)

		w := doJSON(server.GetHandler(), http.MethodPost, "/v1/crypto/encrypt", auth, map[string]string{
			"plaintext": "+2348012345678",
			"scope":     "pii",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var encrypted cryptoDTO.EncryptResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &encrypted))
		assert.Len(t, strings.Split(encrypted.Envelope, ":"), 3)

		w = doJSON(server.GetHandler(), http.MethodPost, "/v1/crypto/decrypt", auth, map[string]string{
			"envelope": encrypted.Envelope,
			"scope":    "pii",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.JSONEq(t, `{"plaintext":"+2348012345678"}`, w.Body.String())
	})

	t.Run("ThreatGuard_BlocksSuspiciousQuery", func(t *testing.T) {
		server, jwtService := createFullServer(t, testConfig())

		w := doJSON(server.GetHandler(), http.MethodGet,
			"/v1/security-headers?q=%3Cscript%3Ealert(1)%3C%2Fscript%3E", bearerToken(t, jwtService), nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "suspicious_request")
	})

	t.Run("ThreatGuard_Disabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.ThreatDetectionEnabled = false
		server, jwtService := createFullServer(t, cfg)

		w := doJSON(server.GetHandler(), http.MethodGet,
			"/v1/security-headers?q=%3Cscript%3E", bearerToken(t, jwtService), nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("PasswordRoutes_RateLimitedPerIP", func(t *testing.T) {
		server, jwtService := createFullServer(t, testConfig())
		auth := bearerToken(t, jwtService)

		w := doJSON(server.GetHandler(), http.MethodPost, "/v1/passwords/hash", auth, map[string]string{
			"password": "correct horse battery staple",
		})
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = doJSON(server.GetHandler(), http.MethodPost, "/v1/passwords/hash", auth, map[string]string{
			"password": "correct horse battery staple",
		})
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
	})

	t.Run("BodyTooLarge", func(t *testing.T) {
		server, jwtService := createFullServer(t, testConfig())

		w := doJSON(server.GetHandler(), http.MethodPost, "/v1/data/mask", bearerToken(t, jwtService),
			map[string]any{"data": map[string]string{"notes": strings.Repeat("a", 2048)}})

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("RandomAPIKey", func(t *testing.T) {
		server, jwtService := createFullServer(t, testConfig())

		w := doJSON(server.GetHandler(), http.MethodPost, "/v1/random/api-key", bearerToken(t, jwtService), nil)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, strings.HasPrefix(resp["api_key"].(string), "bts_"))
	})
}
