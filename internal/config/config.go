// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
//
// Key material is kept as raw strings. Validation happens on first use in the services
// that consume it, so a missing key only fails the operations that need it.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int
	// ServerShutdownTimeout bounds graceful shutdown of the API and metrics servers.
	ServerShutdownTimeout time.Duration

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// EncryptionKey is the general envelope key: 64 hex characters or a raw string of at least 32 bytes.
	EncryptionKey string
	// PIIEncryptionKey is the optional PII envelope key. Empty derives one from EncryptionKey.
	PIIEncryptionKey string
	// EncryptionAlgorithm selects the envelope AEAD ("aes-gcm" or "chacha20-poly1305").
	EncryptionAlgorithm string

	// JWTSecret is the HS256 signing secret.
	JWTSecret string
	// JWTExpiration is the default lifetime of issued tokens.
	JWTExpiration time.Duration
	// JWTIssuer is set as the iss claim and enforced on verification when non-empty.
	JWTIssuer string

	// PasswordHashAlgorithm selects the hash for new passwords ("argon2id" or "bcrypt").
	PasswordHashAlgorithm string
	// BcryptCost is the work factor used when PasswordHashAlgorithm is "bcrypt".
	BcryptCost int

	// PayoutGatewayKey is the 16-byte AES key issued by the payout gateway.
	PayoutGatewayKey string
	// PayoutGatewayMerchantID is the 16-byte merchant id, also used as the gateway cipher IV.
	PayoutGatewayMerchantID string

	// RateLimitEnabled indicates whether rate limiting for authenticated endpoints is enabled.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the number of requests allowed per second per token subject.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size for authenticated endpoints rate limiting.
	RateLimitBurst int

	// RateLimitPasswordEnabled indicates whether IP rate limiting for the password endpoints is enabled.
	RateLimitPasswordEnabled bool
	// RateLimitPasswordRequestsPerSec is the number of password hash/verify requests allowed per second per IP.
	RateLimitPasswordRequestsPerSec float64
	// RateLimitPasswordBurst is the burst size for the password endpoints.
	RateLimitPasswordBurst int

	// ThreatDetectionEnabled rejects requests that match injection signatures.
	ThreatDetectionEnabled bool
	// MaxRequestBodyBytes bounds request bodies accepted by the API.
	MaxRequestBodyBytes int64

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost:            env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort:            env.GetInt("SERVER_PORT", 8080),
		ServerShutdownTimeout: env.GetDuration("SERVER_SHUTDOWN_TIMEOUT_SECONDS", 10, time.Second),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Envelope encryption
		EncryptionKey:       env.GetString("ENCRYPTION_KEY", ""),
		PIIEncryptionKey:    env.GetString("PII_ENCRYPTION_KEY", ""),
		EncryptionAlgorithm: env.GetString("ENCRYPTION_ALGORITHM", "aes-gcm"),

		// JWT
		JWTSecret:     env.GetString("JWT_SECRET", ""),
		JWTExpiration: env.GetDuration("JWT_EXPIRATION_SECONDS", 86400, time.Second),
		JWTIssuer:     env.GetString("JWT_ISSUER", ""),

		// Passwords
		PasswordHashAlgorithm: env.GetString("PASSWORD_HASH_ALGORITHM", "argon2id"),
		BcryptCost:            env.GetInt("BCRYPT_COST", 12),

		// Payout gateway
		PayoutGatewayKey:        env.GetString("PAYOUT_GATEWAY_KEY", ""),
		PayoutGatewayMerchantID: env.GetString("PAYOUT_GATEWAY_MERCHANT_ID", ""),

		// Rate Limiting (authenticated endpoints)
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		// Rate Limiting for password endpoints (IP-based)
		RateLimitPasswordEnabled:        env.GetBool("RATE_LIMIT_PASSWORD_ENABLED", true),
		RateLimitPasswordRequestsPerSec: env.GetFloat64("RATE_LIMIT_PASSWORD_REQUESTS_PER_SEC", 2.0),
		RateLimitPasswordBurst:          env.GetInt("RATE_LIMIT_PASSWORD_BURST", 5),

		// Request inspection
		ThreatDetectionEnabled: env.GetBool("THREAT_DETECTION_ENABLED", true),
		MaxRequestBodyBytes:    int64(env.GetInt("MAX_REQUEST_BODY_BYTES", 1<<20)),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "bites_security"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),
	}
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	default:
		return "release"
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
