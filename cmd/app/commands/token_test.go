package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	authDomain "github.com/bitesapp/security/internal/auth/domain"
	authMocks "github.com/bitesapp/security/internal/auth/http/mocks"
	authService "github.com/bitesapp/security/internal/auth/service"
)

func TestRunIssueToken(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	expiresAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("subject-and-claims", func(t *testing.T) {
		mockService := &authMocks.MockJWTService{}
		mockService.On("Generate", authDomain.Claims{"sub": "svc-orders", "role": "service"}, time.Hour).
			Return(&authDomain.IssuedToken{Token: "jwt-token", ID: "jti-1", ExpiresAt: expiresAt}, nil)

		var out bytes.Buffer
		err := RunIssueToken(mockService, logger, &out, "svc-orders", `{"role":"service"}`, time.Hour, "json")

		require.NoError(t, err)
		var result map[string]string
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		require.Equal(t, "jwt-token", result["token"])
		require.Equal(t, "jti-1", result["token_id"])
		require.Equal(t, "2026-01-02T03:04:05Z", result["expires_at"])
		mockService.AssertExpectations(t)
	})

	t.Run("invalid-claims-json", func(t *testing.T) {
		mockService := &authMocks.MockJWTService{}

		err := RunIssueToken(mockService, logger, &bytes.Buffer{}, "svc", `{bad`, 0, "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to parse claims JSON")
	})

	t.Run("negative-ttl", func(t *testing.T) {
		jwtService := authService.NewJWTService(authService.JWTConfig{
			Secret: "command-test-secret-at-least-32-bytes",
		})

		err := RunIssueToken(jwtService, logger, &bytes.Buffer{}, "svc", "", -time.Hour, "text")

		require.ErrorIs(t, err, authDomain.ErrInvalidTokenTTL)
	})

	t.Run("numeric-claims-round-trip", func(t *testing.T) {
		jwtService := authService.NewJWTService(authService.JWTConfig{
			Secret: "command-test-secret-at-least-32-bytes",
		})

		var out bytes.Buffer
		require.NoError(t, RunIssueToken(jwtService, logger, &out, "svc", `{"restaurantId":7}`, time.Minute, "json"))
		var result map[string]string
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))

		claims, err := jwtService.Verify(result["token"])
		require.NoError(t, err)
		require.Equal(t, authDomain.Claims{"sub": "svc", "restaurantId": int64(7)}, claims)
	})
}

func TestRunVerifyToken(t *testing.T) {
	jwtService := authService.NewJWTService(authService.JWTConfig{
		Secret: "command-test-secret-at-least-32-bytes",
	})
	issued, err := jwtService.Generate(authDomain.Claims{"sub": "svc-orders", "zone": "lagos"}, time.Minute)
	require.NoError(t, err)

	t.Run("text", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, RunVerifyToken(jwtService, &out, issued.Token, "text"))
		require.Equal(t, "valid: true\nsub: svc-orders\nzone: lagos\n", out.String())
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, RunVerifyToken(jwtService, &out, issued.Token, "json"))

		var result struct {
			Valid  bool           `json:"valid"`
			Claims map[string]any `json:"claims"`
		}
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		require.True(t, result.Valid)
		require.Equal(t, "svc-orders", result.Claims["sub"])
	})

	t.Run("tampered", func(t *testing.T) {
		err := RunVerifyToken(jwtService, &bytes.Buffer{}, issued.Token+"x", "text")
		require.Error(t, err)
	})
}
