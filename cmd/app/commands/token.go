package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"time"

	authDomain "github.com/bitesapp/security/internal/auth/domain"
	authService "github.com/bitesapp/security/internal/auth/service"
)

// RunIssueToken signs a service token for subject. claimsJSON optionally adds custom
// claims as a JSON object; reserved claims are rejected by the JWT service.
func RunIssueToken(
	jwtService authService.JWTService,
	logger *slog.Logger,
	writer io.Writer,
	subject string,
	claimsJSON string,
	ttl time.Duration,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	claims := authDomain.Claims{}
	if claimsJSON != "" {
		if err := json.Unmarshal([]byte(claimsJSON), &claims); err != nil {
			return fmt.Errorf("failed to parse claims JSON: %w", err)
		}
	}
	if subject != "" {
		claims["sub"] = subject
	}

	issued, err := jwtService.Generate(claims, ttl)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	logger.Info("token issued",
		slog.String("token_id", issued.ID),
		slog.String("subject", subject),
		slog.Time("expires_at", issued.ExpiresAt),
	)

	return writeResult(writer, format, [][2]string{
		{"token", issued.Token},
		{"token_id", issued.ID},
		{"expires_at", issued.ExpiresAt.UTC().Format(time.RFC3339)},
	})
}

// RunVerifyToken verifies a token and prints its caller claims.
func RunVerifyToken(jwtService authService.JWTService, writer io.Writer, token string, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	claims, err := jwtService.Verify(token)
	if err != nil {
		return fmt.Errorf("failed to verify token: %w", err)
	}

	if format == "json" {
		jsonBytes, err := json.MarshalIndent(map[string]any{"valid": true, "claims": claims}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, _ = fmt.Fprintln(writer, string(jsonBytes))
		return nil
	}

	_, _ = fmt.Fprintln(writer, "valid: true")
	for _, name := range slices.Sorted(maps.Keys(claims)) {
		_, _ = fmt.Fprintf(writer, "%s: %v\n", name, claims[name])
	}
	return nil
}
