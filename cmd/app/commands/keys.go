package commands

import (
	"fmt"
	"io"
	"time"

	authService "github.com/bitesapp/security/internal/auth/service"
	cryptoDomain "github.com/bitesapp/security/internal/crypto/domain"
)

// RunGenerateKey prints a fresh 32-byte key as 64 hex characters, usable as
// ENCRYPTION_KEY or PII_ENCRYPTION_KEY.
func RunGenerateKey(writer io.Writer, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	key, err := cryptoDomain.GenerateEncryptionKey()
	if err != nil {
		return err
	}

	if format == "text" {
		_, _ = fmt.Fprintln(writer, "# Copy this value to your .env file or secrets manager")
		_, _ = fmt.Fprintf(writer, "ENCRYPTION_KEY=\"%s\"\n", key)
		return nil
	}
	return writeResult(writer, format, [][2]string{{"encryption_key", key}})
}

// RunGenerateAPIKey prints a new API key together with the SHA-256 hash to store.
// The key itself is shown only once.
func RunGenerateAPIKey(apiKeyService authService.APIKeyService, writer io.Writer, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	key, err := apiKeyService.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate api key: %w", err)
	}

	return writeResult(writer, format, [][2]string{
		{"api_key", key},
		{"hash", apiKeyService.Hash(key)},
		{"created_at", time.Now().UTC().Format(time.RFC3339)},
	})
}
