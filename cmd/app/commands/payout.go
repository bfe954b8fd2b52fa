package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	payoutDomain "github.com/bitesapp/security/internal/payout/domain"
	payoutUseCase "github.com/bitesapp/security/internal/payout/usecase"
)

// RunSealPayout seals a payout request given as gateway JSON (camelCase fields) and
// prints the {merchantId, encData} body to send. An empty requestJSON is read from
// tuple.Reader.
func RunSealPayout(
	ctx context.Context,
	sealer payoutUseCase.PayoutSealer,
	tuple IOTuple,
	requestJSON string,
) error {
	if requestJSON == "" {
		if tuple.Reader == nil {
			return fmt.Errorf("payout request is required")
		}
		data, err := io.ReadAll(tuple.Reader)
		if err != nil {
			return fmt.Errorf("failed to read payout request: %w", err)
		}
		requestJSON = string(data)
	}

	var req payoutDomain.PayoutRequest
	if err := json.Unmarshal([]byte(requestJSON), &req); err != nil {
		return fmt.Errorf("failed to parse payout request JSON: %w", err)
	}

	sealed, err := sealer.Seal(ctx, &req)
	if err != nil {
		return fmt.Errorf("failed to seal payout: %w", err)
	}

	return writeJSON(tuple.Writer, sealed)
}

// RunOpenPayout decrypts a sealed payout and prints the request as gateway JSON.
func RunOpenPayout(
	ctx context.Context,
	sealer payoutUseCase.PayoutSealer,
	writer io.Writer,
	merchantID string,
	encData string,
) error {
	req, err := sealer.Open(ctx, &payoutDomain.SealedPayout{MerchantID: merchantID, EncData: encData})
	if err != nil {
		return fmt.Errorf("failed to open payout: %w", err)
	}

	return writeJSON(writer, req)
}

func writeJSON(writer io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, _ = fmt.Fprintln(writer, string(jsonBytes))
	return nil
}
