package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"

	apperrors "github.com/bitesapp/security/internal/errors"
)

const (
	// DefaultTokenBytes is the token size used when callers don't choose one.
	DefaultTokenBytes = 32

	// DefaultNumberMin and DefaultNumberMax bound a 6-digit one-time code.
	DefaultNumberMin int64 = 100000
	DefaultNumberMax int64 = 999999

	// maxTokenBytes caps a single draw so a bad request cannot exhaust memory.
	maxTokenBytes = 1024
)

// ErrInvalidRandomRange indicates a non-positive token size or an empty number range.
var ErrInvalidRandomRange = apperrors.Wrap(apperrors.ErrInvalidInput, "invalid random range")

type randomGenerator struct {
	reader io.Reader
}

// NewRandomGenerator creates a RandomGenerator backed by crypto/rand.
func NewRandomGenerator() RandomGenerator {
	return &randomGenerator{reader: rand.Reader}
}

// Token returns byteLength secure random bytes as lowercase hex.
func (g *randomGenerator) Token(byteLength int) (string, error) {
	if byteLength <= 0 || byteLength > maxTokenBytes {
		return "", fmt.Errorf("%w: token length must be between 1 and %d bytes", ErrInvalidRandomRange, maxTokenBytes)
	}

	buf := make([]byte, byteLength)
	if _, err := io.ReadFull(g.reader, buf); err != nil {
		return "", apperrors.Wrap(err, "failed to generate random token")
	}

	return hex.EncodeToString(buf), nil
}

// Number returns a uniformly distributed integer in [min, max] inclusive.
// rand.Int rejection-samples internally, so there is no modulo bias.
func (g *randomGenerator) Number(min, max int64) (int64, error) {
	if min > max {
		return 0, fmt.Errorf("%w: min %d is greater than max %d", ErrInvalidRandomRange, min, max)
	}

	span := new(big.Int).Sub(big.NewInt(max), big.NewInt(min))
	span.Add(span, big.NewInt(1))

	n, err := rand.Int(g.reader, span)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to generate random number")
	}

	return n.Add(n, big.NewInt(min)).Int64(), nil
}

// SessionID returns 32 random bytes as 64 hex characters.
func (g *randomGenerator) SessionID() (string, error) {
	return g.Token(DefaultTokenBytes)
}
