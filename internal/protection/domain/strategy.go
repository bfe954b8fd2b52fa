// Package domain defines the masking strategies and the field tables they apply to.
package domain

import "strings"

const (
	// RedactedValue replaces values under FullRedact.
	RedactedValue = "[REDACTED]"

	// AnonymizedValue replaces personal identifiers during anonymization.
	AnonymizedValue = "[ANONYMIZED]"

	// InvalidCardValue is returned for input that is not a plausible card number.
	InvalidCardValue = "[INVALID]"

	// MaskChar is the character used for partial redaction.
	MaskChar = "*"

	// MinCardDigits and MaxCardDigits bound primary account number lengths.
	MinCardDigits = 12
	MaxCardDigits = 19

	// CardVisibleDigits is the number of trailing card digits left readable.
	CardVisibleDigits = 4
)

// StrategyKind tags a Strategy.
type StrategyKind int

const (
	// PassThrough leaves the value unchanged.
	PassThrough StrategyKind = iota

	// RedactSuffix keeps the last Keep characters and masks the rest.
	RedactSuffix

	// FullRedact replaces the whole value with RedactedValue.
	FullRedact

	// CardNumber masks every digit but the last four and keeps separators.
	CardNumber
)

// Strategy describes how one recognized field is made display-safe.
type Strategy struct {
	Kind StrategyKind
	Keep int
}

// KeepSuffix returns a RedactSuffix strategy that keeps n trailing characters.
func KeepSuffix(n int) Strategy {
	return Strategy{Kind: RedactSuffix, Keep: n}
}

// Redact returns a FullRedact strategy.
func Redact() Strategy {
	return Strategy{Kind: FullRedact}
}

// Card returns a CardNumber strategy.
func Card() Strategy {
	return Strategy{Kind: CardNumber, Keep: CardVisibleDigits}
}

// NormalizeFieldName folds case and drops '_' and '-' so "api_key", "apiKey" and
// "API-KEY" resolve to the same table entry.
func NormalizeFieldName(name string) string {
	return strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(name))
}
