// Package service applies the masking policy to records, card numbers and log attributes.
package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	protectionDomain "github.com/bitesapp/security/internal/protection/domain"
)

// Masker produces display-safe views of records. It never returns an error: input it
// does not recognize is passed through unchanged.
type Masker interface {
	// MaskSensitiveData returns a shallow copy of record with recognized sensitive
	// fields partially or fully redacted.
	MaskSensitiveData(record map[string]any) map[string]any

	// MaskCreditCard keeps the last four digits of number and masks the rest. Input
	// that is not a plausible card number yields InvalidCardValue.
	MaskCreditCard(number string) string

	// AnonymizePersonalData returns a shallow copy of record with recognized personal
	// identifiers replaced by AnonymizedValue.
	AnonymizePersonalData(record map[string]any) map[string]any

	// MaskField applies the policy to a single named value. ok is false when field is
	// not sensitive.
	MaskField(field string, value any) (masked any, ok bool)
}

type masker struct {
	policy *protectionDomain.Policy
}

// NewMasker creates a Masker for policy. A nil policy selects DefaultPolicy.
func NewMasker(policy *protectionDomain.Policy) Masker {
	if policy == nil {
		policy = protectionDomain.DefaultPolicy()
	}
	return &masker{policy: policy}
}

func (m *masker) MaskSensitiveData(record map[string]any) map[string]any {
	if record == nil {
		return nil
	}

	out := make(map[string]any, len(record))
	for field, value := range record {
		if masked, ok := m.MaskField(field, value); ok {
			out[field] = masked
			continue
		}
		out[field] = value
	}
	return out
}

func (m *masker) AnonymizePersonalData(record map[string]any) map[string]any {
	if record == nil {
		return nil
	}

	out := make(map[string]any, len(record))
	for field, value := range record {
		if m.policy.IsPersonal(field) {
			out[field] = protectionDomain.AnonymizedValue
			continue
		}
		out[field] = value
	}
	return out
}

func (m *masker) MaskField(field string, value any) (any, bool) {
	strategy := m.policy.StrategyFor(field)
	if strategy.Kind == protectionDomain.PassThrough {
		return nil, false
	}
	if value == nil {
		return nil, true
	}
	return apply(strategy, stringify(value)), true
}

func (m *masker) MaskCreditCard(number string) string {
	return maskCard(number)
}

func apply(strategy protectionDomain.Strategy, value string) string {
	switch strategy.Kind {
	case protectionDomain.RedactSuffix:
		return redactSuffix(value, strategy.Keep)
	case protectionDomain.CardNumber:
		return maskCard(value)
	default:
		return protectionDomain.RedactedValue
	}
}

// redactSuffix keeps the last keep runes. Values too short to hide at least as much as
// they reveal are fully redacted.
func redactSuffix(value string, keep int) string {
	n := utf8.RuneCountInString(value)
	if keep <= 0 || n <= 2*keep {
		return protectionDomain.RedactedValue
	}

	runes := []rune(value)
	return strings.Repeat(protectionDomain.MaskChar, n-keep) + string(runes[n-keep:])
}

// maskCard masks every digit but the last four, keeping spaces and dashes in place.
func maskCard(number string) string {
	digits := 0
	for _, r := range number {
		switch {
		case isASCIIDigit(r):
			digits++
		case r == ' ' || r == '-':
		default:
			return protectionDomain.InvalidCardValue
		}
	}
	if digits < protectionDomain.MinCardDigits || digits > protectionDomain.MaxCardDigits {
		return protectionDomain.InvalidCardValue
	}

	var b strings.Builder
	b.Grow(len(number))

	seen := 0
	for _, r := range number {
		if !isASCIIDigit(r) {
			b.WriteRune(r)
			continue
		}
		seen++
		if seen > digits-protectionDomain.CardVisibleDigits {
			b.WriteRune(r)
		} else {
			b.WriteString(protectionDomain.MaskChar)
		}
	}
	return b.String()
}

// isASCIIDigit accepts only 0-9. Card numbers never use other scripts' digits.
func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
