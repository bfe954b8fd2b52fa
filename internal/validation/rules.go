// Package validation provides custom validation rules for request and payload checks.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	validation "github.com/jellydator/validation"

	apperrors "github.com/bitesapp/security/internal/errors"
)

var (
	// hexSignatureRegex matches a hex-encoded HMAC-SHA256 signature.
	hexSignatureRegex = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)

	// currencyRegex matches an ISO 4217 alphabetic currency code.
	currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// HexSignature validates a 64-character hex HMAC-SHA256 signature.
var HexSignature = validation.NewStringRuleWithError(
	hexSignatureRegex.MatchString,
	validation.NewError("validation_hex_signature", "must be a 64-character hex signature"),
)

// CurrencyCode validates an upper-case three letter ISO 4217 code.
var CurrencyCode = validation.NewStringRuleWithError(
	currencyRegex.MatchString,
	validation.NewError("validation_currency_code", "must be a three letter ISO 4217 currency code"),
)

// Envelope validates the "iv:authTag:ciphertext" shape: exactly three non-empty
// colon-delimited segments. Segment contents are checked on decryption.
var Envelope = validation.NewStringRuleWithError(
	func(s string) bool {
		parts := strings.Split(s, ":")
		if len(parts) != 3 {
			return false
		}
		for _, part := range parts {
			if part == "" {
				return false
			}
		}
		return true
	},
	validation.NewError("validation_envelope", "must have the form iv:authTag:ciphertext"),
)

// MaxBytes validates that a string is valid UTF-8 and at most n bytes long.
func MaxBytes(n int) validation.Rule {
	return validation.NewStringRuleWithError(
		func(s string) bool {
			return len(s) <= n && utf8.ValidString(s)
		},
		validation.NewError("validation_max_bytes", "must be valid UTF-8 and not exceed the size limit"),
	)
}
