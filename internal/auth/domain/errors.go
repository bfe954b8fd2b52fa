package domain

import (
	"github.com/bitesapp/security/internal/errors"
)

// Authentication errors.
var (
	// ErrUnsupportedPasswordAlgorithm indicates PASSWORD_HASH_ALGORITHM is unknown.
	ErrUnsupportedPasswordAlgorithm = errors.Wrap(errors.ErrConfiguration, "unsupported password hash algorithm")

	// ErrInvalidBcryptCost indicates BCRYPT_COST is outside the range bcrypt accepts.
	ErrInvalidBcryptCost = errors.Wrap(errors.ErrConfiguration, "invalid bcrypt cost")

	// ErrSigningSecretNotConfigured indicates JWT_SECRET is missing or too short.
	ErrSigningSecretNotConfigured = errors.Wrap(errors.ErrConfiguration, "jwt signing secret not configured")

	// ErrEmptyPassword indicates a hash request for an empty password.
	ErrEmptyPassword = errors.Wrap(errors.ErrInvalidInput, "password must not be empty")

	// ErrPasswordTooLong indicates a password bcrypt cannot hash (over 72 bytes).
	ErrPasswordTooLong = errors.Wrap(errors.ErrInvalidInput, "password is too long")

	// ErrEmptySecret indicates an HMAC request without a signing secret.
	ErrEmptySecret = errors.Wrap(errors.ErrInvalidInput, "hmac secret must not be empty")

	// ErrReservedClaim indicates caller claims that collide with claims set at issuance.
	ErrReservedClaim = errors.Wrap(errors.ErrInvalidInput, "claim name is reserved")

	// ErrInvalidClaim indicates a claim value a token cannot carry unchanged.
	ErrInvalidClaim = errors.Wrap(errors.ErrInvalidInput, "claim value is not supported")

	// ErrInvalidTokenTTL indicates a negative token lifetime.
	ErrInvalidTokenTTL = errors.Wrap(errors.ErrInvalidInput, "token ttl must not be negative")

	// ErrInvalidToken indicates a token that failed verification for any reason.
	ErrInvalidToken = errors.Wrap(errors.ErrAuthenticationFailed, "invalid token")

	// ErrTokenExpired indicates a correctly signed token past its expiry.
	ErrTokenExpired = errors.Wrap(ErrInvalidToken, "token expired")
)
