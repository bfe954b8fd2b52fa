package service

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/allisson/go-pwdhash"
	pwdargon2 "github.com/allisson/go-pwdhash/argon2"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"

	authDomain "github.com/bitesapp/security/internal/auth/domain"
	apperrors "github.com/bitesapp/security/internal/errors"
)

const (
	argon2idPrefix = "$argon2id$"

	// passwordPolicy is the go-pwdhash preset for new hashes. Stored hashes may not
	// cost more than it to verify.
	passwordPolicy = pwdhash.PolicyModerate

	minArgon2SaltBytes = 8
	minArgon2HashBytes = 16
	maxArgon2HashBytes = 64
)

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// passwordService implements PasswordService with Argon2id (go-pwdhash) or bcrypt.
type passwordService struct {
	algorithm  authDomain.PasswordAlgorithm
	argon2     *pwdhash.PasswordHasher
	argonLimit pwdargon2.PolicyParams
	bcryptCost int
}

// NewPasswordService creates a PasswordService that hashes with alg.
//
// Argon2id uses the Moderate policy for a balance between security and latency.
// bcryptCost is only consulted for bcrypt and must be within bcrypt's accepted range.
func NewPasswordService(alg authDomain.PasswordAlgorithm, bcryptCost int) (PasswordService, error) {
	switch alg {
	case authDomain.Argon2id, authDomain.Bcrypt:
	default:
		return nil, authDomain.ErrUnsupportedPasswordAlgorithm
	}

	if alg == authDomain.Bcrypt && (bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost) {
		return nil, fmt.Errorf(
			"%w: %d is outside [%d, %d]",
			authDomain.ErrInvalidBcryptCost,
			bcryptCost,
			bcrypt.MinCost,
			bcrypt.MaxCost,
		)
	}

	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(passwordPolicy),
	)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create argon2id hasher")
	}
	limit, err := pwdargon2.ParamsForPolicy(int(passwordPolicy))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to resolve argon2id policy")
	}

	return &passwordService{
		algorithm:  alg,
		argon2:     hasher,
		argonLimit: limit,
		bcryptCost: bcryptCost,
	}, nil
}

func (p *passwordService) Hash(password string) (string, error) {
	if password == "" {
		return "", authDomain.ErrEmptyPassword
	}

	if p.algorithm == authDomain.Bcrypt {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), p.bcryptCost)
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", authDomain.ErrPasswordTooLong
		}
		if err != nil {
			return "", apperrors.Wrap(err, "failed to hash password")
		}
		return string(hash), nil
	}

	hash, err := p.argon2.Hash([]byte(password))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hash, nil
}

func (p *passwordService) Verify(password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}

	switch {
	case strings.HasPrefix(hash, argon2idPrefix):
		if !p.acceptableArgon2Hash(hash) {
			return false
		}
		ok, err := p.argon2.Verify([]byte(password), hash)
		return err == nil && ok
	case isBcryptHash(hash):
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	default:
		return false
	}
}

func isBcryptHash(hash string) bool {
	for _, prefix := range bcryptPrefixes {
		if strings.HasPrefix(hash, prefix) {
			return true
		}
	}
	return false
}

// acceptableArgon2Hash checks a PHC string before it reaches argon2, which panics on
// zero rounds, zero parallelism or an empty hash, and allocates whatever memory the
// string asks for. Costs above the hashing policy are refused.
func (p *passwordService) acceptableArgon2Hash(hash string) bool {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[2] != "v="+strconv.Itoa(argon2.Version) {
		return false
	}

	params := make(map[string]uint64, 3)
	for _, kv := range strings.Split(parts[3], ",") {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return false
		}
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return false
		}
		params[key] = n
	}
	if len(params) != 3 {
		return false
	}

	m, t, par := params["m"], params["t"], params["p"]
	switch {
	case t < 1 || t > uint64(p.argonLimit.Iterations):
		return false
	case par < pwdargon2.MinParallelism || par > pwdargon2.MaxParallelism:
		return false
	case m < 8*par || m > uint64(p.argonLimit.Memory):
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) < minArgon2SaltBytes {
		return false
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) < minArgon2HashBytes || len(key) > maxArgon2HashBytes {
		return false
	}
	return true
}
