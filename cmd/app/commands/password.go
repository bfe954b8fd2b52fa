package commands

import (
	"errors"
	"log/slog"
	"strconv"

	authService "github.com/bitesapp/security/internal/auth/service"
)

// ErrPasswordMismatch is returned by RunVerifyPassword when the password does not match.
var ErrPasswordMismatch = errors.New("password does not match hash")

// RunHashPassword hashes a password with the configured algorithm. An empty password
// is read from the first line of tuple.Reader.
func RunHashPassword(
	passwordService authService.PasswordService,
	logger *slog.Logger,
	tuple IOTuple,
	password string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	password, err := readValue(tuple, password, "password")
	if err != nil {
		return err
	}

	hash, err := passwordService.Hash(password)
	if err != nil {
		return err
	}

	logger.Info("password hashed")
	return writeResult(tuple.Writer, format, [][2]string{{"hash", hash}})
}

// RunVerifyPassword checks a password against a stored hash and returns
// ErrPasswordMismatch when it does not match, so scripts can rely on the exit code.
func RunVerifyPassword(
	passwordService authService.PasswordService,
	tuple IOTuple,
	password string,
	hash string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	password, err := readValue(tuple, password, "password")
	if err != nil {
		return err
	}

	valid := passwordService.Verify(password, hash)
	if err := writeResult(tuple.Writer, format, [][2]string{{"valid", strconv.FormatBool(valid)}}); err != nil {
		return err
	}
	if !valid {
		return ErrPasswordMismatch
	}
	return nil
}
