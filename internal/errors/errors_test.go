package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type customError struct {
	Msg string
}

func (e customError) Error() string { return e.Msg }

func TestNew(t *testing.T) {
	err := New("test error")
	require.Error(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	baseErr := errors.New("base error")

	t.Run("wrap non-nil error", func(t *testing.T) {
		wrapped := Wrap(baseErr, "wrapped")
		require.Error(t, wrapped)
		assert.Equal(t, "wrapped: base error", wrapped.Error())
		assert.ErrorIs(t, wrapped, baseErr)
	})

	t.Run("wrap nil error", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "wrapped"))
	})
}

func TestClassificationSentinels(t *testing.T) {
	t.Run("format errors are invalid input", func(t *testing.T) {
		assert.True(t, Is(ErrInvalidFormat, ErrInvalidInput))
		assert.False(t, Is(ErrInvalidFormat, ErrUnauthorized))
	})

	t.Run("authentication failures are unauthorized", func(t *testing.T) {
		assert.True(t, Is(ErrAuthenticationFailed, ErrUnauthorized))
		assert.False(t, Is(ErrAuthenticationFailed, ErrInvalidInput))
	})

	t.Run("configuration errors stand alone", func(t *testing.T) {
		assert.False(t, Is(ErrConfiguration, ErrInvalidInput))
		assert.False(t, Is(ErrConfiguration, ErrUnauthorized))
	})
}

func TestAs(t *testing.T) {
	wrapped := Wrap(customError{Msg: "custom"}, "context")

	var target customError
	require.True(t, As(wrapped, &target))
	assert.Equal(t, "custom", target.Msg)
}
