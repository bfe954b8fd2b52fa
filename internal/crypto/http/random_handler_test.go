package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitesapp/security/internal/crypto/http/dto"
	cryptoService "github.com/bitesapp/security/internal/crypto/service"
)

var hexPattern = regexp.MustCompile(`^[0-9a-f]+$`)

type failingRandom struct{}

func (failingRandom) Token(int) (string, error)          { return "", errors.New("entropy source unavailable") }
func (failingRandom) Number(int64, int64) (int64, error) { return 0, errors.New("entropy source unavailable") }
func (failingRandom) SessionID() (string, error)         { return "", errors.New("entropy source unavailable") }

func TestRandomHandler_TokenHandler(t *testing.T) {
	handler := NewRandomHandler(cryptoService.NewRandomGenerator(), discardLogger())

	tests := []struct {
		name        string
		body        any
		expectedLen int
	}{
		{name: "empty body uses default", body: nil, expectedLen: 64},
		{name: "zero uses default", body: dto.RandomTokenRequest{}, expectedLen: 64},
		{name: "explicit size", body: dto.RandomTokenRequest{Bytes: 16}, expectedLen: 32},
		{name: "maximum size", body: dto.RandomTokenRequest{Bytes: dto.MaxTokenBytes}, expectedLen: 2 * dto.MaxTokenBytes},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := createTestContext(http.MethodPost, "/v1/random/token", tt.body)
			handler.TokenHandler(c)

			require.Equal(t, http.StatusOK, w.Code)

			var response dto.RandomTokenResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Len(t, response.Token, tt.expectedLen)
			assert.Regexp(t, hexPattern, response.Token)
		})
	}

	t.Run("rejects negative and oversized", func(t *testing.T) {
		for _, size := range []int{-1, dto.MaxTokenBytes + 1} {
			c, w := createTestContext(http.MethodPost, "/v1/random/token", dto.RandomTokenRequest{Bytes: size})
			handler.TokenHandler(c)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		}
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		c, w := createTestContext(http.MethodPost, "/v1/random/token", `{"bytes":"many"}`)
		handler.TokenHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRandomHandler_NumberHandler(t *testing.T) {
	handler := NewRandomHandler(cryptoService.NewRandomGenerator(), discardLogger())

	t.Run("default six digit code", func(t *testing.T) {
		c, w := createTestContext(http.MethodPost, "/v1/random/number", nil)
		handler.NumberHandler(c)

		require.Equal(t, http.StatusOK, w.Code)

		var response dto.RandomNumberResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.GreaterOrEqual(t, response.Number, int64(100000))
		assert.LessOrEqual(t, response.Number, int64(999999))
	})

	t.Run("explicit range", func(t *testing.T) {
		c, w := createTestContext(http.MethodPost, "/v1/random/number", dto.RandomNumberRequest{Min: 7, Max: 7})
		handler.NumberHandler(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"number":7}`, w.Body.String())
	})

	t.Run("inverted range", func(t *testing.T) {
		c, w := createTestContext(http.MethodPost, "/v1/random/number", dto.RandomNumberRequest{Min: 10, Max: 1})
		handler.NumberHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestRandomHandler_SessionIDHandler(t *testing.T) {
	handler := NewRandomHandler(cryptoService.NewRandomGenerator(), discardLogger())

	c, w := createTestContext(http.MethodPost, "/v1/random/session-id", nil)
	handler.SessionIDHandler(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.SessionIDResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.SessionID, 64)
	assert.Regexp(t, hexPattern, response.SessionID)
}

func TestRandomHandler_GeneratorFailure(t *testing.T) {
	handler := NewRandomHandler(failingRandom{}, discardLogger())

	handlers := map[string]func(c *gin.Context){
		"token":      handler.TokenHandler,
		"number":     handler.NumberHandler,
		"session-id": handler.SessionIDHandler,
	}
	for name, h := range handlers {
		t.Run(name, func(t *testing.T) {
			c, w := createTestContext(http.MethodPost, "/v1/random/"+name, nil)
			h(c)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.NotContains(t, w.Body.String(), "entropy")
		})
	}
}
