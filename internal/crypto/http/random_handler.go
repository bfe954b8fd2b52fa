package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitesapp/security/internal/crypto/http/dto"
	cryptoService "github.com/bitesapp/security/internal/crypto/service"
	"github.com/bitesapp/security/internal/httputil"
	customValidation "github.com/bitesapp/security/internal/validation"
)

// RandomHandler handles HTTP requests for secure tokens, one-time codes and session ids.
type RandomHandler struct {
	random cryptoService.RandomGenerator
	logger *slog.Logger
}

// NewRandomHandler creates a new random handler with required dependencies.
func NewRandomHandler(random cryptoService.RandomGenerator, logger *slog.Logger) *RandomHandler {
	return &RandomHandler{
		random: random,
		logger: logger,
	}
}

// TokenHandler returns a hex token. An empty body selects 32 bytes.
// POST /v1/random/token
func (h *RandomHandler) TokenHandler(c *gin.Context) {
	var req dto.RandomTokenRequest
	if !h.bindOptional(c, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	size := req.Bytes
	if size == 0 {
		size = cryptoService.DefaultTokenBytes
	}

	token, err := h.random.Token(size)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.RandomTokenResponse{Token: token})
}

// NumberHandler returns a uniform integer in [min, max]. An empty body selects a
// 6-digit one-time code.
// POST /v1/random/number
func (h *RandomHandler) NumberHandler(c *gin.Context) {
	var req dto.RandomNumberRequest
	if !h.bindOptional(c, &req) {
		return
	}

	if req.Min == 0 && req.Max == 0 {
		req.Min, req.Max = cryptoService.DefaultNumberMin, cryptoService.DefaultNumberMax
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	n, err := h.random.Number(req.Min, req.Max)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.RandomNumberResponse{Number: n})
}

// SessionIDHandler returns a 64-character hex session id.
// POST /v1/random/session-id
func (h *RandomHandler) SessionIDHandler(c *gin.Context) {
	sessionID, err := h.random.SessionID()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.SessionIDResponse{SessionID: sessionID})
}

// bindOptional binds a JSON body when one is present. It reports false after writing
// a 400 response for malformed JSON.
func (h *RandomHandler) bindOptional(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return false
	}
	return true
}
