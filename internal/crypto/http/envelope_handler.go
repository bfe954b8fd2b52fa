// Package http provides HTTP handlers for envelope encryption and secure random generation.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitesapp/security/internal/crypto/http/dto"
	cryptoUseCase "github.com/bitesapp/security/internal/crypto/usecase"
	"github.com/bitesapp/security/internal/httputil"
	customValidation "github.com/bitesapp/security/internal/validation"
)

// EnvelopeHandler handles HTTP requests for envelope encryption and decryption.
type EnvelopeHandler struct {
	envelopeUseCase cryptoUseCase.EnvelopeUseCase
	logger          *slog.Logger
}

// NewEnvelopeHandler creates a new envelope handler with required dependencies.
func NewEnvelopeHandler(envelopeUseCase cryptoUseCase.EnvelopeUseCase, logger *slog.Logger) *EnvelopeHandler {
	return &EnvelopeHandler{
		envelopeUseCase: envelopeUseCase,
		logger:          logger,
	}
}

// EncryptHandler seals plaintext with the general or PII key.
// POST /v1/crypto/encrypt
// Returns 200 OK with an "iv:authTag:ciphertext" envelope.
func (h *EnvelopeHandler) EncryptHandler(c *gin.Context) {
	var req dto.EncryptRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	encrypt := h.envelopeUseCase.Encrypt
	if req.Scope == dto.ScopePII {
		encrypt = h.envelopeUseCase.EncryptPII
	}

	envelope, err := encrypt(c.Request.Context(), req.Plaintext)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.EncryptResponse{Envelope: envelope})
}

// DecryptHandler opens an envelope with the general or PII key.
// POST /v1/crypto/decrypt
// Returns 200 OK with plaintext, 422 for a malformed envelope and 401 when the
// envelope fails authentication.
func (h *EnvelopeHandler) DecryptHandler(c *gin.Context) {
	var req dto.DecryptRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	decrypt := h.envelopeUseCase.Decrypt
	if req.Scope == dto.ScopePII {
		decrypt = h.envelopeUseCase.DecryptPII
	}

	plaintext, err := decrypt(c.Request.Context(), req.Envelope)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.DecryptResponse{Plaintext: plaintext})
}
