package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitesapp/security/internal/auth/http/dto"
	authService "github.com/bitesapp/security/internal/auth/service"
	"github.com/bitesapp/security/internal/httputil"
	customValidation "github.com/bitesapp/security/internal/validation"
)

// SignatureHandler handles HTTP requests for HMAC-SHA256 signing and verification.
type SignatureHandler struct {
	hmacService authService.HMACService
	logger      *slog.Logger
}

// NewSignatureHandler creates a new signature handler with required dependencies.
func NewSignatureHandler(hmacService authService.HMACService, logger *slog.Logger) *SignatureHandler {
	return &SignatureHandler{
		hmacService: hmacService,
		logger:      logger,
	}
}

// SignHandler signs data with the supplied secret.
// POST /v1/signatures/sign
func (h *SignatureHandler) SignHandler(c *gin.Context) {
	var req dto.SignRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	signature, err := h.hmacService.Sign(req.Data, req.Secret)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.SignResponse{Signature: signature})
}

// VerifyHandler checks a signature over data with the supplied secret.
// POST /v1/signatures/verify
func (h *SignatureHandler) VerifyHandler(c *gin.Context) {
	var req dto.VerifySignatureRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyResponse{Valid: h.hmacService.Verify(req.Data, req.Signature, req.Secret)})
}
