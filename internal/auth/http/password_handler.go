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

// PasswordHandler handles HTTP requests for password hashing and verification.
type PasswordHandler struct {
	passwordService authService.PasswordService
	logger          *slog.Logger
}

// NewPasswordHandler creates a new password handler with required dependencies.
func NewPasswordHandler(passwordService authService.PasswordService, logger *slog.Logger) *PasswordHandler {
	return &PasswordHandler{
		passwordService: passwordService,
		logger:          logger,
	}
}

// HashHandler hashes a password with the configured algorithm.
// POST /v1/passwords/hash - Rate limited per IP.
// Returns 200 OK with the self-describing hash.
func (h *PasswordHandler) HashHandler(c *gin.Context) {
	var req dto.HashPasswordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	hash, err := h.passwordService.Hash(req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.HashPasswordResponse{Hash: hash})
}

// VerifyHandler checks a password against a stored hash.
// POST /v1/passwords/verify - Rate limited per IP.
// Returns 200 OK with {"valid": bool}; a mismatch is not an error.
func (h *PasswordHandler) VerifyHandler(c *gin.Context) {
	var req dto.VerifyPasswordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyResponse{Valid: h.passwordService.Verify(req.Password, req.Hash)})
}
