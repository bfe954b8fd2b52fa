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

// TokenHandler handles HTTP requests for token verification on behalf of other services.
type TokenHandler struct {
	jwtService authService.JWTService
	logger     *slog.Logger
}

// NewTokenHandler creates a new token handler with required dependencies.
func NewTokenHandler(jwtService authService.JWTService, logger *slog.Logger) *TokenHandler {
	return &TokenHandler{
		jwtService: jwtService,
		logger:     logger,
	}
}

// VerifyHandler verifies a token and returns its caller claims.
// POST /v1/tokens/verify
// Returns 200 OK with claims, or 401 for any invalid, tampered or expired token.
func (h *TokenHandler) VerifyHandler(c *gin.Context) {
	var req dto.VerifyTokenRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	claims, err := h.jwtService.Verify(req.Token)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyTokenResponse{Claims: claims})
}
