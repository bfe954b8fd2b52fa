package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bitesapp/security/internal/auth/http/dto"
	authService "github.com/bitesapp/security/internal/auth/service"
	"github.com/bitesapp/security/internal/httputil"
	customValidation "github.com/bitesapp/security/internal/validation"
)

// APIKeyHandler handles HTTP requests for API key generation and format checks.
type APIKeyHandler struct {
	apiKeyService authService.APIKeyService
	logger        *slog.Logger
}

// NewAPIKeyHandler creates a new API key handler with required dependencies.
func NewAPIKeyHandler(apiKeyService authService.APIKeyService, logger *slog.Logger) *APIKeyHandler {
	return &APIKeyHandler{
		apiKeyService: apiKeyService,
		logger:        logger,
	}
}

// GenerateHandler creates a new API key.
// POST /v1/random/api-key
// Returns 201 Created with the key (shown once) and the hash to store.
func (h *APIKeyHandler) GenerateHandler(c *gin.Context) {
	key, err := h.apiKeyService.Generate()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.APIKeyResponse{
		APIKey:    key,
		Hash:      h.apiKeyService.Hash(key),
		CreatedAt: time.Now().UTC(),
	})
}

// ValidateHandler reports whether a string has the API key format.
// POST /v1/api-keys/validate
func (h *APIKeyHandler) ValidateHandler(c *gin.Context) {
	var req dto.ValidateAPIKeyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyResponse{Valid: h.apiKeyService.Validate(req.APIKey)})
}
