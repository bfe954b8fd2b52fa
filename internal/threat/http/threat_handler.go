// Package http provides HTTP handlers and middleware for security headers and
// suspicious-request detection.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitesapp/security/internal/httputil"
	threatDomain "github.com/bitesapp/security/internal/threat/domain"
	"github.com/bitesapp/security/internal/threat/http/dto"
	threatService "github.com/bitesapp/security/internal/threat/service"
	customValidation "github.com/bitesapp/security/internal/validation"
)

// ThreatHandler handles HTTP requests for request inspection and header policy lookups.
type ThreatHandler struct {
	detector     threatService.Detector
	headerPolicy threatDomain.HeaderPolicy
	logger       *slog.Logger
}

// NewThreatHandler creates a new threat handler with required dependencies.
func NewThreatHandler(
	detector threatService.Detector,
	headerPolicy threatDomain.HeaderPolicy,
	logger *slog.Logger,
) *ThreatHandler {
	return &ThreatHandler{
		detector:     detector,
		headerPolicy: headerPolicy,
		logger:       logger,
	}
}

// InspectHandler runs the detector over a request captured by the caller.
// POST /v1/threats/inspect
// Returns 200 OK in both outcomes; a suspicious request is a result, not an error.
func (h *ThreatHandler) InspectHandler(c *gin.Context) {
	var req dto.InspectRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapFindingToResponse(h.detector.Detect(req.ToDomain())))
}

// SecurityHeadersHandler returns the header set applied to responses.
// GET /v1/security-headers
func (h *ThreatHandler) SecurityHeadersHandler(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SecurityHeadersResponse{Headers: h.headerPolicy.Headers()})
}
