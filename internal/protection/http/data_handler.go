// Package http provides HTTP handlers for masking and anonymizing records.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitesapp/security/internal/httputil"
	"github.com/bitesapp/security/internal/protection/http/dto"
	protectionService "github.com/bitesapp/security/internal/protection/service"
	customValidation "github.com/bitesapp/security/internal/validation"
)

// DataHandler handles HTTP requests that produce display-safe views of records.
type DataHandler struct {
	masker protectionService.Masker
	logger *slog.Logger
}

// NewDataHandler creates a new data handler with required dependencies.
func NewDataHandler(masker protectionService.Masker, logger *slog.Logger) *DataHandler {
	return &DataHandler{
		masker: masker,
		logger: logger,
	}
}

// MaskHandler redacts the sensitive fields of a record.
// POST /v1/data/mask
func (h *DataHandler) MaskHandler(c *gin.Context) {
	req, ok := h.bindRecord(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.RecordResponse{Data: h.masker.MaskSensitiveData(req.Data)})
}

// AnonymizeHandler replaces the personal identifiers of a record.
// POST /v1/data/anonymize
func (h *DataHandler) AnonymizeHandler(c *gin.Context) {
	req, ok := h.bindRecord(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.RecordResponse{Data: h.masker.AnonymizePersonalData(req.Data)})
}

// MaskCardHandler truncates a card number to its last four digits.
// POST /v1/data/mask-card
func (h *DataHandler) MaskCardHandler(c *gin.Context) {
	var req dto.MaskCardRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MaskCardResponse{Masked: h.masker.MaskCreditCard(req.CardNumber)})
}

func (h *DataHandler) bindRecord(c *gin.Context) (*dto.RecordRequest, bool) {
	var req dto.RecordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return nil, false
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return nil, false
	}

	return &req, true
}
