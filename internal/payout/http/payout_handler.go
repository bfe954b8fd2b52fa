// Package http provides HTTP handlers for sealing payouts for the external gateway.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitesapp/security/internal/httputil"
	payoutDomain "github.com/bitesapp/security/internal/payout/domain"
	"github.com/bitesapp/security/internal/payout/http/dto"
	payoutUseCase "github.com/bitesapp/security/internal/payout/usecase"
	customValidation "github.com/bitesapp/security/internal/validation"
)

// PayoutHandler handles HTTP requests for payout sealing.
type PayoutHandler struct {
	payoutSealer payoutUseCase.PayoutSealer
	logger       *slog.Logger
}

// NewPayoutHandler creates a new payout handler with required dependencies.
func NewPayoutHandler(payoutSealer payoutUseCase.PayoutSealer, logger *slog.Logger) *PayoutHandler {
	return &PayoutHandler{
		payoutSealer: payoutSealer,
		logger:       logger,
	}
}

// SealHandler encrypts a payout request for the gateway.
// POST /v1/payouts/seal
// Returns 200 OK with the merchant id and encrypted body.
func (h *PayoutHandler) SealHandler(c *gin.Context) {
	var req dto.SealPayoutRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	sealed, err := h.payoutSealer.Seal(c.Request.Context(), req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.SealedPayoutResponse{
		MerchantID: sealed.MerchantID,
		EncData:    sealed.EncData,
	})
}

// OpenHandler decrypts a sealed payout addressed to this merchant.
// POST /v1/payouts/open
func (h *PayoutHandler) OpenHandler(c *gin.Context) {
	var req dto.OpenPayoutRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	payout, err := h.payoutSealer.Open(c.Request.Context(), &payoutDomain.SealedPayout{
		MerchantID: req.MerchantID,
		EncData:    req.EncData,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPayoutToResponse(payout))
}
