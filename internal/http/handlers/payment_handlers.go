package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Alexs779/bot-flow-vercel/domain"
)

const invoiceFailedMsg = "Failed to create payment invoice"

// PaymentHandlers handles Telegram Stars invoice requests
type PaymentHandlers struct {
	paymentSvc domain.PaymentService
	logger     *zap.Logger
}

// NewPaymentHandlers creates new payment handlers
func NewPaymentHandlers(paymentSvc domain.PaymentService, logger *zap.Logger) *PaymentHandlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentHandlers{paymentSvc: paymentSvc, logger: logger}
}

// InvoiceRequest represents an invoice request
type InvoiceRequest struct {
	SessionToken string `json:"sessionToken"`
	MoveID       string `json:"moveId"`
}

// CreateInvoice returns an invoice link for a purchasable move
func (h *PaymentHandlers) CreateInvoice(c *gin.Context) {
	var req InvoiceRequest
	// A malformed body is treated as one missing both fields
	_ = c.ShouldBindJSON(&req)

	url, err := h.paymentSvc.CreateInvoice(c.Request.Context(), req.SessionToken, req.MoveID)
	if err != nil {
		writeError(c, h.logger, err, invoiceFailedMsg)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "invoiceUrl": url})
}
