package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/Alexs779/bot-flow-vercel/domain"
)

// DefaultInvoiceURL is returned while real Bot API invoices are not wired
const DefaultInvoiceURL = "https://t.me/invoice/test"

// PaymentServiceImpl implements domain.PaymentService with a fixed invoice link
type PaymentServiceImpl struct {
	sessions   domain.SessionIssuer
	invoiceURL string
	logger     *zap.Logger
}

var _ domain.PaymentService = (*PaymentServiceImpl)(nil)

// NewPaymentService creates a new payment service
func NewPaymentService(sessions domain.SessionIssuer, invoiceURL string, logger *zap.Logger) *PaymentServiceImpl {
	if invoiceURL == "" {
		invoiceURL = DefaultInvoiceURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentServiceImpl{sessions: sessions, invoiceURL: invoiceURL, logger: logger}
}

// CreateInvoice implements domain.PaymentService
func (s *PaymentServiceImpl) CreateInvoice(ctx context.Context, sessionToken, moveID string) (string, error) {
	if sessionToken == "" || moveID == "" {
		return "", domain.ErrInvoiceRequestInvalid
	}

	claims, err := s.sessions.Parse(sessionToken)
	if err != nil {
		return "", err
	}

	s.logger.Info("invoice requested",
		zap.String("user_id", claims.Subject),
		zap.String("move_id", moveID))
	return s.invoiceURL, nil
}
