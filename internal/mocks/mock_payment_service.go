package mocks

import (
	"context"

	"github.com/Alexs779/bot-flow-vercel/domain"
)

// MockPaymentService implements domain.PaymentService interface for testing
type MockPaymentService struct {
	CreateInvoiceFunc func(ctx context.Context, sessionToken, moveID string) (string, error)
}

var _ domain.PaymentService = (*MockPaymentService)(nil)

// NewMockPaymentService creates a new MockPaymentService with default behaviors
func NewMockPaymentService() *MockPaymentService {
	return &MockPaymentService{}
}

// CreateInvoice returns an invoice link
func (m *MockPaymentService) CreateInvoice(ctx context.Context, sessionToken, moveID string) (string, error) {
	if m.CreateInvoiceFunc != nil {
		return m.CreateInvoiceFunc(ctx, sessionToken, moveID)
	}
	return "https://t.me/invoice/mock", nil
}
