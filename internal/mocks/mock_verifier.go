package mocks

import (
	"github.com/Alexs779/bot-flow-vercel/domain"
)

// MockInitDataVerifier implements domain.InitDataVerifier interface for testing
type MockInitDataVerifier struct {
	VerifyFunc func(initData, botToken string, opts domain.VerifyOptions) (*domain.VerifiedAuth, error)
}

var _ domain.InitDataVerifier = (*MockInitDataVerifier)(nil)

// NewMockInitDataVerifier creates a new MockInitDataVerifier with default behaviors
func NewMockInitDataVerifier() *MockInitDataVerifier {
	return &MockInitDataVerifier{}
}

// Verify checks Telegram init data
func (m *MockInitDataVerifier) Verify(initData, botToken string, opts domain.VerifyOptions) (*domain.VerifiedAuth, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(initData, botToken, opts)
	}
	// Default behavior: a verified user with id 1
	return &domain.VerifiedAuth{
		AuthDate: 1_700_000_000,
		Hash:     "mock_hash",
		Payload:  map[string]string{"auth_date": "1700000000"},
		User:     domain.TelegramUser{ID: 1, FirstName: "Mock"},
	}, nil
}
