package mocks

import (
	"context"

	"github.com/Alexs779/bot-flow-vercel/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	AuthenticateTelegramFunc func(ctx context.Context, initData string) (*domain.AuthResult, error)
}

var _ domain.AuthService = (*MockAuthService)(nil)

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// AuthenticateTelegram logs a Telegram user in
func (m *MockAuthService) AuthenticateTelegram(ctx context.Context, initData string) (*domain.AuthResult, error) {
	if m.AuthenticateTelegramFunc != nil {
		return m.AuthenticateTelegramFunc(ctx, initData)
	}
	if initData == "" {
		return nil, domain.ErrInitDataEmpty
	}
	// Default behavior: successful auth result
	return &domain.AuthResult{
		User:         domain.NewUser(domain.TelegramProfile{TelegramID: 1, FirstName: "Mock"}),
		SessionToken: "mock_session_token",
	}, nil
}
