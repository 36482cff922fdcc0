package mocks

import (
	"time"

	"github.com/Alexs779/bot-flow-vercel/domain"
)

// MockSessionIssuer implements domain.SessionIssuer interface for testing
type MockSessionIssuer struct {
	IssueFunc func(userID string, telegramID int64) (string, error)
	ParseFunc func(token string) (*domain.SessionClaims, error)
}

var _ domain.SessionIssuer = (*MockSessionIssuer)(nil)

// NewMockSessionIssuer creates a new MockSessionIssuer with default behaviors
func NewMockSessionIssuer() *MockSessionIssuer {
	return &MockSessionIssuer{}
}

// Issue signs a session token
func (m *MockSessionIssuer) Issue(userID string, telegramID int64) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID, telegramID)
	}
	return "mock_session_token", nil
}

// Parse validates a session token
func (m *MockSessionIssuer) Parse(token string) (*domain.SessionClaims, error) {
	if m.ParseFunc != nil {
		return m.ParseFunc(token)
	}
	if token != "mock_session_token" {
		return nil, domain.ErrSessionInvalid
	}
	now := time.Now()
	return &domain.SessionClaims{
		Subject:    domain.UserIDFor(1),
		TelegramID: 1,
		IssuedAt:   now,
		ExpiresAt:  now.Add(time.Hour),
		TokenID:    "mock_jti",
	}, nil
}
