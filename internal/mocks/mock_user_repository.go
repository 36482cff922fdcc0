package mocks

import (
	"context"

	"github.com/Alexs779/bot-flow-vercel/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	FindOrCreateFunc func(ctx context.Context, profile domain.TelegramProfile) (*domain.User, error)
	ResetFunc        func(ctx context.Context) error

	// Calls records every profile passed to FindOrCreate
	Calls []domain.TelegramProfile
}

var _ domain.UserRepository = (*MockUserRepository)(nil)

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// FindOrCreate upserts a user from a Telegram profile
func (m *MockUserRepository) FindOrCreate(ctx context.Context, profile domain.TelegramProfile) (*domain.User, error) {
	m.Calls = append(m.Calls, profile)
	if m.FindOrCreateFunc != nil {
		return m.FindOrCreateFunc(ctx, profile)
	}
	// Default behavior: a fresh user built from the profile
	return domain.NewUser(profile), nil
}

// Reset clears the store
func (m *MockUserRepository) Reset(ctx context.Context) error {
	if m.ResetFunc != nil {
		return m.ResetFunc(ctx)
	}
	m.Calls = nil
	return nil
}
