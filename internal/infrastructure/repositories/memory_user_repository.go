package repositories

import (
	"context"
	"sync"

	"github.com/Alexs779/bot-flow-vercel/domain"
)

// MemoryUserRepository implements domain.UserRepository with a guarded map
type MemoryUserRepository struct {
	mu    sync.Mutex
	users map[int64]domain.User
}

// NewMemoryUserRepository creates an empty in-memory user directory
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[int64]domain.User)}
}

// FindOrCreate implements domain.UserRepository
func (r *MemoryUserRepository) FindOrCreate(_ context.Context, profile domain.TelegramProfile) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[profile.TelegramID]
	if !ok {
		user = *domain.NewUser(profile)
	} else {
		user.Apply(profile)
	}
	r.users[profile.TelegramID] = user

	out := user
	return &out, nil
}

// Reset implements domain.UserRepository
func (r *MemoryUserRepository) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = make(map[int64]domain.User)
	return nil
}

// Len returns the number of stored users
func (r *MemoryUserRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

var _ domain.UserRepository = (*MemoryUserRepository)(nil)
