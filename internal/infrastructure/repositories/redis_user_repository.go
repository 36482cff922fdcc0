package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/Alexs779/bot-flow-vercel/domain"
)

// RedisUserRepository implements domain.UserRepository with one JSON document per user
type RedisUserRepository struct {
	client *redis.Client
	prefix string
}

// NewRedisUserRepository creates a new redis backed user directory
func NewRedisUserRepository(client *redis.Client) *RedisUserRepository {
	return &RedisUserRepository{
		client: client,
		prefix: "user:telegram:",
	}
}

func (r *RedisUserRepository) key(telegramID int64) string {
	return r.prefix + strconv.FormatInt(telegramID, 10)
}

// FindOrCreate implements domain.UserRepository
func (r *RedisUserRepository) FindOrCreate(ctx context.Context, profile domain.TelegramProfile) (*domain.User, error) {
	key := r.key(profile.TelegramID)

	var user *domain.User
	data, err := r.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		user = domain.NewUser(profile)
	case err != nil:
		return nil, fmt.Errorf("failed to load user %s: %w", key, err)
	default:
		user = &domain.User{}
		if err := json.Unmarshal(data, user); err != nil {
			return nil, fmt.Errorf("failed to unmarshal user %s: %w", key, err)
		}
		user.Apply(profile)
	}

	encoded, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal user: %w", err)
	}
	if err := r.client.Set(ctx, key, encoded, 0).Err(); err != nil {
		return nil, fmt.Errorf("failed to store user %s: %w", key, err)
	}
	return user, nil
}

// Reset implements domain.UserRepository
func (r *RedisUserRepository) Reset(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan users: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

var _ domain.UserRepository = (*RedisUserRepository)(nil)
