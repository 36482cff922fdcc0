package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alexs779/bot-flow-vercel/domain"
)

// runUserRepositoryContract exercises the behaviour every user directory shares
func runUserRepositoryContract(t *testing.T, newRepo func(t *testing.T) domain.UserRepository) {
	t.Helper()
	ctx := context.Background()

	t.Run("creates record with deterministic id", func(t *testing.T) {
		repo := newRepo(t)

		user, err := repo.FindOrCreate(ctx, domain.TelegramProfile{TelegramID: 99, FirstName: "Jamie", Username: "jamie"})
		require.NoError(t, err)

		assert.Equal(t, &domain.User{ID: "telegram:99", TelegramID: 99, FirstName: "Jamie", Username: "jamie"}, user)
	})

	t.Run("identical upsert is idempotent", func(t *testing.T) {
		repo := newRepo(t)
		profile := domain.TelegramProfile{TelegramID: 5, FirstName: "Ann", LastName: "Lee", Username: "ann", AvatarURL: "https://t.me/a.jpg"}

		first, err := repo.FindOrCreate(ctx, profile)
		require.NoError(t, err)
		second, err := repo.FindOrCreate(ctx, profile)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("omitted optional fields keep previous values", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.FindOrCreate(ctx, domain.TelegramProfile{TelegramID: 5, FirstName: "Ann", LastName: "Lee", Username: "ann", AvatarURL: "https://t.me/a.jpg"})
		require.NoError(t, err)
		updated, err := repo.FindOrCreate(ctx, domain.TelegramProfile{TelegramID: 5, FirstName: "Ann", Username: "ann_renamed"})
		require.NoError(t, err)

		assert.Equal(t, "telegram:5", updated.ID)
		assert.Equal(t, "ann_renamed", updated.Username)
		assert.Equal(t, "Lee", updated.LastName)
		assert.Equal(t, "https://t.me/a.jpg", updated.AvatarURL)
	})

	t.Run("different telegram ids do not collide", func(t *testing.T) {
		repo := newRepo(t)

		a, err := repo.FindOrCreate(ctx, domain.TelegramProfile{TelegramID: 1, FirstName: "A"})
		require.NoError(t, err)
		b, err := repo.FindOrCreate(ctx, domain.TelegramProfile{TelegramID: 2, FirstName: "B"})
		require.NoError(t, err)

		assert.NotEqual(t, a.ID, b.ID)
		assert.Equal(t, "A", a.FirstName)
		assert.Equal(t, "B", b.FirstName)
	})

	t.Run("reset clears every record", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.FindOrCreate(ctx, domain.TelegramProfile{TelegramID: 1, FirstName: "A", Username: "a"})
		require.NoError(t, err)
		require.NoError(t, repo.Reset(ctx))

		user, err := repo.FindOrCreate(ctx, domain.TelegramProfile{TelegramID: 1, FirstName: "A"})
		require.NoError(t, err)
		assert.Empty(t, user.Username, "reset record must not retain old fields")
	})
}

// runConcurrentUpserts checks the directory survives parallel logins
func runConcurrentUpserts(t *testing.T, repo domain.UserRepository, workers int) {
	t.Helper()
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, workers*2)
	for i := 0; i < workers; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_, err := repo.FindOrCreate(ctx, domain.TelegramProfile{TelegramID: int64(1000 + i), FirstName: fmt.Sprintf("user%d", i)})
			errs <- err
		}(i)
		go func(i int) {
			defer wg.Done()
			_, err := repo.FindOrCreate(ctx, domain.TelegramProfile{TelegramID: 1, FirstName: "shared", Username: fmt.Sprintf("u%d", i)})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	shared, err := repo.FindOrCreate(ctx, domain.TelegramProfile{TelegramID: 1, FirstName: "shared"})
	require.NoError(t, err)
	assert.Equal(t, "telegram:1", shared.ID)
	assert.NotEmpty(t, shared.Username)
}
