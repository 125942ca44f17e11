package users

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/whattowear/internal/common"
	"github.com/dmitrijs2005/whattowear/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	u, err := r.Create(ctx, &models.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "h"})
	require.NoError(t, err)
	require.True(t, models.IsValidID(u.ID))

	byEmail, err := r.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	byID, err := r.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", byID.Name)
}

func TestMemoryRepository_DuplicateEmail(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	_, err := r.Create(ctx, &models.User{Email: "dup@example.com"})
	require.NoError(t, err)

	_, err = r.Create(ctx, &models.User{Email: "dup@example.com", Name: "Other"})
	assert.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestMemoryRepository_ConcurrentSignupsSameEmail(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		oks int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.Create(ctx, &models.User{Email: "race@example.com"}); err == nil {
				mu.Lock()
				oks++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, oks)
}

func TestMemoryRepository_NotFound(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	_, err := r.GetByID(ctx, models.NewID())
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = r.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, common.ErrNotFound)

	name := "x"
	_, err = r.Update(ctx, models.NewID(), models.UserUpdate{Name: &name})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemoryRepository_UpdateKeepsOtherFields(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	u, err := r.Create(ctx, &models.User{Name: "Old", Avatar: "https://x/old.png", Email: "u@example.com"})
	require.NoError(t, err)

	avatar := "https://x/new.png"
	got, err := r.Update(ctx, u.ID, models.UserUpdate{Avatar: &avatar})
	require.NoError(t, err)

	assert.Equal(t, "Old", got.Name)
	assert.Equal(t, avatar, got.Avatar)
	assert.Equal(t, "u@example.com", got.Email)
}

func TestMemoryRepository_ListOrdered(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	for _, e := range []string{"a@x.io", "b@x.io", "c@x.io"} {
		_, err := r.Create(ctx, &models.User{Email: e})
		require.NoError(t, err)
	}

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
}
