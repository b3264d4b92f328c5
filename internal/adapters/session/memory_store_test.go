package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doctorconsult/appcore/internal/adapters/session"
	"github.com/doctorconsult/appcore/internal/domain/entities"
	apperrors "github.com/doctorconsult/appcore/pkg/errors"
)

func TestMemoryStore_SaveAndGet(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	saved := &entities.Session{
		UserID:    42,
		FullName:  "Ada Okafor",
		Role:      entities.RecipientUser,
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.Save(ctx, saved))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, "Ada Okafor", got.FullName)
	assert.Equal(t, entities.RecipientUser, got.Role)
}

func TestMemoryStore_GetWithoutSession(t *testing.T) {
	store := session.NewMemoryStore()

	_, err := store.Get(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestMemoryStore_Clear(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &entities.Session{UserID: 42}))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Get(ctx)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &entities.Session{UserID: 42, FullName: "Ada Okafor"}))

	first, err := store.Get(ctx)
	require.NoError(t, err)
	first.FullName = "mutated"

	second, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ada Okafor", second.FullName)
}
