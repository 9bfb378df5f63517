package storage

import (
	"context"
	"testing"

	"ulaz/internal/domain/entity"
	"ulaz/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_SaveLoadClear(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	session := &entity.Session{
		UserID:   42,
		Username: "ana",
		Email:    "ana@example.com",
		Role:     entity.RoleCustomer,
		Token:    "header.payload.sig",
	}
	require.NoError(t, repo.Save(ctx, session))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), loaded.UserID)
	assert.Equal(t, "ana", loaded.Username)
	assert.Equal(t, "ana@example.com", loaded.Email)
	assert.Equal(t, entity.RoleCustomer, loaded.Role)
	assert.Equal(t, "header.payload.sig", loaded.Token)
	// Expiry is never stored; the session store recovers it from the token.
	assert.True(t, loaded.ExpiresAt.IsZero())

	require.NoError(t, repo.Clear(ctx))
	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestMemoryRepository_SaveReplacesPrevious(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.Session{UserID: 1, Token: "first"}))
	require.NoError(t, repo.Save(ctx, &entity.Session{UserID: 2, Token: "second", Role: entity.RoleAdmin}))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), loaded.UserID)
	assert.Equal(t, "second", loaded.Token)
	assert.Equal(t, entity.RoleAdmin, loaded.Role)
}

func TestMemoryRepository_ClearIsIdempotent(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Clear(ctx))
	require.NoError(t, repo.Clear(ctx))
}
