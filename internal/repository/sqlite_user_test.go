package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sehyunpark/jindo/internal/domain"
	"github.com/sehyunpark/jindo/internal/repository"
	"github.com/sehyunpark/jindo/internal/testutil"
)

func TestUserRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteUserRepo(database)
	ctx := context.Background()

	created := &domain.User{
		Username:     "sehyun",
		PasswordHash: "$2a$10$fakehash",
		CreatedAt:    time.Date(2025, 8, 25, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(ctx, created))

	got, err := repo.GetByUsername(ctx, "sehyun")
	require.NoError(t, err)
	assert.Equal(t, created.Username, got.Username)
	assert.Equal(t, created.PasswordHash, got.PasswordHash)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
}

func TestUserRepo_Create_DuplicateUsername(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteUserRepo(database)
	ctx := context.Background()

	user := &domain.User{Username: "sehyun", PasswordHash: "x", CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, user))

	err := repo.Create(ctx, user)
	assert.ErrorIs(t, err, repository.ErrUserExists)
}

func TestUserRepo_GetByUsername_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteUserRepo(database)

	_, err := repo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAuthSessionRepo_SetCurrentAndClear(t *testing.T) {
	database := testutil.NewTestDB(t)
	testutil.CreateTestUser(t, database, "sehyun")
	testutil.CreateTestUser(t, database, "minji")
	repo := repository.NewSQLiteAuthSessionRepo(database)
	ctx := context.Background()

	_, err := repo.Current(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.SetCurrent(ctx, "sehyun"))
	current, err := repo.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sehyun", current)

	// A second login replaces the singleton row.
	require.NoError(t, repo.SetCurrent(ctx, "minji"))
	current, err = repo.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "minji", current)

	require.NoError(t, repo.Clear(ctx))
	_, err = repo.Current(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
