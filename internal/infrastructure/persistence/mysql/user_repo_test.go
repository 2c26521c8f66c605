package mysql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshop/internal/domain/user"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &user.User{
		Email:    "alice@example.com",
		Password: "$argon2id$hash",
		Nickname: "alice",
		Roles:    []string{user.RoleUser, user.RoleAdmin},
	}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID)

	byID, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{user.RoleUser, user.RoleAdmin}, byID.Roles)

	byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &user.User{Email: "a@b.com", Password: "h", Roles: []string{user.RoleUser}}))

	err := repo.Create(ctx, &user.User{Email: "a@b.com", Password: "h", Roles: []string{user.RoleUser}})
	assert.ErrorIs(t, err, user.ErrEmailDuplicate)
}

func TestUserRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, user.ErrNotFound)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, user.ErrNotFound)
}
