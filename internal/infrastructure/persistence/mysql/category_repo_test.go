package mysql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshop/internal/domain/category"
	"bookshop/pkg/page"
)

func TestCategoryRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	c := &category.Category{Name: "Fiction", Description: "Novels"}
	require.NoError(t, repo.Create(ctx, c))
	assert.NotZero(t, c.ID)

	found, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fiction", found.Name)

	found.Description = "Long-form fiction"
	require.NoError(t, repo.Update(ctx, found))

	again, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Long-form fiction", again.Description)
}

func TestCategoryRepository_DuplicateName(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &category.Category{Name: "Fiction"}))

	err := repo.Create(ctx, &category.Category{Name: "Fiction"})
	assert.ErrorIs(t, err, category.ErrNameDuplicate)
}

func TestCategoryRepository_SoftDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	c := &category.Category{Name: "Fiction"}
	require.NoError(t, repo.Create(ctx, c))
	require.NoError(t, repo.Delete(ctx, c.ID))

	_, err := repo.FindByID(ctx, c.ID)
	assert.ErrorIs(t, err, category.ErrNotFound)

	_, total, err := repo.List(ctx, page.New(0, 20, ""))
	require.NoError(t, err)
	assert.Zero(t, total)

	assert.ErrorIs(t, repo.Delete(ctx, c.ID), category.ErrNotFound)
}
