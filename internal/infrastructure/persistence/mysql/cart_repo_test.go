package mysql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshop/internal/domain/cart"
)

func TestCartRepository_FindOrCreateByUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	first, err := repo.FindOrCreateByUser(ctx, 42)
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.Empty(t, first.Items)

	// A second access returns the same cart, not a new one.
	second, err := repo.FindOrCreateByUser(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestCartRepository_ItemsCarryBookTitle(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)
	books := NewBookRepository(db)
	ctx := context.Background()

	b := newBook("Dune", "isbn-1")
	require.NoError(t, books.Create(ctx, b))

	c, err := repo.FindOrCreateByUser(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, repo.AddItem(ctx, &cart.Item{CartID: c.ID, BookID: b.ID, Quantity: 2}))

	c, err = repo.FindOrCreateByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, "Dune", c.Items[0].BookTitle)
	assert.Equal(t, 2, c.Items[0].Quantity)
}

func TestCartRepository_SoftDeletedBookHiddenFromCart(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)
	books := NewBookRepository(db)
	ctx := context.Background()

	b := newBook("Dune", "isbn-1")
	require.NoError(t, books.Create(ctx, b))

	c, err := repo.FindOrCreateByUser(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, repo.AddItem(ctx, &cart.Item{CartID: c.ID, BookID: b.ID, Quantity: 1}))

	require.NoError(t, books.Delete(ctx, b.ID))

	c, err = repo.FindOrCreateByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestCartRepository_FindItemScopedToCart(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)
	books := NewBookRepository(db)
	ctx := context.Background()

	b := newBook("Dune", "isbn-1")
	require.NoError(t, books.Create(ctx, b))

	mine, err := repo.FindOrCreateByUser(ctx, 1)
	require.NoError(t, err)
	item := &cart.Item{CartID: mine.ID, BookID: b.ID, Quantity: 1}
	require.NoError(t, repo.AddItem(ctx, item))

	theirs, err := repo.FindOrCreateByUser(ctx, 2)
	require.NoError(t, err)

	// The item exists but belongs to another cart.
	_, err = repo.FindItem(ctx, theirs.ID, item.ID)
	assert.ErrorIs(t, err, cart.ErrItemNotFound)

	found, err := repo.FindItem(ctx, mine.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, found.ID)
}

func TestCartRepository_UpdateRemoveClear(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)
	books := NewBookRepository(db)
	ctx := context.Background()

	b := newBook("Dune", "isbn-1")
	b2 := newBook("SPQR", "isbn-2")
	require.NoError(t, books.Create(ctx, b))
	require.NoError(t, books.Create(ctx, b2))

	c, err := repo.FindOrCreateByUser(ctx, 1)
	require.NoError(t, err)
	item := &cart.Item{CartID: c.ID, BookID: b.ID, Quantity: 1}
	require.NoError(t, repo.AddItem(ctx, item))
	require.NoError(t, repo.AddItem(ctx, &cart.Item{CartID: c.ID, BookID: b2.ID, Quantity: 3}))

	require.NoError(t, repo.UpdateItemQuantity(ctx, item.ID, 7))
	found, err := repo.FindItem(ctx, c.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, found.Quantity)

	require.NoError(t, repo.RemoveItem(ctx, item.ID))
	assert.ErrorIs(t, repo.RemoveItem(ctx, item.ID), cart.ErrItemNotFound)

	require.NoError(t, repo.Clear(ctx, c.ID))
	c, err = repo.FindOrCreateByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}
