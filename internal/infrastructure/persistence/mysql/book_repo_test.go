package mysql

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshop/internal/domain/book"
	"bookshop/internal/domain/category"
	"bookshop/pkg/page"
)

func seedCategory(t *testing.T, repo category.Repository, name string) *category.Category {
	t.Helper()
	c := &category.Category{Name: name}
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func newBook(title, isbn string, categoryIDs ...uint) *book.Book {
	return &book.Book{
		Title:       title,
		Author:      "Author",
		ISBN:        isbn,
		Price:       decimal.NewFromFloat(19.99),
		CategoryIDs: categoryIDs,
	}
}

func TestBookRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookRepository(db)
	categories := NewCategoryRepository(db)
	ctx := context.Background()

	fiction := seedCategory(t, categories, "Fiction")

	b := newBook("Dune", "978-0441013593", fiction.ID)
	require.NoError(t, repo.Create(ctx, b))
	assert.NotZero(t, b.ID)

	found, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", found.Title)
	assert.True(t, found.Price.Equal(decimal.NewFromFloat(19.99)))
	assert.Equal(t, []uint{fiction.ID}, found.CategoryIDs)
}

func TestBookRepository_DuplicateISBN(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newBook("First", "978-161-729-045-9")))

	err := repo.Create(ctx, newBook("Second", "978-161-729-045-9"))
	assert.ErrorIs(t, err, book.ErrISBNDuplicate)
}

func TestBookRepository_UpdateReplacesCategories(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookRepository(db)
	categories := NewCategoryRepository(db)
	ctx := context.Background()

	fiction := seedCategory(t, categories, "Fiction")
	scifi := seedCategory(t, categories, "Science Fiction")

	b := newBook("Dune", "978-0441013593", fiction.ID)
	require.NoError(t, repo.Create(ctx, b))

	b.CategoryIDs = []uint{scifi.ID}
	require.NoError(t, repo.Update(ctx, b))

	found, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{scifi.ID}, found.CategoryIDs)
}

func TestBookRepository_UpdatePreservesCreatedAt(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookRepository(db)
	ctx := context.Background()

	b := newBook("Dune", "978-0441013593")
	require.NoError(t, repo.Create(ctx, b))
	createdAt := b.CreatedAt
	require.False(t, createdAt.IsZero())

	b.Title = "Dune Messiah"
	require.NoError(t, repo.Update(ctx, b))

	found, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", found.Title)
	assert.True(t, found.CreatedAt.Equal(createdAt))
}

func TestBookRepository_SoftDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookRepository(db)
	ctx := context.Background()

	b := newBook("Dune", "978-0441013593")
	require.NoError(t, repo.Create(ctx, b))
	require.NoError(t, repo.Delete(ctx, b.ID))

	_, err := repo.FindByID(ctx, b.ID)
	assert.ErrorIs(t, err, book.ErrNotFound)

	// The row survives as a tombstone.
	var count int64
	require.NoError(t, db.Unscoped().Model(&BookModel{}).Where("id = ?", b.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	assert.ErrorIs(t, repo.Delete(ctx, b.ID), book.ErrNotFound)
}

func TestBookRepository_ListPagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookRepository(db)
	ctx := context.Background()

	isbns := []string{"isbn-1", "isbn-2", "isbn-3", "isbn-4", "isbn-5"}
	for _, isbn := range isbns {
		require.NoError(t, repo.Create(ctx, newBook("Book "+isbn, isbn)))
	}

	first, total, err := repo.List(ctx, page.New(0, 2, "id,asc"))
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, first, 2)

	second, _, err := repo.List(ctx, page.New(1, 2, "id,asc"))
	require.NoError(t, err)
	require.Len(t, second, 2)

	// Consecutive pages never overlap.
	assert.Less(t, first[1].ID, second[0].ID)
}

func TestBookRepository_ListByCategory(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookRepository(db)
	categories := NewCategoryRepository(db)
	ctx := context.Background()

	fiction := seedCategory(t, categories, "Fiction")
	history := seedCategory(t, categories, "History")

	require.NoError(t, repo.Create(ctx, newBook("Dune", "isbn-1", fiction.ID)))
	require.NoError(t, repo.Create(ctx, newBook("SPQR", "isbn-2", history.ID)))

	books, total, err := repo.ListByCategory(ctx, fiction.ID, page.New(0, 20, ""))
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)
}

func TestBookRepository_SortWhitelistFallsBack(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newBook("B", "isbn-1")))
	require.NoError(t, repo.Create(ctx, newBook("A", "isbn-2")))

	// An unknown sort field must not reach the SQL; the default order wins.
	books, _, err := repo.List(ctx, page.New(0, 20, "password,desc"))
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "B", books[0].Title)
}
