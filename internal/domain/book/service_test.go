package book_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bookshop/internal/domain/book"
	"bookshop/internal/domain/category"
	"bookshop/internal/infrastructure/persistence/mysql"
	apperrors "bookshop/pkg/errors"
	"bookshop/pkg/page"
)

type fixture struct {
	books      book.Service
	categories category.Repository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, mysql.Migrate(db))

	categories := mysql.NewCategoryRepository(db)
	return &fixture{
		books:      book.NewService(mysql.NewBookRepository(db), categories),
		categories: categories,
	}
}

func (f *fixture) seedCategory(t *testing.T, name string) *category.Category {
	t.Helper()
	c := &category.Category{Name: name}
	require.NoError(t, f.categories.Create(context.Background(), c))
	return c
}

func validBook(isbn string, categoryIDs ...uint) *book.Book {
	return &book.Book{
		Title:       "Dune",
		Author:      "Herbert",
		ISBN:        isbn,
		Price:       decimal.NewFromFloat(9.99),
		CategoryIDs: categoryIDs,
	}
}

func TestService_CreateRejectsBlankFields(t *testing.T) {
	f := newFixture(t)

	b := validBook("isbn-1")
	b.Title = ""
	_, err := f.books.Create(context.Background(), b)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestService_CreateRejectsNegativePrice(t *testing.T) {
	f := newFixture(t)

	b := validBook("isbn-1")
	b.Price = decimal.NewFromInt(-1)
	_, err := f.books.Create(context.Background(), b)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestService_CreateRejectsUnknownCategory(t *testing.T) {
	f := newFixture(t)

	_, err := f.books.Create(context.Background(), validBook("isbn-1", 999))
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	assert.Contains(t, err.Error(), "category 999")
}

func TestService_CreateLinksCategories(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	fiction := f.seedCategory(t, "Fiction")

	created, err := f.books.Create(ctx, validBook("isbn-1", fiction.ID))
	require.NoError(t, err)

	found, err := f.books.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{fiction.ID}, found.CategoryIDs)
}

func TestService_UpdateIsFullReplacement(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	fiction := f.seedCategory(t, "Fiction")
	history := f.seedCategory(t, "History")

	created, err := f.books.Create(ctx, validBook("isbn-1", fiction.ID, history.ID))
	require.NoError(t, err)

	replacement := validBook("isbn-1", history.ID)
	replacement.Description = ""
	updated, err := f.books.Update(ctx, created.ID, replacement)
	require.NoError(t, err)
	assert.Equal(t, []uint{history.ID}, updated.CategoryIDs)
}

func TestService_ListByCategoryUnknownCategory(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.books.ListByCategory(context.Background(), 999, page.New(0, 20, ""))
	assert.ErrorIs(t, err, category.ErrNotFound)
}

func TestService_ListByCategoryAfterCategoryDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	fiction := f.seedCategory(t, "Fiction")

	_, err := f.books.Create(ctx, validBook("isbn-1", fiction.ID))
	require.NoError(t, err)
	require.NoError(t, f.categories.Delete(ctx, fiction.ID))

	// The association rows survive, but the deleted category must 404.
	_, _, err = f.books.ListByCategory(ctx, fiction.ID, page.New(0, 20, ""))
	assert.ErrorIs(t, err, category.ErrNotFound)
}
