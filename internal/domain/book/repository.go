package book

import (
	"context"

	"bookshop/pkg/page"
)

// Repository is defined here and implemented by the mysql package, so the
// domain stays free of GORM and services can be tested against any store.
// Every read excludes soft-deleted books.
type Repository interface {
	// Create persists the book and its category links atomically.
	// Returns ErrISBNDuplicate on a unique-key violation.
	Create(ctx context.Context, b *Book) error

	FindByID(ctx context.Context, id uint) (*Book, error)

	// Update writes all fields and fully replaces the category association
	// with b.CategoryIDs.
	Update(ctx context.Context, b *Book) error

	// Delete soft-deletes. Category links remain but become invisible
	// through every default query.
	Delete(ctx context.Context, id uint) error

	List(ctx context.Context, p page.Request) ([]*Book, int64, error)

	// ListByCategory returns the page of live books linked to the category.
	ListByCategory(ctx context.Context, categoryID uint, p page.Request) ([]*Book, int64, error)
}
