package book

import (
	"time"

	"github.com/shopspring/decimal"

	apperrors "bookshop/pkg/errors"
)

var (
	ErrNotFound      = apperrors.New(apperrors.KindNotFound, "book not found")
	ErrISBNDuplicate = apperrors.New(apperrors.KindConflict, "isbn already exists")
)

// Book is the catalog aggregate root. Price is a 2-scale decimal, never a
// float. CategoryIDs is the full association set; categories themselves are
// never embedded.
type Book struct {
	ID          uint
	Title       string
	Author      string
	ISBN        string
	Price       decimal.Decimal
	Description string
	CoverImage  string
	CategoryIDs []uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the field-level invariants that do not need the database.
func (b *Book) Validate() error {
	if b.Title == "" {
		return apperrors.New(apperrors.KindValidation, "title must not be blank")
	}
	if b.Author == "" {
		return apperrors.New(apperrors.KindValidation, "author must not be blank")
	}
	if b.ISBN == "" {
		return apperrors.New(apperrors.KindValidation, "isbn must not be blank")
	}
	if b.Price.IsNegative() {
		return apperrors.New(apperrors.KindValidation, "price must not be negative")
	}
	return nil
}
