package cart

import (
	"context"

	"bookshop/internal/domain/book"
	"bookshop/internal/domain/tx"
	apperrors "bookshop/pkg/errors"
)

// Service holds the cart operations. Every mutation runs inside a single
// transaction that reads the cart and writes its items, so interleaved
// requests from one user resolve as last-writer-wins at row level.
type Service interface {
	View(ctx context.Context, userID uint) (*Cart, error)
	// AddItem increments the quantity when an item for the book already
	// exists; it never replaces it.
	AddItem(ctx context.Context, userID, bookID uint, quantity int) (*Cart, error)
	UpdateItem(ctx context.Context, userID, itemID uint, quantity int) (*Cart, error)
	RemoveItem(ctx context.Context, userID, itemID uint) error
}

type service struct {
	repo  Repository
	books book.Repository
	tx    tx.Manager
}

// NewService creates the shopping cart service.
func NewService(repo Repository, books book.Repository, tx tx.Manager) Service {
	return &service{repo: repo, books: books, tx: tx}
}

func (s *service) View(ctx context.Context, userID uint) (*Cart, error) {
	return s.repo.FindOrCreateByUser(ctx, userID)
}

func (s *service) AddItem(ctx context.Context, userID, bookID uint, quantity int) (*Cart, error) {
	if quantity < 1 {
		return nil, apperrors.New(apperrors.KindValidation, "quantity must be at least 1")
	}

	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		c, err := s.repo.FindOrCreateByUser(ctx, userID)
		if err != nil {
			return err
		}

		// The book must be live; a soft-deleted book cannot enter a cart.
		if _, err := s.books.FindByID(ctx, bookID); err != nil {
			if apperrors.IsKind(err, apperrors.KindNotFound) {
				return apperrors.Newf(apperrors.KindValidation, "book %d does not exist", bookID)
			}
			return err
		}

		existing, err := s.repo.FindItemByBook(ctx, c.ID, bookID)
		switch {
		case err == nil:
			return s.repo.UpdateItemQuantity(ctx, existing.ID, existing.Quantity+quantity)
		case apperrors.IsKind(err, apperrors.KindNotFound):
			return s.repo.AddItem(ctx, &Item{CartID: c.ID, BookID: bookID, Quantity: quantity})
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}

	return s.repo.FindOrCreateByUser(ctx, userID)
}

func (s *service) UpdateItem(ctx context.Context, userID, itemID uint, quantity int) (*Cart, error) {
	if quantity < 1 {
		return nil, apperrors.New(apperrors.KindValidation, "quantity must be at least 1")
	}

	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		c, err := s.repo.FindOrCreateByUser(ctx, userID)
		if err != nil {
			return err
		}
		item, err := s.repo.FindItem(ctx, c.ID, itemID)
		if err != nil {
			return err
		}
		return s.repo.UpdateItemQuantity(ctx, item.ID, quantity)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.FindOrCreateByUser(ctx, userID)
}

func (s *service) RemoveItem(ctx context.Context, userID, itemID uint) error {
	return s.tx.Transaction(ctx, func(ctx context.Context) error {
		c, err := s.repo.FindOrCreateByUser(ctx, userID)
		if err != nil {
			return err
		}
		item, err := s.repo.FindItem(ctx, c.ID, itemID)
		if err != nil {
			return err
		}
		return s.repo.RemoveItem(ctx, item.ID)
	})
}
