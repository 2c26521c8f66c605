package order

import (
	"context"

	"github.com/shopspring/decimal"

	"bookshop/internal/domain/book"
	"bookshop/internal/domain/cart"
	"bookshop/internal/domain/order"
	"bookshop/internal/domain/tx"
	apperrors "bookshop/pkg/errors"
	"bookshop/pkg/page"
)

// UseCase turns a shopping cart into an order. Placement snapshots titles
// and prices, writes the order and clears the cart in one transaction.
type UseCase struct {
	carts  cart.Repository
	orders order.Repository
	books  book.Repository
	tx     tx.Manager
}

func NewUseCase(carts cart.Repository, orders order.Repository, books book.Repository, tx tx.Manager) *UseCase {
	return &UseCase{carts: carts, orders: orders, books: books, tx: tx}
}

// Place creates an order from the user's current cart.
func (uc *UseCase) Place(ctx context.Context, userID uint) (*order.Order, error) {
	var placed *order.Order
	err := uc.tx.Transaction(ctx, func(ctx context.Context) error {
		c, err := uc.carts.FindOrCreateByUser(ctx, userID)
		if err != nil {
			return err
		}
		if len(c.Items) == 0 {
			return order.ErrEmptyCart
		}

		items := make([]order.Item, 0, len(c.Items))
		total := decimal.Zero
		for _, ci := range c.Items {
			// The cart view already filters unavailable books, but the
			// book may vanish between the read and this point.
			b, err := uc.books.FindByID(ctx, ci.BookID)
			if err != nil {
				if apperrors.IsKind(err, apperrors.KindNotFound) {
					continue
				}
				return err
			}
			items = append(items, order.Item{
				BookID:   b.ID,
				Title:    b.Title,
				Price:    b.Price,
				Quantity: ci.Quantity,
			})
			total = total.Add(b.Price.Mul(decimal.NewFromInt(int64(ci.Quantity))))
		}
		if len(items) == 0 {
			return order.ErrEmptyCart
		}

		placed = &order.Order{
			OrderNo: order.NewOrderNo(),
			UserID:  userID,
			Status:  order.StatusCompleted,
			Total:   total,
			Items:   items,
		}
		if err := uc.orders.Create(ctx, placed); err != nil {
			return err
		}
		return uc.carts.Clear(ctx, c.ID)
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}

// List returns the user's order history.
func (uc *UseCase) List(ctx context.Context, userID uint, p page.Request) ([]*order.Order, int64, error) {
	return uc.orders.ListByUser(ctx, userID, p)
}
