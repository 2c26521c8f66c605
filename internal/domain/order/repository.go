package order

import (
	"context"

	"bookshop/pkg/page"
)

// Repository is implemented by the mysql package.
type Repository interface {
	// Create persists the order with its items in one statement batch.
	Create(ctx context.Context, o *Order) error

	// ListByUser returns the user's orders, newest first by default.
	ListByUser(ctx context.Context, userID uint, p page.Request) ([]*Order, int64, error)
}
