package cart

import "context"

// Repository is implemented by the mysql package. Items returned by
// FindOrCreateByUser exclude those whose book has been soft-deleted.
type Repository interface {
	// FindOrCreateByUser returns the user's cart with its visible items,
	// creating an empty cart atomically on first access.
	FindOrCreateByUser(ctx context.Context, userID uint) (*Cart, error)

	// FindItem loads an item only when it belongs to the given cart;
	// anything else is ErrItemNotFound.
	FindItem(ctx context.Context, cartID, itemID uint) (*Item, error)

	// FindItemByBook returns the cart's item for a book, or ErrItemNotFound.
	FindItemByBook(ctx context.Context, cartID, bookID uint) (*Item, error)

	AddItem(ctx context.Context, item *Item) error
	UpdateItemQuantity(ctx context.Context, itemID uint, quantity int) error
	RemoveItem(ctx context.Context, itemID uint) error

	// Clear removes every item from the cart (used after order placement).
	Clear(ctx context.Context, cartID uint) error
}
