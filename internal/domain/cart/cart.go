package cart

import (
	"time"

	apperrors "bookshop/pkg/errors"
)

// ErrItemNotFound is deliberately a 404 even when the item exists in
// another user's cart, so the API never confirms foreign item ids.
var ErrItemNotFound = apperrors.New(apperrors.KindNotFound, "cart item not found")

// Cart is the per-user shopping cart aggregate. Exactly one cart exists per
// user, created on first access; it exclusively owns its items.
type Cart struct {
	ID        uint
	UserID    uint
	Items     []Item
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Item is one cart line. BookTitle is denormalized for display and filled
// by the repository from the live book row.
type Item struct {
	ID        uint
	CartID    uint
	BookID    uint
	BookTitle string
	Quantity  int
}
