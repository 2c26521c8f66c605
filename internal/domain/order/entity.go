package order

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "bookshop/pkg/errors"
)

var (
	ErrNotFound  = apperrors.New(apperrors.KindNotFound, "order not found")
	ErrEmptyCart = apperrors.New(apperrors.KindValidation, "shopping cart is empty")
)

// Status of an order. Payment is out of scope, so orders move straight to
// COMPLETED at placement; PENDING exists for forward compatibility.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
)

// Order snapshots the cart at the moment of placement: item titles and unit
// prices are copied, so later catalog edits never rewrite history.
type Order struct {
	ID        uint
	OrderNo   string
	UserID    uint
	Status    Status
	Total     decimal.Decimal
	Items     []Item
	CreatedAt time.Time
}

// Item is one snapshotted order line.
type Item struct {
	ID       uint
	OrderID  uint
	BookID   uint
	Title    string
	Price    decimal.Decimal
	Quantity int
}

// NewOrderNo produces the business key for a new order.
func NewOrderNo() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:13])
}
