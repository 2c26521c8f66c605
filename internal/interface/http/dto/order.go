package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemResponse is one snapshotted order line.
type OrderItemResponse struct {
	ID       uint            `json:"id"`
	BookID   uint            `json:"bookId"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// OrderResponse is an order with its lines.
type OrderResponse struct {
	ID         uint                `json:"id"`
	OrderNo    string              `json:"orderNo"`
	UserID     uint                `json:"userId"`
	Status     string              `json:"status"`
	Total      decimal.Decimal     `json:"total"`
	OrderItems []OrderItemResponse `json:"orderItems"`
	OrderDate  time.Time           `json:"orderDate"`
}
