package dto

import "github.com/shopspring/decimal"

// CreateBookRequest is the body of POST /books and PUT /books/:id.
type CreateBookRequest struct {
	Title       string          `json:"title" binding:"required"`
	Author      string          `json:"author" binding:"required"`
	ISBN        string          `json:"isbn" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	CoverImage  string          `json:"coverImage"`
	CategoryIDs []uint          `json:"categoryIds"`
}

// BookResponse is the flat book representation; categories appear as ids.
type BookResponse struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	ISBN        string          `json:"isbn"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	CoverImage  string          `json:"coverImage"`
	CategoryIDs []uint          `json:"categoryIds"`
}
