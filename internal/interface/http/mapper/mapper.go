// Package mapper converts domain entities to response DTOs. Every function
// is pure; the same entity always yields the same DTO.
package mapper

import (
	"bookshop/internal/domain/book"
	"bookshop/internal/domain/cart"
	"bookshop/internal/domain/category"
	"bookshop/internal/domain/order"
	"bookshop/internal/domain/user"
	"bookshop/internal/interface/http/dto"
)

func ToBookResponse(b *book.Book) dto.BookResponse {
	categoryIDs := b.CategoryIDs
	if categoryIDs == nil {
		categoryIDs = []uint{}
	}
	return dto.BookResponse{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		Price:       b.Price,
		Description: b.Description,
		CoverImage:  b.CoverImage,
		CategoryIDs: categoryIDs,
	}
}

func ToBookResponses(books []*book.Book) []dto.BookResponse {
	out := make([]dto.BookResponse, len(books))
	for i, b := range books {
		out[i] = ToBookResponse(b)
	}
	return out
}

func ToCategoryResponse(c *category.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

func ToCategoryResponses(categories []*category.Category) []dto.CategoryResponse {
	out := make([]dto.CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = ToCategoryResponse(c)
	}
	return out
}

func ToCartResponse(c *cart.Cart) dto.CartResponse {
	items := make([]dto.CartItemResponse, len(c.Items))
	for i, item := range c.Items {
		items[i] = dto.CartItemResponse{
			ID:        item.ID,
			BookID:    item.BookID,
			BookTitle: item.BookTitle,
			Quantity:  item.Quantity,
		}
	}
	return dto.CartResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		CartItems: items,
	}
}

func ToUserResponse(u *user.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		Nickname: u.Nickname,
		Roles:    u.Roles,
	}
}

func ToOrderResponse(o *order.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = dto.OrderItemResponse{
			ID:       item.ID,
			BookID:   item.BookID,
			Title:    item.Title,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}
	return dto.OrderResponse{
		ID:         o.ID,
		OrderNo:    o.OrderNo,
		UserID:     o.UserID,
		Status:     string(o.Status),
		Total:      o.Total,
		OrderItems: items,
		OrderDate:  o.CreatedAt,
	}
}

func ToOrderResponses(orders []*order.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = ToOrderResponse(o)
	}
	return out
}
