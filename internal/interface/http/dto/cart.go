package dto

// AddToCartRequest is the body of POST /cart.
type AddToCartRequest struct {
	BookID   uint `json:"bookId" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItemRequest is the body of PUT /cart/cart-items/:id.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CartItemResponse is one line of the cart.
type CartItemResponse struct {
	ID        uint   `json:"id"`
	BookID    uint   `json:"bookId"`
	BookTitle string `json:"bookTitle"`
	Quantity  int    `json:"quantity"`
}

// CartResponse is the user's cart with its visible items.
type CartResponse struct {
	ID        uint               `json:"id"`
	UserID    uint               `json:"userId"`
	CartItems []CartItemResponse `json:"cartItems"`
}
