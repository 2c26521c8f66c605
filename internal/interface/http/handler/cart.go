package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshop/internal/domain/cart"
	"bookshop/internal/interface/http/dto"
	"bookshop/internal/interface/http/mapper"
	"bookshop/internal/interface/http/middleware"
	"bookshop/pkg/response"
)

// CartHandler serves the shopping cart endpoints. The cart is always the
// authenticated user's own; no cart id ever appears in a URL.
type CartHandler struct {
	carts cart.Service
}

func NewCartHandler(carts cart.Service) *CartHandler {
	return &CartHandler{carts: carts}
}

// View godoc
// @Summary Get the current user's cart
// @Tags cart
// @Produce json
// @Success 200 {object} dto.CartResponse
// @Security BearerAuth
// @Router /cart [get]
func (h *CartHandler) View(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	found, err := h.carts.View(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToCartResponse(found))
}

// AddItem godoc
// @Summary Add a book to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param request body dto.AddToCartRequest true "item"
// @Success 200 {object} dto.CartResponse
// @Security BearerAuth
// @Router /cart [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	userID := middleware.CurrentUserID(c)
	updated, err := h.carts.AddItem(c.Request.Context(), userID, req.BookID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToCartResponse(updated))
}

// UpdateItem godoc
// @Summary Set the quantity of a cart item
// @Tags cart
// @Accept json
// @Produce json
// @Param id path int true "cart item id"
// @Param request body dto.UpdateCartItemRequest true "quantity"
// @Success 200 {object} dto.CartResponse
// @Security BearerAuth
// @Router /cart/cart-items/{id} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	userID := middleware.CurrentUserID(c)
	updated, err := h.carts.UpdateItem(c.Request.Context(), userID, id, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToCartResponse(updated))
}

// RemoveItem godoc
// @Summary Remove a cart item
// @Tags cart
// @Param id path int true "cart item id"
// @Success 204
// @Security BearerAuth
// @Router /cart/cart-items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	userID := middleware.CurrentUserID(c)
	if err := h.carts.RemoveItem(c.Request.Context(), userID, id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
