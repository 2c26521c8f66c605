package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshop/internal/application/order"
	"bookshop/internal/interface/http/dto"
	"bookshop/internal/interface/http/mapper"
	"bookshop/internal/interface/http/middleware"
	"bookshop/pkg/response"
)

// OrderHandler serves order placement and history.
type OrderHandler struct {
	orders *order.UseCase
}

func NewOrderHandler(uc *order.UseCase) *OrderHandler {
	return &OrderHandler{orders: uc}
}

// Place godoc
// @Summary Place an order from the current cart
// @Tags orders
// @Produce json
// @Success 201 {object} dto.OrderResponse
// @Security BearerAuth
// @Router /orders [post]
func (h *OrderHandler) Place(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	placed, err := h.orders.Place(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapper.ToOrderResponse(placed))
}

// List godoc
// @Summary List the current user's orders
// @Tags orders
// @Produce json
// @Success 200 {object} response.Page
// @Security BearerAuth
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, bindError(err))
		return
	}

	userID := middleware.CurrentUserID(c)
	p := q.ToPageRequest()
	orders, total, err := h.orders.List(c.Request.Context(), userID, p)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPage(mapper.ToOrderResponses(orders), total, p.Number, p.Size))
}
