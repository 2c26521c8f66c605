package mysql

import (
	"context"

	"gorm.io/gorm"

	"bookshop/internal/domain/order"
	apperrors "bookshop/pkg/errors"
	"bookshop/pkg/page"
)

var orderSortColumns = map[string]string{
	"id":      "orders.id",
	"orderNo": "orders.order_no",
	"total":   "orders.total",
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates the order repository.
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	model := toOrderModel(o)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "failed to create order")
	}
	o.ID = model.ID
	o.CreatedAt = model.CreatedAt
	for i := range model.Items {
		o.Items[i].ID = model.Items[i].ID
		o.Items[i].OrderID = model.ID
	}
	return nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uint, p page.Request) ([]*order.Order, int64, error) {
	db := getDB(ctx, r.db)
	query := db.Model(&OrderModel{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count orders")
	}

	var models []OrderModel
	err := query.
		Order(p.OrderBy(orderSortColumns, "orders.id desc")).
		Limit(p.Size).
		Offset(p.Offset()).
		Preload("Items").
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to list orders")
	}

	orders := make([]*order.Order, len(models))
	for i := range models {
		orders[i] = toOrderEntity(&models[i])
	}
	return orders, total, nil
}

func toOrderModel(o *order.Order) *OrderModel {
	items := make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemModel{
			BookID:   item.BookID,
			Title:    item.Title,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}
	return &OrderModel{
		OrderNo: o.OrderNo,
		UserID:  o.UserID,
		Status:  string(o.Status),
		Total:   o.Total,
		Items:   items,
	}
}

func toOrderEntity(model *OrderModel) *order.Order {
	items := make([]order.Item, len(model.Items))
	for i, item := range model.Items {
		items[i] = order.Item{
			ID:       item.ID,
			OrderID:  item.OrderID,
			BookID:   item.BookID,
			Title:    item.Title,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}
	return &order.Order{
		ID:        model.ID,
		OrderNo:   model.OrderNo,
		UserID:    model.UserID,
		Status:    order.Status(model.Status),
		Total:     model.Total,
		Items:     items,
		CreatedAt: model.CreatedAt,
	}
}
