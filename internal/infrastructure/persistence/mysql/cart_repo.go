package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bookshop/internal/domain/cart"
	apperrors "bookshop/pkg/errors"
)

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates the shopping cart repository.
func NewCartRepository(db *gorm.DB) cart.Repository {
	return &cartRepository{db: db}
}

// FindOrCreateByUser loads the user's cart, creating it on first access.
// The unique index on user_id makes the create race-safe: a concurrent
// insert surfaces as a duplicate and the loser re-reads the winner's row.
func (r *cartRepository) FindOrCreateByUser(ctx context.Context, userID uint) (*cart.Cart, error) {
	db := getDB(ctx, r.db)

	var model ShoppingCartModel
	err := db.Where("user_id = ?", userID).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		model = ShoppingCartModel{UserID: userID}
		if err = db.Create(&model).Error; err != nil && isDuplicateError(err) {
			err = db.Where("user_id = ?", userID).First(&model).Error
		}
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load shopping cart")
	}

	items, err := r.loadItems(db, model.ID)
	if err != nil {
		return nil, err
	}

	return &cart.Cart{
		ID:        model.ID,
		UserID:    model.UserID,
		Items:     items,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}, nil
}

// loadItems joins cart_items to live books only: items whose book has been
// soft-deleted are filtered from the view rather than flagged.
func (r *cartRepository) loadItems(db *gorm.DB, cartID uint) ([]cart.Item, error) {
	var rows []struct {
		ID        uint
		BookID    uint
		BookTitle string
		Quantity  int
	}
	err := db.Model(&CartItemModel{}).
		Select("cart_items.id, cart_items.book_id, books.title AS book_title, cart_items.quantity").
		Joins("JOIN books ON books.id = cart_items.book_id AND books.deleted_at IS NULL").
		Where("cart_items.shopping_cart_id = ?", cartID).
		Order("cart_items.id asc").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load cart items")
	}

	items := make([]cart.Item, len(rows))
	for i, row := range rows {
		items[i] = cart.Item{
			ID:        row.ID,
			CartID:    cartID,
			BookID:    row.BookID,
			BookTitle: row.BookTitle,
			Quantity:  row.Quantity,
		}
	}
	return items, nil
}

func (r *cartRepository) FindItem(ctx context.Context, cartID, itemID uint) (*cart.Item, error) {
	var model CartItemModel
	err := getDB(ctx, r.db).
		Where("id = ? AND shopping_cart_id = ?", itemID, cartID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrItemNotFound
		}
		return nil, apperrors.Wrap(err, "failed to load cart item")
	}
	return toCartItemEntity(&model), nil
}

func (r *cartRepository) FindItemByBook(ctx context.Context, cartID, bookID uint) (*cart.Item, error) {
	var model CartItemModel
	err := getDB(ctx, r.db).
		Where("shopping_cart_id = ? AND book_id = ?", cartID, bookID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrItemNotFound
		}
		return nil, apperrors.Wrap(err, "failed to load cart item")
	}
	return toCartItemEntity(&model), nil
}

func (r *cartRepository) AddItem(ctx context.Context, item *cart.Item) error {
	model := &CartItemModel{
		ShoppingCartID: item.CartID,
		BookID:         item.BookID,
		Quantity:       item.Quantity,
	}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "failed to add cart item")
	}
	item.ID = model.ID
	return nil
}

func (r *cartRepository) UpdateItemQuantity(ctx context.Context, itemID uint, quantity int) error {
	result := getDB(ctx, r.db).
		Model(&CartItemModel{}).
		Where("id = ?", itemID).
		Update("quantity", quantity)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to update cart item")
	}
	if result.RowsAffected == 0 {
		return cart.ErrItemNotFound
	}
	return nil
}

func (r *cartRepository) RemoveItem(ctx context.Context, itemID uint) error {
	result := getDB(ctx, r.db).Delete(&CartItemModel{}, itemID)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to remove cart item")
	}
	if result.RowsAffected == 0 {
		return cart.ErrItemNotFound
	}
	return nil
}

func (r *cartRepository) Clear(ctx context.Context, cartID uint) error {
	err := getDB(ctx, r.db).
		Where("shopping_cart_id = ?", cartID).
		Delete(&CartItemModel{}).Error
	if err != nil {
		return apperrors.Wrap(err, "failed to clear cart")
	}
	return nil
}

func toCartItemEntity(model *CartItemModel) *cart.Item {
	return &cart.Item{
		ID:       model.ID,
		CartID:   model.ShoppingCartID,
		BookID:   model.BookID,
		Quantity: model.Quantity,
	}
}
