package mysql

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GORM models. These carry the persistence tags; the domain entities stay
// framework-free and the repositories translate between the two.

// BookModel maps the books table. ISBN uniqueness is enforced by the
// database, not by a pre-read in the service.
type BookModel struct {
	ID          uint            `gorm:"primaryKey"`
	Title       string          `gorm:"size:255;not null"`
	Author      string          `gorm:"size:255;not null"`
	ISBN        string          `gorm:"uniqueIndex;size:32;not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Description string          `gorm:"type:text"`
	CoverImage  string          `gorm:"size:512"`
	Categories  []CategoryModel `gorm:"many2many:books_categories;joinForeignKey:BookID;joinReferences:CategoryID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (BookModel) TableName() string { return "books" }

// CategoryModel maps the categories table.
type CategoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:255;not null"`
	Description string `gorm:"size:512"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (CategoryModel) TableName() string { return "categories" }

// UserModel maps the users table. Password holds the argon2id hash.
type UserModel struct {
	ID        uint            `gorm:"primaryKey"`
	Email     string          `gorm:"uniqueIndex;size:255;not null"`
	Password  string          `gorm:"size:255;not null"`
	Nickname  string          `gorm:"size:255"`
	Roles     []UserRoleModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (UserModel) TableName() string { return "users" }

// UserRoleModel maps users_roles with a composite primary key.
type UserRoleModel struct {
	UserID uint   `gorm:"primaryKey"`
	Role   string `gorm:"primaryKey;size:32"`
}

func (UserRoleModel) TableName() string { return "users_roles" }

// ShoppingCartModel maps shopping_carts; exactly one cart per user.
// The cart exclusively owns its items (cascade delete).
type ShoppingCartModel struct {
	ID        uint            `gorm:"primaryKey"`
	UserID    uint            `gorm:"uniqueIndex;not null"`
	Items     []CartItemModel `gorm:"foreignKey:ShoppingCartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ShoppingCartModel) TableName() string { return "shopping_carts" }

// CartItemModel maps cart_items.
type CartItemModel struct {
	ID             uint `gorm:"primaryKey"`
	ShoppingCartID uint `gorm:"index;not null"`
	BookID         uint `gorm:"index;not null"`
	Quantity       int  `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (CartItemModel) TableName() string { return "cart_items" }

// OrderModel maps orders; OrderNo is the business key.
type OrderModel struct {
	ID        uint             `gorm:"primaryKey"`
	OrderNo   string           `gorm:"uniqueIndex;size:32;not null"`
	UserID    uint             `gorm:"index;not null"`
	Status    string           `gorm:"size:16;not null"`
	Total     decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	Items     []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (OrderModel) TableName() string { return "orders" }

// OrderItemModel maps order_items. Title and Price are placement-time
// snapshots, deliberately denormalized.
type OrderItemModel struct {
	ID       uint            `gorm:"primaryKey"`
	OrderID  uint            `gorm:"index;not null"`
	BookID   uint            `gorm:"index;not null"`
	Title    string          `gorm:"size:255;not null"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity int             `gorm:"not null"`
}

func (OrderItemModel) TableName() string { return "order_items" }
