package user

import (
	"context"
	"time"

	apperrors "bookshop/pkg/errors"
)

// Roles. Every registered account holds RoleUser; RoleAdmin is granted out
// of band (seeding, operations tooling), never through the public API.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

var (
	ErrNotFound       = apperrors.New(apperrors.KindNotFound, "user not found")
	ErrEmailDuplicate = apperrors.New(apperrors.KindConflict, "email already registered")
)

// User is the account aggregate. Password holds the argon2id encoded hash,
// never plaintext.
type User struct {
	ID        uint
	Email     string
	Password  string
	Nickname  string
	Roles     []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository is implemented by the mysql package.
type Repository interface {
	// Create persists the user with their role set. Returns
	// ErrEmailDuplicate on a unique-key violation.
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}
