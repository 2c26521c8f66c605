package category

import (
	"context"
	"time"

	apperrors "bookshop/pkg/errors"
	"bookshop/pkg/page"
)

var (
	ErrNotFound      = apperrors.New(apperrors.KindNotFound, "category not found")
	ErrNameDuplicate = apperrors.New(apperrors.KindConflict, "category name already exists")
)

// Category is an independently owned catalog grouping. Books reference it
// through the books_categories relation only; neither side embeds the other.
type Category struct {
	ID          uint
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Repository is implemented by infrastructure/persistence/mysql. All reads
// exclude soft-deleted rows.
type Repository interface {
	Create(ctx context.Context, c *Category) error
	FindByID(ctx context.Context, id uint) (*Category, error)
	Update(ctx context.Context, c *Category) error
	// Delete soft-deletes; returns ErrNotFound when no live row matches.
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, p page.Request) ([]*Category, int64, error)
}

// Service exposes category CRUD to the HTTP layer.
type Service interface {
	Create(ctx context.Context, c *Category) (*Category, error)
	Get(ctx context.Context, id uint) (*Category, error)
	Update(ctx context.Context, id uint, c *Category) (*Category, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, p page.Request) ([]*Category, int64, error)
}

type service struct {
	repo Repository
}

// NewService creates the category service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, c *Category) (*Category, error) {
	if c.Name == "" {
		return nil, apperrors.New(apperrors.KindValidation, "category name must not be blank")
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Get(ctx context.Context, id uint) (*Category, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies full replacement semantics: the supplied record overwrites
// name and description of the existing row.
func (s *service) Update(ctx context.Context, id uint, c *Category) (*Category, error) {
	if c.Name == "" {
		return nil, apperrors.New(apperrors.KindValidation, "category name must not be blank")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = c.Name
	existing.Description = c.Description
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) List(ctx context.Context, p page.Request) ([]*Category, int64, error) {
	return s.repo.List(ctx, p)
}
