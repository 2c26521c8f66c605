package book

import (
	"context"

	"bookshop/internal/domain/category"
	apperrors "bookshop/pkg/errors"
	"bookshop/pkg/page"
)

// Service holds the catalog operations. Category id resolution happens
// here, not in the mappers: every supplied id must name a live category.
type Service interface {
	Create(ctx context.Context, b *Book) (*Book, error)
	Get(ctx context.Context, id uint) (*Book, error)
	// Update applies full replacement semantics; the category id set fully
	// replaces the existing association.
	Update(ctx context.Context, id uint, b *Book) (*Book, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, p page.Request) ([]*Book, int64, error)
	// ListByCategory returns ErrNotFound from the category side when the
	// category is absent or soft-deleted.
	ListByCategory(ctx context.Context, categoryID uint, p page.Request) ([]*Book, int64, error)
}

type service struct {
	repo       Repository
	categories category.Repository
}

// NewService creates the catalog service.
func NewService(repo Repository, categories category.Repository) Service {
	return &service{repo: repo, categories: categories}
}

func (s *service) Create(ctx context.Context, b *Book) (*Book, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := s.resolveCategories(ctx, b.CategoryIDs); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Get(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id uint, b *Book) (*Book, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := s.resolveCategories(ctx, b.CategoryIDs); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Title = b.Title
	existing.Author = b.Author
	existing.ISBN = b.ISBN
	existing.Price = b.Price
	existing.Description = b.Description
	existing.CoverImage = b.CoverImage
	existing.CategoryIDs = b.CategoryIDs

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) List(ctx context.Context, p page.Request) ([]*Book, int64, error) {
	return s.repo.List(ctx, p)
}

func (s *service) ListByCategory(ctx context.Context, categoryID uint, p page.Request) ([]*Book, int64, error) {
	// A soft-deleted category must 404 rather than return an empty page.
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		return nil, 0, err
	}
	return s.repo.ListByCategory(ctx, categoryID, p)
}

// resolveCategories verifies every supplied category id names a live row.
// A missing one is a validation error, not a 404: the book is the resource
// being created, the ids are request payload.
func (s *service) resolveCategories(ctx context.Context, ids []uint) error {
	for _, id := range ids {
		if _, err := s.categories.FindByID(ctx, id); err != nil {
			if apperrors.IsKind(err, apperrors.KindNotFound) {
				return apperrors.Newf(apperrors.KindValidation, "category %d does not exist", id)
			}
			return err
		}
	}
	return nil
}
