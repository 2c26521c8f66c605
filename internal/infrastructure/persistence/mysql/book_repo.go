package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bookshop/internal/domain/book"
	apperrors "bookshop/pkg/errors"
	"bookshop/pkg/page"
)

// bookSortColumns whitelists the sort fields GET /books exposes.
var bookSortColumns = map[string]string{
	"id":     "books.id",
	"title":  "books.title",
	"author": "books.author",
	"price":  "books.price",
}

type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository creates the catalog repository.
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create inserts the book and its books_categories rows in one transaction.
// Omit("Categories.*") makes GORM write the join rows without upserting the
// category rows themselves.
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	err := getDB(ctx, r.db).Omit("Categories.*").Create(model).Error
	if err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "failed to create book")
	}

	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).Preload("Categories").First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "failed to load book")
	}
	return toBookEntity(&model), nil
}

func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	db := getDB(ctx, r.db)
	model := toBookModel(b)
	model.ID = b.ID
	// Save writes every column; without this the original creation time
	// would be overwritten with the zero value.
	model.CreatedAt = b.CreatedAt

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories").Save(model).Error; err != nil {
			return err
		}
		// Full replacement of the association set.
		links := make([]CategoryModel, len(b.CategoryIDs))
		for i, id := range b.CategoryIDs {
			links[i] = CategoryModel{ID: id}
		}
		return tx.Model(model).Association("Categories").Replace(links)
	})
	if err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "failed to update book")
	}

	b.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&BookModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to delete book")
	}
	if result.RowsAffected == 0 {
		return book.ErrNotFound
	}
	return nil
}

func (r *bookRepository) List(ctx context.Context, p page.Request) ([]*book.Book, int64, error) {
	query := getDB(ctx, r.db).Model(&BookModel{})
	return r.listPage(query, p)
}

func (r *bookRepository) ListByCategory(ctx context.Context, categoryID uint, p page.Request) ([]*book.Book, int64, error) {
	query := getDB(ctx, r.db).Model(&BookModel{}).
		Joins("JOIN books_categories ON books_categories.book_id = books.id").
		Where("books_categories.category_id = ?", categoryID)
	return r.listPage(query, p)
}

func (r *bookRepository) listPage(query *gorm.DB, p page.Request) ([]*book.Book, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count books")
	}

	var models []BookModel
	err := query.
		Order(p.OrderBy(bookSortColumns, "books.id asc")).
		Limit(p.Size).
		Offset(p.Offset()).
		Preload("Categories").
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to list books")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, total, nil
}

func toBookModel(b *book.Book) *BookModel {
	model := &BookModel{
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		Price:       b.Price,
		Description: b.Description,
		CoverImage:  b.CoverImage,
	}
	for _, id := range b.CategoryIDs {
		model.Categories = append(model.Categories, CategoryModel{ID: id})
	}
	return model
}

func toBookEntity(model *BookModel) *book.Book {
	ids := make([]uint, len(model.Categories))
	for i, c := range model.Categories {
		ids[i] = c.ID
	}
	return &book.Book{
		ID:          model.ID,
		Title:       model.Title,
		Author:      model.Author,
		ISBN:        model.ISBN,
		Price:       model.Price,
		Description: model.Description,
		CoverImage:  model.CoverImage,
		CategoryIDs: ids,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
