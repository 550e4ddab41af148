package repository

import (
	"context"

	"github.com/lshigami/Shelfscore/internal/model"
	"gorm.io/gorm"
)

type BookRepository interface {
	CreateCategory(ctx context.Context, category *model.BookCategory) error
	FindCategoriesByIDs(ctx context.Context, ids []uint) ([]model.BookCategory, error)
	Create(ctx context.Context, book *model.Book) error
	FindByIDWithCategories(ctx context.Context, id uint) (*model.Book, error)
	// FindByEvaluation returns books in any category linked to evaluationID.
	FindByEvaluation(ctx context.Context, evaluationID uint) ([]model.Book, error)
	FindAllWithCategories(ctx context.Context, limit int) ([]model.Book, error)
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) CreateCategory(ctx context.Context, category *model.BookCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *bookRepository) FindCategoriesByIDs(ctx context.Context, ids []uint) ([]model.BookCategory, error) {
	var categories []model.BookCategory
	if len(ids) == 0 {
		return categories, nil
	}
	err := r.db.WithContext(ctx).Preload("Evaluation").Where("id IN ?", ids).Order("id ASC").Find(&categories).Error
	return categories, err
}

func (r *bookRepository) Create(ctx context.Context, book *model.Book) error {
	// Categories must already exist; only the link rows are written.
	return r.db.WithContext(ctx).Omit("Categories.*").Create(book).Error
}

func (r *bookRepository) FindByIDWithCategories(ctx context.Context, id uint) (*model.Book, error) {
	var book model.Book
	if err := r.withCategories(ctx).First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) FindByEvaluation(ctx context.Context, evaluationID uint) ([]model.Book, error) {
	var books []model.Book
	err := r.withCategories(ctx).
		Where("books.id IN (?)", r.db.WithContext(ctx).Table("book_category_links").
			Select("book_category_links.book_id").
			Joins("JOIN book_categories ON book_categories.id = book_category_links.book_category_id").
			Where("book_categories.evaluation_id = ? AND book_categories.deleted_at IS NULL", evaluationID)).
		Order("books.id ASC").
		Find(&books).Error
	return books, err
}

func (r *bookRepository) FindAllWithCategories(ctx context.Context, limit int) ([]model.Book, error) {
	var books []model.Book
	query := r.withCategories(ctx).Order("books.id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&books).Error
	return books, err
}

func (r *bookRepository) withCategories(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Categories", func(db *gorm.DB) *gorm.DB {
		return db.Order("book_categories.id ASC")
	}).Preload("Categories.Evaluation")
}
