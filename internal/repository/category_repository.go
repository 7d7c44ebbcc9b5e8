package repository

import (
	"context"

	"gorm.io/gorm"

	"marketplace/internal/model"
)

// CategoryRepository defines category persistence operations. Every read
// goes through the active() scope so soft-deleted rows never surface.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	Save(ctx context.Context, category *model.Category) error
	FindActiveByID(ctx context.Context, id uint) (*model.Category, error)
	ListActive(ctx context.Context, offset, limit int) ([]model.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository builds a GORM-backed repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// active is the soft-delete predicate shared by all read paths.
func active(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) Save(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepository) FindActiveByID(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).Scopes(active).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) ListActive(ctx context.Context, offset, limit int) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Scopes(active).
		Offset(offset).Limit(limit).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
