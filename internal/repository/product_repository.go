package repository

import (
	"context"

	"gorm.io/gorm"

	"marketplace/internal/model"
)

// ProductRepository defines product persistence operations.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	Save(ctx context.Context, product *model.Product) error
	FindActiveByID(ctx context.Context, id uint) (*model.Product, error)
	// ListActive returns active products, optionally filtered by category.
	ListActive(ctx context.Context, offset, limit int, categoryID uint) ([]model.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository builds a GORM-backed repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) Save(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) FindActiveByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).Scopes(active).
		Preload("Category").Preload("Seller").
		First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) ListActive(ctx context.Context, offset, limit int, categoryID uint) ([]model.Product, error) {
	q := r.db.WithContext(ctx).Scopes(active).
		Preload("Category").Preload("Seller")
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	var products []model.Product
	if err := q.Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
