package repository

import (
	"context"

	"gorm.io/gorm"

	"marketplace/internal/model"
)

// CartRepository defines cart persistence operations. Rows are hard-deleted;
// the cart has no soft-delete lifecycle.
type CartRepository interface {
	Create(ctx context.Context, item *model.CartItem) error
	Save(ctx context.Context, item *model.CartItem) error
	FindByUserAndProduct(ctx context.Context, userID, productID uint) (*model.CartItem, error)
	FindByIDForUser(ctx context.Context, id, userID uint) (*model.CartItem, error)
	ListByUser(ctx context.Context, userID uint) ([]model.CartItem, error)
	Delete(ctx context.Context, item *model.CartItem) error
	DeleteByUser(ctx context.Context, userID uint) error
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository builds a GORM-backed repository.
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Create(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepository) Save(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *cartRepository) FindByUserAndProduct(ctx context.Context, userID, productID uint) (*model.CartItem, error) {
	var item model.CartItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) FindByIDForUser(ctx context.Context, id, userID uint) (*model.CartItem, error) {
	var item model.CartItem
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) ListByUser(ctx context.Context, userID uint) ([]model.CartItem, error) {
	var items []model.CartItem
	if err := r.db.WithContext(ctx).
		Preload("Product").Preload("Product.Category").
		Where("user_id = ?", userID).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepository) Delete(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Delete(item).Error
}

func (r *cartRepository) DeleteByUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItem{}).Error
}
