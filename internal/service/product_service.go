package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	apperrors "marketplace/internal/errors"
	"marketplace/internal/model"
	"marketplace/internal/repository"
)

// ProductInput carries the fields a seller supplies when listing a product.
type ProductInput struct {
	Name          string
	Description   string
	Price         float64
	StockQuantity int
	ImageURL      string
	CategoryID    uint
}

// ProductPatch carries a partial product update. Nil fields are left untouched.
type ProductPatch struct {
	Name          *string
	Description   *string
	Price         *float64
	StockQuantity *int
	ImageURL      *string
	CategoryID    *uint
	IsActive      *bool
}

// ProductService handles product catalog operations.
type ProductService interface {
	List(ctx context.Context, offset, limit int, categoryID uint) ([]model.Product, error)
	Create(ctx context.Context, sellerID uint, input ProductInput) (*model.Product, error)
	Update(ctx context.Context, id uint, patch ProductPatch) (*model.Product, error)
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *productService) List(ctx context.Context, offset, limit int, categoryID uint) ([]model.Product, error) {
	return s.productRepo.ListActive(ctx, offset, limit, categoryID)
}

// Create lists a product with the calling user as seller. The owning
// category must exist and be active.
func (s *productService) Create(ctx context.Context, sellerID uint, input ProductInput) (*model.Product, error) {
	if input.Price < 0 {
		return nil, apperrors.ErrInvalidPrice
	}
	if input.StockQuantity < 0 {
		return nil, apperrors.ErrInvalidStock
	}

	if _, err := s.categoryRepo.FindActiveByID(ctx, input.CategoryID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}

	product := &model.Product{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		ImageURL:      input.ImageURL,
		CategoryID:    input.CategoryID,
		SellerID:      sellerID,
		IsActive:      true,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	// Reload with relations so the response embeds category and seller.
	return s.productRepo.FindActiveByID(ctx, product.ID)
}

// Update applies a partial patch. Any authenticated user may update any
// product; there is no seller ownership check.
func (s *productService) Update(ctx context.Context, id uint, patch ProductPatch) (*model.Product, error) {
	product, err := s.productRepo.FindActiveByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			return nil, apperrors.ErrInvalidPrice
		}
		product.Price = *patch.Price
	}
	if patch.StockQuantity != nil {
		if *patch.StockQuantity < 0 {
			return nil, apperrors.ErrInvalidStock
		}
		product.StockQuantity = *patch.StockQuantity
	}
	if patch.ImageURL != nil {
		product.ImageURL = *patch.ImageURL
	}
	if patch.CategoryID != nil {
		if _, err := s.categoryRepo.FindActiveByID(ctx, *patch.CategoryID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, apperrors.ErrCategoryNotFound
			}
			return nil, fmt.Errorf("find category: %w", err)
		}
		product.CategoryID = *patch.CategoryID
	}
	if patch.IsActive != nil {
		product.IsActive = *patch.IsActive
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return product, nil
}

// Delete soft-deletes a product.
func (s *productService) Delete(ctx context.Context, id uint) error {
	product, err := s.productRepo.FindActiveByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrProductNotFound
		}
		return fmt.Errorf("find product: %w", err)
	}

	product.IsActive = false
	if err := s.productRepo.Save(ctx, product); err != nil {
		return fmt.Errorf("soft-delete product: %w", err)
	}
	return nil
}
