package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	apperrors "marketplace/internal/errors"
	"marketplace/internal/model"
	"marketplace/internal/repository"
)

// CartService handles the calling user's cart. Every operation is scoped to
// the resolved subject; items belonging to other users read as not found.
type CartService interface {
	List(ctx context.Context, userID uint) ([]model.CartItem, error)
	Add(ctx context.Context, userID, productID uint, quantity int) (*model.CartItem, error)
	UpdateQuantity(ctx context.Context, userID, itemID uint, quantity int) (*model.CartItem, error)
	Remove(ctx context.Context, userID, itemID uint) error
	Clear(ctx context.Context, userID uint) error
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates a new cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (s *cartService) List(ctx context.Context, userID uint) ([]model.CartItem, error) {
	return s.cartRepo.ListByUser(ctx, userID)
}

// Add upserts a cart row: an existing (user, product) row gets its quantity
// incremented, otherwise a new row is inserted. The unique index on
// (user_id, product_id) keeps two racing first-adds from both inserting.
func (s *cartService) Add(ctx context.Context, userID, productID uint, quantity int) (*model.CartItem, error) {
	if quantity <= 0 {
		return nil, apperrors.ErrInvalidQuantity
	}

	if _, err := s.productRepo.FindActiveByID(ctx, productID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	existing, err := s.cartRepo.FindByUserAndProduct(ctx, userID, productID)
	if err == nil {
		existing.Quantity += quantity
		if err := s.cartRepo.Save(ctx, existing); err != nil {
			return nil, fmt.Errorf("increment cart item: %w", err)
		}
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("find cart item: %w", err)
	}

	item := &model.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create cart item: %w", err)
	}
	return item, nil
}

// UpdateQuantity sets an item's quantity outright.
func (s *cartService) UpdateQuantity(ctx context.Context, userID, itemID uint, quantity int) (*model.CartItem, error) {
	if quantity <= 0 {
		return nil, apperrors.ErrInvalidQuantity
	}

	item, err := s.cartRepo.FindByIDForUser(ctx, itemID, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("find cart item: %w", err)
	}

	item.Quantity = quantity
	if err := s.cartRepo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("update cart item: %w", err)
	}
	return item, nil
}

// Remove hard-deletes one of the user's cart rows.
func (s *cartService) Remove(ctx context.Context, userID, itemID uint) error {
	item, err := s.cartRepo.FindByIDForUser(ctx, itemID, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrCartItemNotFound
		}
		return fmt.Errorf("find cart item: %w", err)
	}
	if err := s.cartRepo.Delete(ctx, item); err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

// Clear empties the user's cart.
func (s *cartService) Clear(ctx context.Context, userID uint) error {
	if err := s.cartRepo.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
