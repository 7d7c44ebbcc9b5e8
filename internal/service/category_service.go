package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	apperrors "marketplace/internal/errors"
	"marketplace/internal/model"
	"marketplace/internal/repository"
)

// CategoryPatch carries a partial category update. Nil fields are left
// untouched; the merge is explicit per field.
type CategoryPatch struct {
	Name        *string
	Description *string
	ImageURL    *string
	IsActive    *bool
}

// CategoryService handles catalog category operations.
type CategoryService interface {
	List(ctx context.Context, offset, limit int) ([]model.Category, error)
	Create(ctx context.Context, name, description, imageURL string) (*model.Category, error)
	Update(ctx context.Context, id uint, patch CategoryPatch) (*model.Category, error)
	Delete(ctx context.Context, id uint) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) List(ctx context.Context, offset, limit int) ([]model.Category, error) {
	return s.categoryRepo.ListActive(ctx, offset, limit)
}

func (s *categoryService) Create(ctx context.Context, name, description, imageURL string) (*model.Category, error) {
	category := &model.Category{
		Name:        name,
		Description: description,
		ImageURL:    imageURL,
		IsActive:    true,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

// Update applies a partial patch. Missing or soft-deleted ids are a
// client-visible not-found, not a silent no-op.
func (s *categoryService) Update(ctx context.Context, id uint, patch CategoryPatch) (*model.Category, error) {
	category, err := s.categoryRepo.FindActiveByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}

	if patch.Name != nil {
		category.Name = *patch.Name
	}
	if patch.Description != nil {
		category.Description = *patch.Description
	}
	if patch.ImageURL != nil {
		category.ImageURL = *patch.ImageURL
	}
	if patch.IsActive != nil {
		category.IsActive = *patch.IsActive
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

// Delete soft-deletes: the row stays in storage with is_active = false.
func (s *categoryService) Delete(ctx context.Context, id uint) error {
	category, err := s.categoryRepo.FindActiveByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrCategoryNotFound
		}
		return fmt.Errorf("find category: %w", err)
	}

	category.IsActive = false
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return fmt.Errorf("soft-delete category: %w", err)
	}
	return nil
}
