package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "marketplace/internal/errors"
	"marketplace/internal/model"
	"marketplace/internal/repository"
)

func TestProductService_CreateValidation(t *testing.T) {
	gdb := newTestDB(t)
	seller := seedUser(t, gdb, "seller@example.com", "seller")
	category := seedCategory(t, gdb, "Remote Control")
	svc := NewProductService(repository.NewProductRepository(gdb), repository.NewCategoryRepository(gdb))

	_, err := svc.Create(testCtx, seller.ID, ProductInput{Name: "RC Truck", Price: -1, CategoryID: category.ID})
	require.ErrorIs(t, err, apperrors.ErrInvalidPrice)

	_, err = svc.Create(testCtx, seller.ID, ProductInput{Name: "RC Truck", Price: 10, StockQuantity: -5, CategoryID: category.ID})
	require.ErrorIs(t, err, apperrors.ErrInvalidStock)

	_, err = svc.Create(testCtx, seller.ID, ProductInput{Name: "RC Truck", Price: 10, CategoryID: category.ID + 100})
	require.ErrorIs(t, err, apperrors.ErrCategoryNotFound)

	product, err := svc.Create(testCtx, seller.ID, ProductInput{
		Name:          "RC Truck",
		Price:         59.99,
		StockQuantity: 25,
		CategoryID:    category.ID,
	})
	require.NoError(t, err)
	require.Equal(t, seller.ID, product.SellerID)
	require.NotNil(t, product.Category)
	require.Equal(t, category.Name, product.Category.Name)
	require.NotNil(t, product.Seller)
	require.Equal(t, seller.Email, product.Seller.Email)
}

func TestProductService_PartialUpdateLeavesOtherFields(t *testing.T) {
	gdb := newTestDB(t)
	seller := seedUser(t, gdb, "seller@example.com", "seller")
	category := seedCategory(t, gdb, "Building Blocks")
	product := seedProduct(t, gdb, "Classic Brick Set", category.ID, seller.ID, 39.99)
	svc := NewProductService(repository.NewProductRepository(gdb), repository.NewCategoryRepository(gdb))

	price := 34.99
	updated, err := svc.Update(testCtx, product.ID, ProductPatch{Price: &price})
	require.NoError(t, err)

	require.Equal(t, 34.99, updated.Price)
	require.Equal(t, "Classic Brick Set", updated.Name)
	require.Equal(t, 10, updated.StockQuantity)
	require.Equal(t, category.ID, updated.CategoryID)

	bad := -0.01
	_, err = svc.Update(testCtx, product.ID, ProductPatch{Price: &bad})
	require.ErrorIs(t, err, apperrors.ErrInvalidPrice)
}

func TestProductService_ListFiltersAndSoftDelete(t *testing.T) {
	gdb := newTestDB(t)
	seller := seedUser(t, gdb, "seller@example.com", "seller")
	blocks := seedCategory(t, gdb, "Building Blocks")
	plush := seedCategory(t, gdb, "Plush Toys")
	brick := seedProduct(t, gdb, "Classic Brick Set", blocks.ID, seller.ID, 39.99)
	seedProduct(t, gdb, "Giant Teddy Bear", plush.ID, seller.ID, 49.99)
	svc := NewProductService(repository.NewProductRepository(gdb), repository.NewCategoryRepository(gdb))

	all, err := svc.List(testCtx, 0, 100, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)

	filtered, err := svc.List(testCtx, 0, 100, blocks.ID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	require.Equal(t, brick.ID, filtered[0].ID)

	require.NoError(t, svc.Delete(testCtx, brick.ID))

	filtered, err = svc.List(testCtx, 0, 100, blocks.ID)
	require.NoError(t, err)
	require.Empty(t, filtered)

	_, err = svc.Update(testCtx, brick.ID, ProductPatch{})
	require.ErrorIs(t, err, apperrors.ErrProductNotFound)

	var stored model.Product
	require.NoError(t, gdb.First(&stored, brick.ID).Error)
	require.False(t, stored.IsActive)
}
