package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "marketplace/internal/errors"
	"marketplace/internal/model"
	"marketplace/internal/repository"
)

func TestCartService_AddIncrementsExistingRow(t *testing.T) {
	gdb := newTestDB(t)
	seller := seedUser(t, gdb, "seller@example.com", "seller")
	buyer := seedUser(t, gdb, "buyer@example.com", "buyer")
	category := seedCategory(t, gdb, "Board Games")
	product := seedProduct(t, gdb, "Family Strategy Game", category.ID, seller.ID, 29.99)

	svc := NewCartService(repository.NewCartRepository(gdb), repository.NewProductRepository(gdb))

	first, err := svc.Add(testCtx, buyer.ID, product.ID, 1)
	require.NoError(t, err)
	require.Equal(t, 1, first.Quantity)

	second, err := svc.Add(testCtx, buyer.ID, product.ID, 2)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, 3, second.Quantity)

	var rows []model.CartItem
	require.NoError(t, gdb.Find(&rows).Error)
	require.Len(t, rows, 1)
	require.Equal(t, 3, rows[0].Quantity)
}

func TestCartService_AddValidations(t *testing.T) {
	gdb := newTestDB(t)
	seller := seedUser(t, gdb, "seller@example.com", "seller")
	buyer := seedUser(t, gdb, "buyer@example.com", "buyer")
	category := seedCategory(t, gdb, "Board Games")
	product := seedProduct(t, gdb, "Family Strategy Game", category.ID, seller.ID, 29.99)

	svc := NewCartService(repository.NewCartRepository(gdb), repository.NewProductRepository(gdb))

	_, err := svc.Add(testCtx, buyer.ID, product.ID, 0)
	require.ErrorIs(t, err, apperrors.ErrInvalidQuantity)

	_, err = svc.Add(testCtx, buyer.ID, product.ID+100, 1)
	require.ErrorIs(t, err, apperrors.ErrProductNotFound)

	// Soft-deleted products cannot be added either.
	require.NoError(t, gdb.Model(product).Update("is_active", false).Error)
	_, err = svc.Add(testCtx, buyer.ID, product.ID, 1)
	require.ErrorIs(t, err, apperrors.ErrProductNotFound)
}

func TestCartService_ScopedToOwner(t *testing.T) {
	gdb := newTestDB(t)
	seller := seedUser(t, gdb, "seller@example.com", "seller")
	buyer := seedUser(t, gdb, "buyer@example.com", "buyer")
	other := seedUser(t, gdb, "other@example.com", "other")
	category := seedCategory(t, gdb, "Board Games")
	product := seedProduct(t, gdb, "Family Strategy Game", category.ID, seller.ID, 29.99)

	svc := NewCartService(repository.NewCartRepository(gdb), repository.NewProductRepository(gdb))

	item, err := svc.Add(testCtx, buyer.ID, product.ID, 2)
	require.NoError(t, err)

	// Another user cannot see, change or remove the buyer's row.
	_, err = svc.UpdateQuantity(testCtx, other.ID, item.ID, 5)
	require.ErrorIs(t, err, apperrors.ErrCartItemNotFound)
	require.ErrorIs(t, svc.Remove(testCtx, other.ID, item.ID), apperrors.ErrCartItemNotFound)

	updated, err := svc.UpdateQuantity(testCtx, buyer.ID, item.ID, 5)
	require.NoError(t, err)
	require.Equal(t, 5, updated.Quantity)

	require.NoError(t, svc.Remove(testCtx, buyer.ID, item.ID))
	items, err := svc.List(testCtx, buyer.ID)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestCartService_Clear(t *testing.T) {
	gdb := newTestDB(t)
	seller := seedUser(t, gdb, "seller@example.com", "seller")
	buyer := seedUser(t, gdb, "buyer@example.com", "buyer")
	other := seedUser(t, gdb, "other@example.com", "other")
	category := seedCategory(t, gdb, "Board Games")
	p1 := seedProduct(t, gdb, "Family Strategy Game", category.ID, seller.ID, 29.99)
	p2 := seedProduct(t, gdb, "Giant Teddy Bear", category.ID, seller.ID, 49.99)

	svc := NewCartService(repository.NewCartRepository(gdb), repository.NewProductRepository(gdb))

	_, err := svc.Add(testCtx, buyer.ID, p1.ID, 1)
	require.NoError(t, err)
	_, err = svc.Add(testCtx, buyer.ID, p2.ID, 2)
	require.NoError(t, err)
	_, err = svc.Add(testCtx, other.ID, p1.ID, 4)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(testCtx, buyer.ID))

	items, err := svc.List(testCtx, buyer.ID)
	require.NoError(t, err)
	require.Empty(t, items)

	// Clearing one cart leaves other users' carts alone.
	items, err = svc.List(testCtx, other.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 4, items[0].Quantity)
}
