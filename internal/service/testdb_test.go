package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"marketplace/internal/db"
	"marketplace/internal/model"
)

// newTestDB opens an in-memory sqlite store with the full schema. The pool
// is capped at one connection so every query sees the same memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func seedCategory(t *testing.T, gdb *gorm.DB, name string) *model.Category {
	t.Helper()
	category := &model.Category{Name: name, IsActive: true}
	require.NoError(t, gdb.Create(category).Error)
	return category
}

func seedProduct(t *testing.T, gdb *gorm.DB, name string, categoryID, sellerID uint, price float64) *model.Product {
	t.Helper()
	product := &model.Product{
		Name:          name,
		Price:         price,
		StockQuantity: 10,
		CategoryID:    categoryID,
		SellerID:      sellerID,
		IsActive:      true,
	}
	require.NoError(t, gdb.Create(product).Error)
	return product
}

func seedUser(t *testing.T, gdb *gorm.DB, email, username string) *model.User {
	t.Helper()
	user := &model.User{
		Email:        email,
		Username:     username,
		PasswordHash: "x",
		IsActive:     true,
	}
	require.NoError(t, gdb.Create(user).Error)
	return user
}

var testCtx = context.Background()
