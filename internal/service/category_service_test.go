package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "marketplace/internal/errors"
	"marketplace/internal/model"
	"marketplace/internal/repository"
)

func TestCategoryService_SoftDelete(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(gdb))

	category, err := svc.Create(testCtx, "Plush Toys", "Soft plush toys", "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(testCtx, category.ID))

	// Gone from listings and from further mutations.
	listed, err := svc.List(testCtx, 0, 100)
	require.NoError(t, err)
	require.Empty(t, listed)

	name := "Renamed"
	_, err = svc.Update(testCtx, category.ID, CategoryPatch{Name: &name})
	require.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
	require.ErrorIs(t, svc.Delete(testCtx, category.ID), apperrors.ErrCategoryNotFound)

	// The row itself survives with the flag flipped.
	var stored model.Category
	require.NoError(t, gdb.First(&stored, category.ID).Error)
	require.False(t, stored.IsActive)
}

func TestCategoryService_PartialUpdate(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(gdb))

	category, err := svc.Create(testCtx, "Board Games", "Family board games", "https://example.com/boards.jpg")
	require.NoError(t, err)

	desc := "Family and strategy board games"
	updated, err := svc.Update(testCtx, category.ID, CategoryPatch{Description: &desc})
	require.NoError(t, err)

	// Only the supplied field changes.
	require.Equal(t, "Board Games", updated.Name)
	require.Equal(t, desc, updated.Description)
	require.Equal(t, "https://example.com/boards.jpg", updated.ImageURL)
	require.True(t, updated.IsActive)
}

func TestCategoryService_ListPagination(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(gdb))

	names := []string{"A", "B", "C", "D"}
	for _, n := range names {
		_, err := svc.Create(testCtx, n, "", "")
		require.NoError(t, err)
	}

	page, err := svc.List(testCtx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, "B", page[0].Name)
	require.Equal(t, "C", page[1].Name)
}
