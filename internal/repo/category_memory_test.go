package repo

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryCategories_AddThenList(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryCategoryRepository()

	created, err := r.AddCategory(ctx, models.Category{Name: "Books", Description: "Paper and ink"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, models.DefaultAuthor, created.CreatedBy)

	all, err := r.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created, all[0])
}

func TestInMemoryCategories_OrderedByName(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryCategoryRepository()
	for _, name := range []string{"Toys", "Automotive", "Books"} {
		_, err := r.AddCategory(ctx, models.Category{Name: name})
		require.NoError(t, err)
	}

	all, err := r.GetCategories(ctx)
	require.NoError(t, err)
	names := []string{}
	for _, c := range all {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Automotive", "Books", "Toys"}, names)
}

func TestInMemoryCategories_GetMissingReturnsNil(t *testing.T) {
	r := NewInMemoryCategoryRepository()

	c, err := r.GetCategoryByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestInMemoryCategories_DeleteUnknownIsNoop(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryCategoryRepository()
	_, err := r.AddCategory(ctx, models.Category{Name: "Books"})
	require.NoError(t, err)

	require.NoError(t, r.DeleteCategory(ctx, uuid.New()))

	all, err := r.GetCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestInMemoryCategories_Update(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryCategoryRepository()
	c, err := r.AddCategory(ctx, models.Category{Name: "Books"})
	require.NoError(t, err)

	c.Name = "Books & Comics"
	updated, err := r.UpdateCategory(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, "Books & Comics", updated.Name)

	_, err = r.UpdateCategory(ctx, models.Category{Entity: models.Entity{ID: uuid.New()}, Name: "x"})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestInMemoryCategories_DeleteReferencedIsRefused(t *testing.T) {
	ctx := context.Background()
	categories, products := newMemoryRepos()
	c := addCategory(t, categories, "Books")
	addProduct(t, products, "novel", "12", c.ID, baseTime)

	err := categories.DeleteCategory(ctx, c.ID)
	assert.ErrorIs(t, err, ErrCategoryInUse)

	got, err := categories.GetCategoryByID(ctx, c.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestInMemoryCategories_ConcurrentDeleteLeavesNoOrphans(t *testing.T) {
	ctx := context.Background()

	for range 50 {
		categories, products := newMemoryRepos()
		c := addCategory(t, categories, "Books")

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = products.AddProduct(ctx, models.Product{Name: "novel", CategoryID: c.ID})
		}()
		go func() {
			defer wg.Done()
			_ = categories.DeleteCategory(ctx, c.ID)
		}()
		wg.Wait()

		stored, err := categories.GetCategoryByID(ctx, c.ID)
		require.NoError(t, err)
		n, err := products.CountByCategory(ctx, c.ID)
		require.NoError(t, err)
		if stored == nil {
			assert.Zero(t, n, "products reference a deleted category")
		} else {
			assert.Equal(t, int64(1), n)
		}
	}
}
