package db

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/pkg/clock"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	categories := repo.NewInMemoryCategoryRepository()
	products := repo.NewInMemoryProductRepository(categories)

	seeded, err := Seed(ctx, categories, products, clock.NewMockClock(now), rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	assert.True(t, seeded)

	all, err := categories.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, all, 10)

	f := repo.NewProductFilter()
	f.PageSize = 1000
	items, err := products.GetProducts(ctx, f)
	require.NoError(t, err)
	require.Len(t, items, 100)

	lo, hi := decimal.RequireFromString("10"), decimal.RequireFromString("999.99")
	for _, p := range items {
		assert.True(t, p.Price.GreaterThanOrEqual(lo) && p.Price.LessThanOrEqual(hi), p.Price.String())
		assert.False(t, p.CreatedDate.After(now))
		assert.True(t, p.CreatedDate.After(now.AddDate(-1, 0, -1)))
		assert.Contains(t, p.Name, "Product "+p.Category.Name+" ")
	}

	for _, c := range all {
		n, err := products.CountByCategory(ctx, c.ID)
		require.NoError(t, err)
		assert.EqualValues(t, ProductsPerCategory, n, c.Name)
	}
}

func TestSeed_SkipsNonEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	categories := repo.NewInMemoryCategoryRepository()
	products := repo.NewInMemoryProductRepository(categories)
	_, err := categories.AddCategory(ctx, models.Category{Name: "Existing"})
	require.NoError(t, err)

	seeded, err := Seed(ctx, categories, products, clock.NewRealClock(), rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	assert.False(t, seeded)

	all, err := categories.GetCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
