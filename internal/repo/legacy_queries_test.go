package repo

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyProductQueries(t *testing.T) {
	ctx := context.Background()
	categories, products := newMemoryRepos()
	books := addCategory(t, categories, "Books")
	toys := addCategory(t, categories, "Toys")
	addProduct(t, products, "novel", "12", books.ID, baseTime.AddDate(0, -3, 0))
	addProduct(t, products, "atlas", "40", books.ID, baseTime)
	addProduct(t, products, "ball", "3", toys.ID, baseTime)

	q := NewLegacyProductQueries(products)

	all, err := q.GetAllProducts(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byPrice, err := q.GetProductsByPrice(ctx, ptr(decimal.NewFromInt(10)), nil, 1, 10)
	require.NoError(t, err)
	assert.Len(t, byPrice, 2)

	byDate, err := q.GetProductsByDate(ctx, baseTime.AddDate(0, -1, 0), baseTime, 1, 10)
	require.NoError(t, err)
	assert.Len(t, byDate, 2)

	byCategory, err := q.GetProductsByCategory(ctx, toys.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "ball", byCategory[0].Name)

	paged, err := q.GetAllProducts(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, paged, 1)

	farAway, err := q.GetAllProducts(ctx, 100_000_000_000_000_000, 100)
	require.NoError(t, err)
	assert.Empty(t, farAway)
}
