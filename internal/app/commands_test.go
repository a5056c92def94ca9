package app

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/product-catalog/internal/mediator"
	"github.com/rogerio-castellano/product-catalog/internal/pkg/clock"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	m          *mediator.Mediator
	clock      *clock.MockClock
	categories *repo.InMemoryCategoryRepository
	products   *repo.InMemoryProductRepository
}

func newFixture() *fixture {
	categories := repo.NewInMemoryCategoryRepository()
	products := repo.NewInMemoryProductRepository(categories)
	metrics := repo.NewInMemoryMetricsRepository()
	metrics.SetRepositories(products, categories)

	f := &fixture{
		m:          mediator.New(),
		clock:      clock.NewMockClock(time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)),
		categories: categories,
		products:   products,
	}
	Register(f.m, Dependencies{
		Categories:  categories,
		Products:    products,
		Metrics:     metrics,
		Clock:       f.clock,
		MaxPageSize: 100,
	})
	return f
}

func (f *fixture) addCategory(t *testing.T, name string) CategoryResult {
	t.Helper()
	c, err := mediator.Send[AddCategoryCommand, CategoryResult](context.Background(), f.m, AddCategoryCommand{Name: name})
	require.NoError(t, err)
	return c
}

func (f *fixture) addProduct(t *testing.T, name, price string, categoryID uuid.UUID) ProductResult {
	t.Helper()
	p, err := mediator.Send[AddProductCommand, ProductResult](context.Background(), f.m, AddProductCommand{
		Name:       name,
		Price:      decimal.RequireFromString(price),
		CategoryID: categoryID,
	})
	require.NoError(t, err)
	return p
}

func TestAddCategory_ThenListOnce(t *testing.T) {
	f := newFixture()
	created, err := mediator.Send[AddCategoryCommand, CategoryResult](context.Background(), f.m, AddCategoryCommand{
		Name:        "  Books ",
		Description: "Paper and ink",
	})
	require.NoError(t, err)
	assert.Equal(t, "Books", created.Name)

	all, err := mediator.Send[GetAllCategoriesQuery, []CategoryResult](context.Background(), f.m, GetAllCategoriesQuery{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created, all[0])

	stored, err := f.categories.GetCategoryByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, f.clock.Now(), stored.CreatedDate)
	assert.Equal(t, "Admin", stored.CreatedBy)
}

func TestAddCategory_Validation(t *testing.T) {
	f := newFixture()

	_, err := mediator.Send[AddCategoryCommand, CategoryResult](context.Background(), f.m, AddCategoryCommand{Name: "   "})
	assert.Equal(t, []string{"name"}, fields(t, err))
}

func TestUpdateCategory(t *testing.T) {
	f := newFixture()
	c := f.addCategory(t, "Books")
	f.clock.Advance(time.Hour)

	updated, err := mediator.Send[UpdateCategoryCommand, CategoryResult](context.Background(), f.m, UpdateCategoryCommand{
		ID: c.ID, Name: "Comics", Actor: "editor",
	})
	require.NoError(t, err)
	assert.Equal(t, "Comics", updated.Name)

	stored, err := f.categories.GetCategoryByID(context.Background(), c.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ModifiedBy)
	assert.Equal(t, "editor", *stored.ModifiedBy)
	assert.Equal(t, f.clock.Now(), *stored.ModifiedDate)

	_, err = mediator.Send[UpdateCategoryCommand, CategoryResult](context.Background(), f.m, UpdateCategoryCommand{
		ID: uuid.New(), Name: "Ghost",
	})
	assert.ErrorIs(t, err, repo.ErrCategoryNotFound)
}

func TestDeleteCategory(t *testing.T) {
	f := newFixture()
	c := f.addCategory(t, "Books")
	p := f.addProduct(t, "Novel", "12.99", c.ID)

	_, err := mediator.Send[DeleteCategoryCommand, Unit](context.Background(), f.m, DeleteCategoryCommand{ID: c.ID})
	assert.ErrorIs(t, err, repo.ErrCategoryInUse)

	_, err = mediator.Send[DeleteProductCommand, Unit](context.Background(), f.m, DeleteProductCommand{ID: p.ID})
	require.NoError(t, err)
	_, err = mediator.Send[DeleteCategoryCommand, Unit](context.Background(), f.m, DeleteCategoryCommand{ID: c.ID})
	require.NoError(t, err)

	_, err = mediator.Send[DeleteCategoryCommand, Unit](context.Background(), f.m, DeleteCategoryCommand{ID: uuid.New()})
	assert.NoError(t, err)
}

func TestAddProduct_Validation(t *testing.T) {
	f := newFixture()

	_, err := mediator.Send[AddProductCommand, ProductResult](context.Background(), f.m, AddProductCommand{
		Price: decimal.NewFromInt(-5),
	})
	assert.Equal(t, []string{"name", "categoryId", "price"}, fields(t, err))

	_, err = mediator.Send[AddProductCommand, ProductResult](context.Background(), f.m, AddProductCommand{
		Name: "Orphan", Price: decimal.NewFromInt(5), CategoryID: uuid.New(),
	})
	assert.Equal(t, []string{"categoryId"}, fields(t, err))
}

func TestAddAndUpdateProduct(t *testing.T) {
	f := newFixture()
	books := f.addCategory(t, "Books")
	toys := f.addCategory(t, "Toys")

	p := f.addProduct(t, "Novel", "12.99", books.ID)
	assert.Equal(t, books.ID, p.Category.ID)
	assert.Equal(t, "Books", p.Category.Name)
	assert.Equal(t, f.clock.Now(), p.CreatedDate)

	updated, err := mediator.Send[UpdateProductCommand, ProductResult](context.Background(), f.m, UpdateProductCommand{
		ID: p.ID, Name: "Puzzle", Price: decimal.RequireFromString("7.50"), CategoryID: toys.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Puzzle", updated.Name)
	assert.Equal(t, "Toys", updated.Category.Name)
	assert.Equal(t, p.CreatedDate, updated.CreatedDate)

	_, err = mediator.Send[UpdateProductCommand, ProductResult](context.Background(), f.m, UpdateProductCommand{
		ID: uuid.New(), Name: "Ghost", Price: decimal.NewFromInt(1), CategoryID: toys.ID,
	})
	assert.ErrorIs(t, err, repo.ErrProductNotFound)
}

func TestGetProducts(t *testing.T) {
	f := newFixture()
	books := f.addCategory(t, "Books")
	for _, price := range []string{"30", "10", "20", "600"} {
		f.addProduct(t, "p"+price, price, books.ID)
	}

	got, err := mediator.Send[GetProductsQuery, []ProductResult](context.Background(), f.m, GetProductsQuery{
		MaxPrice:   ptr(decimal.NewFromInt(500)),
		SortColumn: ptr(repo.SortByPrice),
	})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "10", got[0].Price.String())
	assert.Equal(t, "30", got[2].Price.String())
	for _, p := range got {
		assert.Equal(t, "Books", p.Category.Name)
	}

	_, err = mediator.Send[GetProductsQuery, []ProductResult](context.Background(), f.m, GetProductsQuery{PageSize: ptr(0)})
	assert.Equal(t, []string{"pageSize"}, fields(t, err))
}

func TestGetByID_Missing(t *testing.T) {
	f := newFixture()

	p, err := mediator.Send[GetProductByIDQuery, *ProductResult](context.Background(), f.m, GetProductByIDQuery{ID: uuid.New()})
	require.NoError(t, err)
	assert.Nil(t, p)

	c, err := mediator.Send[GetCategoryByIDQuery, *CategoryResult](context.Background(), f.m, GetCategoryByIDQuery{ID: uuid.New()})
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestGetCatalogMetrics(t *testing.T) {
	f := newFixture()
	books := f.addCategory(t, "Books")
	f.addProduct(t, "Novel", "12", books.ID)

	m, err := mediator.Send[GetCatalogMetricsQuery, repo.Metrics](context.Background(), f.m, GetCatalogMetricsQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, m.TotalProducts)
	assert.Equal(t, "Books", m.LargestCategory.Name)
}
