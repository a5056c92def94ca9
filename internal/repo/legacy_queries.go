package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/shopspring/decimal"
)

// LegacyProductQueries exposes the single-dimension product lookups older
// clients use. Each builds a ProductFilter with the default sort and page and
// runs it through ProductRepository.GetProducts.
type LegacyProductQueries struct {
	products ProductRepository
}

func NewLegacyProductQueries(products ProductRepository) *LegacyProductQueries {
	return &LegacyProductQueries{products: products}
}

func (q *LegacyProductQueries) GetAllProducts(ctx context.Context, pageNumber, pageSize int) ([]models.Product, error) {
	return q.products.GetProducts(ctx, pagedFilter(pageNumber, pageSize))
}

func (q *LegacyProductQueries) GetProductsByPrice(ctx context.Context, minPrice, maxPrice *decimal.Decimal, pageNumber, pageSize int) ([]models.Product, error) {
	f := pagedFilter(pageNumber, pageSize)
	f.MinPrice, f.MaxPrice = minPrice, maxPrice
	return q.products.GetProducts(ctx, f)
}

func (q *LegacyProductQueries) GetProductsByDate(ctx context.Context, startDate, endDate time.Time, pageNumber, pageSize int) ([]models.Product, error) {
	f := pagedFilter(pageNumber, pageSize)
	f.StartDate, f.EndDate = &startDate, &endDate
	return q.products.GetProducts(ctx, f)
}

func (q *LegacyProductQueries) GetProductsByCategory(ctx context.Context, categoryID uuid.UUID, pageNumber, pageSize int) ([]models.Product, error) {
	f := pagedFilter(pageNumber, pageSize)
	f.CategoryID = &categoryID
	return q.products.GetProducts(ctx, f)
}

func pagedFilter(pageNumber, pageSize int) ProductFilter {
	f := NewProductFilter()
	if pageNumber > 0 {
		f.PageNumber = pageNumber
	}
	if pageSize > 0 {
		f.PageSize = pageSize
	}
	return f
}
