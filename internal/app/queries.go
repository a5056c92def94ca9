package app

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

// GetProductsHandler runs product searches.
type GetProductsHandler struct {
	products    repo.ProductRepository
	maxPageSize int
}

func NewGetProductsHandler(products repo.ProductRepository, maxPageSize int) *GetProductsHandler {
	return &GetProductsHandler{products: products, maxPageSize: maxPageSize}
}

func (h *GetProductsHandler) Handle(ctx context.Context, q GetProductsQuery) ([]ProductResult, error) {
	filter, err := q.Filter(h.maxPageSize)
	if err != nil {
		return nil, err
	}
	products, err := h.products.GetProducts(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "get products")
	}
	return toProductResults(products), nil
}

type GetProductByIDQuery struct {
	ID uuid.UUID
}

type GetProductByIDHandler struct {
	products repo.ProductRepository
}

// Handle returns nil when the product does not exist.
func (h *GetProductByIDHandler) Handle(ctx context.Context, q GetProductByIDQuery) (*ProductResult, error) {
	p, err := h.products.GetProductByID(ctx, q.ID)
	if err != nil || p == nil {
		return nil, err
	}
	result := toProductResult(*p)
	return &result, nil
}

type GetAllCategoriesQuery struct{}

type GetAllCategoriesHandler struct {
	categories repo.CategoryRepository
}

func (h *GetAllCategoriesHandler) Handle(ctx context.Context, _ GetAllCategoriesQuery) ([]CategoryResult, error) {
	categories, err := h.categories.GetCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get categories")
	}
	out := make([]CategoryResult, len(categories))
	for i, c := range categories {
		out[i] = toCategoryResult(c)
	}
	return out, nil
}

type GetCategoryByIDQuery struct {
	ID uuid.UUID
}

type GetCategoryByIDHandler struct {
	categories repo.CategoryRepository
}

// Handle returns nil when the category does not exist.
func (h *GetCategoryByIDHandler) Handle(ctx context.Context, q GetCategoryByIDQuery) (*CategoryResult, error) {
	c, err := h.categories.GetCategoryByID(ctx, q.ID)
	if err != nil || c == nil {
		return nil, err
	}
	result := toCategoryResult(*c)
	return &result, nil
}

type GetCatalogMetricsQuery struct{}

type GetCatalogMetricsHandler struct {
	metrics repo.MetricsRepository
}

func (h *GetCatalogMetricsHandler) Handle(ctx context.Context, _ GetCatalogMetricsQuery) (repo.Metrics, error) {
	m, err := h.metrics.GetCatalogMetrics(ctx)
	if err != nil {
		return repo.Metrics{}, errors.Wrap(err, "get catalog metrics")
	}
	return m, nil
}
