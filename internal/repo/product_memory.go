package repo

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/product-catalog/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
// Categories are resolved from the category repository it was created with.
// When both locks are needed the product lock is taken first.
type InMemoryProductRepository struct {
	mu         sync.RWMutex
	products   []models.Product
	categories *InMemoryCategoryRepository
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository(categories *InMemoryCategoryRepository) *InMemoryProductRepository {
	r := &InMemoryProductRepository{
		products:   []models.Product{},
		categories: categories,
	}
	categories.products = r
	return r
}

// GetProducts filters, sorts and pages the stored products.
func (r *InMemoryProductRepository) GetProducts(_ context.Context, filter ProductFilter) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	preds := productPredicates(filter)
	var matched []models.Product
	for _, p := range r.products {
		if matchesAll(preds, p) {
			matched = append(matched, r.withCategory(p))
		}
	}
	sortProducts(matched, filter.SortColumn, filter.SortDirection)

	start := clamp(filter.Offset(), 0, len(matched))
	end := start + clamp(filter.PageSize, 0, len(matched)-start)

	page := make([]models.Product, end-start)
	copy(page, matched[start:end])
	return page, nil
}

func (r *InMemoryProductRepository) GetProductByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			p = r.withCategory(p)
			return &p, nil
		}
	}
	return nil, nil
}

// AddProduct stores the product. The category must already exist.
func (r *InMemoryProductRepository) AddProduct(_ context.Context, product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category, ok := r.categories.lookup(product.CategoryID)
	if !ok {
		return models.Product{}, ErrUnknownCategory
	}

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if product.CreatedBy == "" {
		product.CreatedBy = models.DefaultAuthor
	}
	product.Category = models.Category{}
	r.products = append(r.products, product)

	product.Category = category
	return product, nil
}

func (r *InMemoryProductRepository) UpdateProduct(_ context.Context, product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category, ok := r.categories.lookup(product.CategoryID)
	if !ok {
		return models.Product{}, ErrUnknownCategory
	}

	for i, p := range r.products {
		if p.ID == product.ID {
			p.Name = product.Name
			p.Price = product.Price
			p.CategoryID = product.CategoryID
			p.ModifiedBy = product.ModifiedBy
			p.ModifiedDate = product.ModifiedDate
			r.products[i] = p

			p.Category = category
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) DeleteProduct(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = slices.DeleteFunc(r.products, func(p models.Product) bool { return p.ID == id })
	return nil
}

func (r *InMemoryProductRepository) CountByCategory(_ context.Context, categoryID uuid.UUID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.countLocked(categoryID), nil
}

// countLocked expects r.mu to be held.
func (r *InMemoryProductRepository) countLocked(categoryID uuid.UUID) int64 {
	var n int64
	for _, p := range r.products {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n
}

// Clear removes every product.
func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	r.products = []models.Product{}
	r.mu.Unlock()
}

func (r *InMemoryProductRepository) withCategory(p models.Product) models.Product {
	if c, ok := r.categories.lookup(p.CategoryID); ok {
		p.Category = c
	}
	return p
}
