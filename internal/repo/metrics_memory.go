package repo

import (
	"context"
	"strings"
)

type InMemoryMetricsRepository struct {
	productRepo  *InMemoryProductRepository
	categoryRepo *InMemoryCategoryRepository
}

// GetCatalogMetrics implements MetricsRepository.
func (i *InMemoryMetricsRepository) GetCatalogMetrics(ctx context.Context) (Metrics, error) {
	m := Metrics{}

	categories, err := i.categoryRepo.GetCategories(ctx)
	if err != nil {
		return m, err
	}
	m.TotalCategories = int64(len(categories))

	i.productRepo.mu.RLock()
	m.TotalProducts = int64(len(i.productRepo.products))
	i.productRepo.mu.RUnlock()

	// Ties go to the name that sorts first, matching the SQL version.
	for _, c := range categories {
		count, err := i.productRepo.CountByCategory(ctx, c.ID)
		if err != nil {
			return m, err
		}
		if count == 0 {
			continue
		}
		best := m.LargestCategory
		if count > best.ProductCount || (count == best.ProductCount && strings.Compare(c.Name, best.Name) < 0) {
			m.LargestCategory = LargestCategory{ID: c.ID, Name: c.Name, ProductCount: count}
		}
	}

	return m, nil
}

func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{}
}

func (i *InMemoryMetricsRepository) SetRepositories(
	productRepo *InMemoryProductRepository,
	categoryRepo *InMemoryCategoryRepository,
) {
	i.productRepo = productRepo
	i.categoryRepo = categoryRepo
}
