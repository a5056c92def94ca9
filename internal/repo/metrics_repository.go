package repo

import (
	"context"

	"github.com/google/uuid"
)

type LargestCategory struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ProductCount int64     `json:"productCount"`
}

type Metrics struct {
	TotalProducts   int64           `json:"totalProducts"`
	TotalCategories int64           `json:"totalCategories"`
	LargestCategory LargestCategory `json:"largestCategory"`
}

type MetricsRepository interface {
	GetCatalogMetrics(ctx context.Context) (Metrics, error)
}
