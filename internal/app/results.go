package app

import (
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/shopspring/decimal"
)

type CategoryRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ProductResult is a product as returned to API clients.
type ProductResult struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    CategoryRef     `json:"category"`
	CreatedDate time.Time       `json:"createdDate"`
}

type CategoryResult struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

func toProductResult(p models.Product) ProductResult {
	return ProductResult{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Category: CategoryRef{
			ID:   p.Category.ID,
			Name: p.Category.Name,
		},
		CreatedDate: p.CreatedDate,
	}
}

func toProductResults(products []models.Product) []ProductResult {
	out := make([]ProductResult, len(products))
	for i, p := range products {
		out[i] = toProductResult(p)
	}
	return out
}

func toCategoryResult(c models.Category) CategoryResult {
	return CategoryResult{ID: c.ID, Name: c.Name, Description: c.Description}
}
