package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/product-catalog/internal/models"
)

// ProductRepository defines product persistence. Products returned by the
// read methods carry their Category, fetched in the same query.
type ProductRepository interface {
	GetProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	AddProduct(ctx context.Context, product models.Product) (models.Product, error)
	UpdateProduct(ctx context.Context, product models.Product) (models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}
