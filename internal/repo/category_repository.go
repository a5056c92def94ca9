package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/product-catalog/internal/models"
)

// CategoryRepository defines category persistence. GetCategoryByID returns
// nil without an error when the id does not exist, and DeleteCategory of a
// missing id is a no-op.
type CategoryRepository interface {
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	AddCategory(ctx context.Context, category models.Category) (models.Category, error)
	UpdateCategory(ctx context.Context, category models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
