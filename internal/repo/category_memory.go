package repo

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/product-catalog/internal/models"
)

// InMemoryCategoryRepository is an in-memory implementation of CategoryRepository.
type InMemoryCategoryRepository struct {
	mu         sync.RWMutex
	categories []models.Category
	// set by NewInMemoryProductRepository; deletes are refused while it
	// holds products of the category
	products *InMemoryProductRepository
}

// NewInMemoryCategoryRepository creates a new instance of InMemoryCategoryRepository.
func NewInMemoryCategoryRepository() *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{
		categories: []models.Category{},
	}
}

// GetCategories returns all categories ordered by name.
func (r *InMemoryCategoryRepository) GetCategories(_ context.Context) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := slices.Clone(r.categories)
	slices.SortStableFunc(out, func(a, b models.Category) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return out, nil
}

func (r *InMemoryCategoryRepository) GetCategoryByID(_ context.Context, id uuid.UUID) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.find(id); ok {
		return &c, nil
	}
	return nil, nil
}

// AddCategory stores the category, assigning an id when it has none.
func (r *InMemoryCategoryRepository) AddCategory(_ context.Context, category models.Category) (models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	if category.CreatedBy == "" {
		category.CreatedBy = models.DefaultAuthor
	}
	r.categories = append(r.categories, category)
	return category, nil
}

// UpdateCategory replaces name, description and modification audit columns.
func (r *InMemoryCategoryRepository) UpdateCategory(_ context.Context, category models.Category) (models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.categories {
		if c.ID == category.ID {
			c.Name = category.Name
			c.Description = category.Description
			c.ModifiedBy = category.ModifiedBy
			c.ModifiedDate = category.ModifiedDate
			r.categories[i] = c
			return c, nil
		}
	}
	return models.Category{}, ErrCategoryNotFound
}

// DeleteCategory removes the category. Like the foreign key in SQL, it fails
// with ErrCategoryInUse while products reference it.
func (r *InMemoryCategoryRepository) DeleteCategory(_ context.Context, id uuid.UUID) error {
	if p := r.products; p != nil {
		p.mu.RLock()
		defer p.mu.RUnlock()
		if p.countLocked(id) > 0 {
			return ErrCategoryInUse
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.categories = slices.DeleteFunc(r.categories, func(c models.Category) bool { return c.ID == id })
	return nil
}

// Clear removes every category.
func (r *InMemoryCategoryRepository) Clear() {
	r.mu.Lock()
	r.categories = []models.Category{}
	r.mu.Unlock()
}

// lookup returns the category for id; used by the product repository to
// attach categories to rows.
func (r *InMemoryCategoryRepository) lookup(id uuid.UUID) (models.Category, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.find(id)
}

func (r *InMemoryCategoryRepository) find(id uuid.UUID) (models.Category, bool) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}
