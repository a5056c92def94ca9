package app

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/pkg/clock"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

// Unit is the result of commands that return nothing.
type Unit struct{}

type AddCategoryCommand struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=1000"`
	Actor       string `json:"-"`
}

type UpdateCategoryCommand struct {
	ID          uuid.UUID `json:"-"`
	Name        string    `json:"name" validate:"required,max=255"`
	Description string    `json:"description" validate:"max=1000"`
	Actor       string    `json:"-"`
}

type DeleteCategoryCommand struct {
	ID uuid.UUID
}

type categoryCommands struct {
	categories repo.CategoryRepository
	products   repo.ProductRepository
	clock      clock.Clock
}

func (h *categoryCommands) add(ctx context.Context, cmd AddCategoryCommand) (CategoryResult, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	cmd.Description = strings.TrimSpace(cmd.Description)
	if err := validateStruct(cmd); err != nil {
		return CategoryResult{}, err
	}

	c, err := h.categories.AddCategory(ctx, models.Category{
		Entity: models.Entity{
			CreatedBy:   author(cmd.Actor),
			CreatedDate: h.clock.Now(),
		},
		Name:        cmd.Name,
		Description: cmd.Description,
	})
	if err != nil {
		return CategoryResult{}, errors.Wrap(err, "add category")
	}
	return toCategoryResult(c), nil
}

func (h *categoryCommands) update(ctx context.Context, cmd UpdateCategoryCommand) (CategoryResult, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	cmd.Description = strings.TrimSpace(cmd.Description)
	if err := validateStruct(cmd); err != nil {
		return CategoryResult{}, err
	}

	now := h.clock.Now()
	by := author(cmd.Actor)
	c, err := h.categories.UpdateCategory(ctx, models.Category{
		Entity: models.Entity{
			ID:           cmd.ID,
			ModifiedBy:   &by,
			ModifiedDate: &now,
		},
		Name:        cmd.Name,
		Description: cmd.Description,
	})
	if err != nil {
		return CategoryResult{}, errors.Wrap(err, "update category")
	}
	return toCategoryResult(c), nil
}

// delete refuses to remove a category that products still reference.
func (h *categoryCommands) delete(ctx context.Context, cmd DeleteCategoryCommand) (Unit, error) {
	n, err := h.products.CountByCategory(ctx, cmd.ID)
	if err != nil {
		return Unit{}, errors.Wrap(err, "delete category")
	}
	if n > 0 {
		return Unit{}, repo.ErrCategoryInUse
	}
	if err := h.categories.DeleteCategory(ctx, cmd.ID); err != nil {
		return Unit{}, errors.Wrap(err, "delete category")
	}
	return Unit{}, nil
}

func author(actor string) string {
	if actor == "" {
		return models.DefaultAuthor
	}
	return actor
}
