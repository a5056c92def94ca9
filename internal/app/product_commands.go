package app

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/pkg/clock"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
	"github.com/shopspring/decimal"
)

type AddProductCommand struct {
	Name       string          `json:"name" validate:"required,max=255"`
	Price      decimal.Decimal `json:"price"`
	CategoryID uuid.UUID       `json:"categoryId" validate:"required"`
	Actor      string          `json:"-"`
}

type UpdateProductCommand struct {
	ID         uuid.UUID       `json:"-"`
	Name       string          `json:"name" validate:"required,max=255"`
	Price      decimal.Decimal `json:"price"`
	CategoryID uuid.UUID       `json:"categoryId" validate:"required"`
	Actor      string          `json:"-"`
}

type DeleteProductCommand struct {
	ID uuid.UUID
}

type productCommands struct {
	categories repo.CategoryRepository
	products   repo.ProductRepository
	clock      clock.Clock
}

func (h *productCommands) add(ctx context.Context, cmd AddProductCommand) (ProductResult, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	if err := h.validate(ctx, cmd, cmd.Price, cmd.CategoryID); err != nil {
		return ProductResult{}, err
	}

	p, err := h.products.AddProduct(ctx, models.Product{
		Entity: models.Entity{
			CreatedBy:   author(cmd.Actor),
			CreatedDate: h.clock.Now(),
		},
		Name:       cmd.Name,
		Price:      cmd.Price,
		CategoryID: cmd.CategoryID,
	})
	if errors.Is(err, repo.ErrUnknownCategory) {
		return ProductResult{}, unknownCategory()
	}
	if err != nil {
		return ProductResult{}, errors.Wrap(err, "add product")
	}
	return toProductResult(p), nil
}

func (h *productCommands) update(ctx context.Context, cmd UpdateProductCommand) (ProductResult, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	if err := h.validate(ctx, cmd, cmd.Price, cmd.CategoryID); err != nil {
		return ProductResult{}, err
	}

	now := h.clock.Now()
	by := author(cmd.Actor)
	p, err := h.products.UpdateProduct(ctx, models.Product{
		Entity: models.Entity{
			ID:           cmd.ID,
			ModifiedBy:   &by,
			ModifiedDate: &now,
		},
		Name:       cmd.Name,
		Price:      cmd.Price,
		CategoryID: cmd.CategoryID,
	})
	if errors.Is(err, repo.ErrUnknownCategory) {
		return ProductResult{}, unknownCategory()
	}
	if err != nil {
		return ProductResult{}, errors.Wrap(err, "update product")
	}
	return toProductResult(p), nil
}

func (h *productCommands) delete(ctx context.Context, cmd DeleteProductCommand) (Unit, error) {
	if err := h.products.DeleteProduct(ctx, cmd.ID); err != nil {
		return Unit{}, errors.Wrap(err, "delete product")
	}
	return Unit{}, nil
}

// validate checks struct tags, price sign and that the category exists.
func (h *productCommands) validate(ctx context.Context, cmd any, price decimal.Decimal, categoryID uuid.UUID) error {
	verr := &ValidationError{}

	if err := validateStruct(cmd); err != nil {
		var tagErrs *ValidationError
		if !errors.As(err, &tagErrs) {
			return err
		}
		verr.Errors = append(verr.Errors, tagErrs.Errors...)
	}
	if price.IsNegative() {
		verr.add("price", "Price cannot be negative")
	}
	if categoryID != uuid.Nil {
		c, err := h.categories.GetCategoryByID(ctx, categoryID)
		if err != nil {
			return errors.Wrap(err, "look up category")
		}
		if c == nil {
			verr.add("categoryId", "Category does not exist")
		}
	}

	return verr.err()
}

func unknownCategory() error {
	return fieldError("categoryId", "Category does not exist")
}
