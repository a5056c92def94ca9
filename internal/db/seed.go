package db

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/go-faster/errors"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/pkg/clock"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
	"github.com/shopspring/decimal"
)

// ProductsPerCategory is how many products Seed creates in each category.
const ProductsPerCategory = 10

var seedCategories = []models.Category{
	{Name: "Electronics", Description: "Televisions, computers, smartphones, and other electronic devices."},
	{Name: "Books", Description: "Fiction, non-fiction, textbooks, and other literary works."},
	{Name: "Clothing", Description: "Apparel for men, women, and children."},
	{Name: "Home & Kitchen", Description: "Furniture, cookware, appliances, and home decor."},
	{Name: "Toys & Games", Description: "Toys, board games, video games, and outdoor play equipment."},
	{Name: "Beauty & Personal Care", Description: "Cosmetics, skincare, haircare, and personal hygiene products."},
	{Name: "Sports & Outdoors", Description: "Sports equipment, outdoor gear, and fitness accessories."},
	{Name: "Automotive", Description: "Car parts, accessories, and maintenance supplies."},
	{Name: "Health & Household", Description: "Over-the-counter medications, cleaning supplies, and household essentials."},
	{Name: "Pet Supplies", Description: "Food, toys, accessories, and grooming supplies for pets."},
}

// Seed fills an empty catalog with sample categories and products. Prices
// fall in [10.00, 999.99] and creation dates in the year before clk.Now().
// It reports whether anything was written; a catalog that already has
// categories is left alone.
func Seed(ctx context.Context, categories repo.CategoryRepository, products repo.ProductRepository, clk clock.Clock, rnd *rand.Rand) (bool, error) {
	existing, err := categories.GetCategories(ctx)
	if err != nil {
		return false, errors.Wrap(err, "check existing categories")
	}
	if len(existing) > 0 {
		return false, nil
	}

	now := clk.Now()
	year := int64(365 * 24 * time.Hour / time.Second)

	for _, c := range seedCategories {
		c.CreatedBy = models.DefaultAuthor
		c.CreatedDate = now
		created, err := categories.AddCategory(ctx, c)
		if err != nil {
			return true, errors.Wrapf(err, "seed category %q", c.Name)
		}

		for i := range ProductsPerCategory {
			p := models.Product{
				Entity: models.Entity{
					CreatedBy:   models.DefaultAuthor,
					CreatedDate: now.Add(-time.Duration(rnd.Int64N(year)) * time.Second),
				},
				Name:       fmt.Sprintf("Product %s %d", created.Name, i+1),
				Price:      decimal.New(rnd.Int64N(99000)+1000, -2),
				CategoryID: created.ID,
			}
			if _, err := products.AddProduct(ctx, p); err != nil {
				return true, errors.Wrapf(err, "seed product %q", p.Name)
			}
		}
	}

	return true, nil
}
