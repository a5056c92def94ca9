package repo

import (
	"cmp"
	"slices"
	"strings"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

// predicate is one WHERE condition of a product query. The SQL fragment is
// used by the GORM repository and match by the in-memory one, so both
// storages filter identically.
type predicate struct {
	clause string
	args   []any
	match  func(p models.Product) bool
}

// productPredicates builds the conjunctive condition set for f. Absent
// filter fields contribute nothing.
func productPredicates(f ProductFilter) []predicate {
	preds := []predicate{}

	if f.MinPrice != nil {
		lower := *f.MinPrice
		preds = append(preds, predicate{
			clause: "products.price >= ?",
			args:   []any{lower},
			match:  func(p models.Product) bool { return p.Price.GreaterThanOrEqual(lower) },
		})
	}
	if f.MaxPrice != nil {
		upper := *f.MaxPrice
		preds = append(preds, predicate{
			clause: "products.price <= ?",
			args:   []any{upper},
			match:  func(p models.Product) bool { return p.Price.LessThanOrEqual(upper) },
		})
	}
	if f.StartDate != nil && f.EndDate != nil {
		start, end := *f.StartDate, *f.EndDate
		preds = append(preds, predicate{
			clause: "products.created_date BETWEEN ? AND ?",
			args:   []any{start, end},
			match: func(p models.Product) bool {
				return !p.CreatedDate.Before(start) && !p.CreatedDate.After(end)
			},
		})
	}
	if f.CategoryID != nil {
		categoryID := *f.CategoryID
		preds = append(preds, predicate{
			clause: "products.category_id = ?",
			args:   []any{categoryID},
			match:  func(p models.Product) bool { return p.CategoryID == categoryID },
		})
	}

	return preds
}

func matchesAll(preds []predicate, p models.Product) bool {
	for _, pred := range preds {
		if !pred.match(p) {
			return false
		}
	}
	return true
}

func compareProducts(a, b models.Product, column SortColumn) int {
	switch column {
	case SortByName:
		return strings.Compare(a.Name, b.Name)
	case SortByPrice:
		return a.Price.Cmp(b.Price)
	case SortByCreatedDate:
		return a.CreatedDate.Compare(b.CreatedDate)
	default:
		return strings.Compare(a.ID.String(), b.ID.String())
	}
}

// sortProducts orders products the same way the SQL ORDER BY does: the
// requested column and direction, then id ascending.
func sortProducts(products []models.Product, column SortColumn, direction SortDirection) {
	slices.SortStableFunc(products, func(a, b models.Product) int {
		c := compareProducts(a, b, column)
		if direction == Descending {
			c = -c
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
