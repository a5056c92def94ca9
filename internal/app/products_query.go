package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
	"github.com/shopspring/decimal"
)

// DefaultMaxPageSize bounds PageSize when no limit is configured.
const DefaultMaxPageSize = 100

// GetProductsQuery is the product search request. Every field is optional.
type GetProductsQuery struct {
	MinPrice      *decimal.Decimal    `json:"minPrice,omitempty"`
	MaxPrice      *decimal.Decimal    `json:"maxPrice,omitempty"`
	StartDate     *time.Time          `json:"startDate,omitempty"`
	EndDate       *time.Time          `json:"endDate,omitempty"`
	CategoryID    *uuid.UUID          `json:"categoryId,omitempty"`
	SortColumn    *repo.SortColumn    `json:"sortColumn,omitempty"`
	SortDirection *repo.SortDirection `json:"sortDirection,omitempty"`
	PageNumber    *int                `json:"pageNumber,omitempty"`
	PageSize      *int                `json:"pageSize,omitempty"`
}

// Filter applies defaults and validates q. A non-positive maxPageSize
// means DefaultMaxPageSize.
func (q GetProductsQuery) Filter(maxPageSize int) (repo.ProductFilter, error) {
	if maxPageSize <= 0 {
		maxPageSize = DefaultMaxPageSize
	}

	f := repo.NewProductFilter()
	verr := &ValidationError{}

	if q.MinPrice != nil {
		if q.MinPrice.IsNegative() {
			verr.add("minPrice", "Minimum price cannot be negative")
		}
		f.MinPrice = q.MinPrice
	}
	if q.MaxPrice != nil {
		if q.MaxPrice.IsNegative() {
			verr.add("maxPrice", "Maximum price cannot be negative")
		}
		f.MaxPrice = q.MaxPrice
	}
	if q.MinPrice != nil && q.MaxPrice != nil && q.MinPrice.GreaterThan(*q.MaxPrice) {
		verr.add("maxPrice", "Maximum price must not be less than minimum price")
	}

	f.StartDate, f.EndDate = q.StartDate, q.EndDate
	if q.StartDate != nil && q.EndDate != nil && q.StartDate.After(*q.EndDate) {
		verr.add("endDate", "End date must not be before start date")
	}

	f.CategoryID = q.CategoryID

	if q.SortColumn != nil {
		if !q.SortColumn.Valid() {
			verr.add("sortColumn", "Unknown sort column")
		}
		f.SortColumn = *q.SortColumn
	}
	if q.SortDirection != nil {
		if !q.SortDirection.Valid() {
			verr.add("sortDirection", "Unknown sort direction")
		}
		f.SortDirection = *q.SortDirection
	}

	if q.PageNumber != nil {
		if *q.PageNumber < 1 {
			verr.add("pageNumber", "Page number must be at least 1")
		}
		f.PageNumber = *q.PageNumber
	}
	if q.PageSize != nil {
		if *q.PageSize < 1 || *q.PageSize > maxPageSize {
			verr.add("pageSize", fmt.Sprintf("Page size must be between 1 and %d", maxPageSize))
		}
		f.PageSize = *q.PageSize
	}

	if len(verr.Errors) == 0 && !f.OffsetInRange() {
		verr.add("pageNumber", "Page number is too large for the page size")
	}

	if err := verr.err(); err != nil {
		return repo.ProductFilter{}, err
	}
	return f, nil
}
