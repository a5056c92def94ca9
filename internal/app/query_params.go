package app

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
	"github.com/shopspring/decimal"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

// ParseProductsQuery reads a GetProductsQuery from URL query parameters.
// Empty parameters are treated as absent.
func ParseProductsQuery(values url.Values) (GetProductsQuery, error) {
	var q GetProductsQuery
	verr := &ValidationError{}
	get := func(key string) string { return strings.TrimSpace(values.Get(key)) }

	if s := get("minPrice"); s != "" {
		if d, err := decimal.NewFromString(s); err != nil {
			verr.add("minPrice", "Minimum price must be a number")
		} else {
			q.MinPrice = &d
		}
	}
	if s := get("maxPrice"); s != "" {
		if d, err := decimal.NewFromString(s); err != nil {
			verr.add("maxPrice", "Maximum price must be a number")
		} else {
			q.MaxPrice = &d
		}
	}
	if s := get("startDate"); s != "" {
		if t, ok := parseDate(s); !ok {
			verr.add("startDate", "Start date must be a date or an RFC 3339 timestamp")
		} else {
			q.StartDate = &t
		}
	}
	if s := get("endDate"); s != "" {
		if t, ok := parseDate(s); !ok {
			verr.add("endDate", "End date must be a date or an RFC 3339 timestamp")
		} else {
			q.EndDate = &t
		}
	}
	if s := get("categoryId"); s != "" {
		if id, err := uuid.Parse(s); err != nil {
			verr.add("categoryId", "Category id must be a UUID")
		} else {
			q.CategoryID = &id
		}
	}
	if s := get("sortColumn"); s != "" {
		if c, err := repo.ParseSortColumn(s); err != nil {
			verr.add("sortColumn", "Unknown sort column")
		} else {
			q.SortColumn = &c
		}
	}
	if s := get("sortDirection"); s != "" {
		if d, err := repo.ParseSortDirection(s); err != nil {
			verr.add("sortDirection", "Unknown sort direction")
		} else {
			q.SortDirection = &d
		}
	}
	if s := get("pageNumber"); s != "" {
		if n, err := strconv.Atoi(s); err != nil {
			verr.add("pageNumber", "Page number must be an integer")
		} else {
			q.PageNumber = &n
		}
	}
	if s := get("pageSize"); s != "" {
		if n, err := strconv.Atoi(s); err != nil {
			verr.add("pageSize", "Page size must be an integer")
		} else {
			q.PageSize = &n
		}
	}

	return q, verr.err()
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
