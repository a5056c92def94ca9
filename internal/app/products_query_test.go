package app

import (
	"testing"
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/repo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func fields(t *testing.T, err error) []string {
	t.Helper()
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	out := []string{}
	for _, fe := range verr.Errors {
		out = append(out, fe.Field)
	}
	return out
}

func TestGetProductsQuery_Defaults(t *testing.T) {
	f, err := GetProductsQuery{}.Filter(0)
	require.NoError(t, err)
	assert.Equal(t, repo.NewProductFilter(), f)
	assert.Equal(t, repo.SortByID, f.SortColumn)
	assert.Equal(t, repo.Ascending, f.SortDirection)
	assert.Equal(t, 1, f.PageNumber)
	assert.Equal(t, 10, f.PageSize)
}

func TestGetProductsQuery_CopiesFields(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	q := GetProductsQuery{
		MinPrice:      ptr(decimal.NewFromInt(100)),
		MaxPrice:      ptr(decimal.NewFromInt(500)),
		StartDate:     &start,
		EndDate:       &end,
		SortColumn:    ptr(repo.SortByPrice),
		SortDirection: ptr(repo.Descending),
		PageNumber:    ptr(3),
		PageSize:      ptr(25),
	}

	f, err := q.Filter(100)
	require.NoError(t, err)
	assert.True(t, f.MinPrice.Equal(decimal.NewFromInt(100)))
	assert.True(t, f.MaxPrice.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, start, *f.StartDate)
	assert.Equal(t, end, *f.EndDate)
	assert.Nil(t, f.CategoryID)
	assert.Equal(t, repo.SortByPrice, f.SortColumn)
	assert.Equal(t, repo.Descending, f.SortDirection)
	assert.Equal(t, 3, f.PageNumber)
	assert.Equal(t, 25, f.PageSize)
}

func TestGetProductsQuery_Validation(t *testing.T) {
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)

	cases := []struct {
		name  string
		query GetProductsQuery
		want  []string
	}{
		{"page zero", GetProductsQuery{PageNumber: ptr(0)}, []string{"pageNumber"}},
		{"size zero", GetProductsQuery{PageSize: ptr(0)}, []string{"pageSize"}},
		{"size over max", GetProductsQuery{PageSize: ptr(101)}, []string{"pageSize"}},
		{"negative price", GetProductsQuery{MinPrice: ptr(decimal.NewFromInt(-1))}, []string{"minPrice"}},
		{"inverted prices", GetProductsQuery{MinPrice: ptr(decimal.NewFromInt(20)), MaxPrice: ptr(decimal.NewFromInt(10))}, []string{"maxPrice"}},
		{"inverted dates", GetProductsQuery{StartDate: &start, EndDate: &end}, []string{"endDate"}},
		{"unknown sort", GetProductsQuery{SortColumn: ptr(repo.SortColumn(9))}, []string{"sortColumn"}},
		{"several", GetProductsQuery{PageNumber: ptr(-1), PageSize: ptr(1000)}, []string{"pageNumber", "pageSize"}},
		{"offset overflows", GetProductsQuery{PageNumber: ptr(100_000_000_000_000_000), PageSize: ptr(100)}, []string{"pageNumber"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.query.Filter(100)
			assert.Equal(t, tc.want, fields(t, err))
		})
	}
}

func TestGetProductsQuery_LargePageWithinRange(t *testing.T) {
	f, err := GetProductsQuery{PageNumber: ptr(100_000_000_000_000_000)}.Filter(100)
	require.NoError(t, err)
	assert.Equal(t, 999_999_999_999_999_990, f.Offset())
}

func TestGetProductsQuery_MaxPageSizeIsConfigurable(t *testing.T) {
	_, err := GetProductsQuery{PageSize: ptr(50)}.Filter(20)
	assert.Equal(t, []string{"pageSize"}, fields(t, err))

	f, err := GetProductsQuery{PageSize: ptr(100)}.Filter(0)
	require.NoError(t, err)
	assert.Equal(t, 100, f.PageSize)
}
