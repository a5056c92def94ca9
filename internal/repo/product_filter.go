package repo

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
)

// SortColumn selects the product column a page is ordered by.
type SortColumn int

const (
	SortByID SortColumn = iota
	SortByName
	SortByPrice
	SortByCreatedDate
)

var sortColumnNames = []string{"Id", "Name", "Price", "CreatedDate"}

// dbColumn returns the products column backing the sort.
func (c SortColumn) dbColumn() string {
	switch c {
	case SortByName:
		return "name"
	case SortByPrice:
		return "price"
	case SortByCreatedDate:
		return "created_date"
	default:
		return "id"
	}
}

func (c SortColumn) Valid() bool {
	return c >= SortByID && int(c) < len(sortColumnNames)
}

func (c SortColumn) String() string {
	if !c.Valid() {
		return "SortColumn(" + strconv.Itoa(int(c)) + ")"
	}
	return sortColumnNames[c]
}

// ParseSortColumn accepts a column name in any case ("price", "createdDate")
// or its ordinal ("2").
func ParseSortColumn(s string) (SortColumn, error) {
	idx, err := parseEnum(s, sortColumnNames)
	if err != nil {
		return SortByID, errors.Wrap(err, "sort column")
	}
	return SortColumn(idx), nil
}

func (c SortColumn) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *SortColumn) UnmarshalJSON(data []byte) error {
	idx, err := unmarshalEnum(data, sortColumnNames)
	if err != nil {
		return errors.Wrap(err, "sort column")
	}
	*c = SortColumn(idx)
	return nil
}

// SortDirection orders a page ascending or descending.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

var sortDirectionNames = []string{"Asc", "Desc"}

func (d SortDirection) Valid() bool {
	return d == Ascending || d == Descending
}

func (d SortDirection) String() string {
	if !d.Valid() {
		return "SortDirection(" + strconv.Itoa(int(d)) + ")"
	}
	return sortDirectionNames[d]
}

func ParseSortDirection(s string) (SortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascending":
		return Ascending, nil
	case "descending":
		return Descending, nil
	}
	idx, err := parseEnum(s, sortDirectionNames)
	if err != nil {
		return Ascending, errors.Wrap(err, "sort direction")
	}
	return SortDirection(idx), nil
}

func (d SortDirection) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *SortDirection) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := ParseSortDirection(s)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}
	idx, err := unmarshalEnum(data, sortDirectionNames)
	if err != nil {
		return errors.Wrap(err, "sort direction")
	}
	*d = SortDirection(idx)
	return nil
}

func parseEnum(s string, names []string) (int, error) {
	s = strings.TrimSpace(s)
	for i, name := range names {
		if strings.EqualFold(s, name) {
			return i, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n < len(names) {
		return n, nil
	}
	return 0, errors.Errorf("unknown value %q", s)
}

func unmarshalEnum(data []byte, names []string) (int, error) {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return parseEnum(s, names)
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return 0, errors.Errorf("expected a name or an ordinal, got %s", data)
	}
	if n < 0 || n >= len(names) {
		return 0, errors.Errorf("ordinal %d out of range", n)
	}
	return n, nil
}

// ProductFilter is the normalized product query. Nil fields are not applied.
// The date range only applies when both StartDate and EndDate are set.
type ProductFilter struct {
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	StartDate     *time.Time
	EndDate       *time.Time
	CategoryID    *uuid.UUID
	SortColumn    SortColumn
	SortDirection SortDirection
	PageNumber    int
	PageSize      int
}

// NewProductFilter returns a filter with the default sort and page.
func NewProductFilter() ProductFilter {
	return ProductFilter{
		SortColumn:    SortByID,
		SortDirection: Ascending,
		PageNumber:    DefaultPageNumber,
		PageSize:      DefaultPageSize,
	}
}

// Offset is the number of rows skipped before the page starts. An offset
// too large for an int saturates at math.MaxInt, past any result set.
func (f ProductFilter) Offset() int {
	off, ok := f.offset()
	if !ok {
		return math.MaxInt
	}
	return off
}

// OffsetInRange reports whether (PageNumber-1)*PageSize fits in an int.
func (f ProductFilter) OffsetInRange() bool {
	_, ok := f.offset()
	return ok
}

func (f ProductFilter) offset() (int, bool) {
	if f.PageNumber < 1 || f.PageSize < 1 {
		return 0, true
	}
	if f.PageNumber-1 > math.MaxInt/f.PageSize {
		return 0, false
	}
	return (f.PageNumber - 1) * f.PageSize, true
}
