package repo

import (
	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrProductNotFound is returned when an update targets a missing product.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when an update targets a missing category.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCategoryInUse is returned when deleting a category that products still reference.
	ErrCategoryInUse = errors.New("category is referenced by products")
	// ErrUnknownCategory is returned when a product references a category that does not exist.
	ErrUnknownCategory = errors.New("product references an unknown category")
)

const pgForeignKeyViolation = "23503"

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
