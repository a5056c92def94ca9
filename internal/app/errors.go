package app

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

// FieldError describes one invalid input field.
type FieldError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// ValidationError carries every field error found in a request.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Description
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, description string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Description: description})
}

// err returns e when it holds at least one field error, nil otherwise.
func (e *ValidationError) err() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

func fieldError(field, description string) error {
	return &ValidationError{Errors: []FieldError{{Field: field, Description: description}}}
}

// IsClientError reports whether err was caused by the request: invalid
// input, a missing entity or a category still in use.
func IsClientError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr) ||
		errors.Is(err, repo.ErrCategoryInUse) ||
		errors.Is(err, repo.ErrProductNotFound) ||
		errors.Is(err, repo.ErrCategoryNotFound)
}
