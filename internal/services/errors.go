package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"booking-backend/internal/repository"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrEmptySearchTerm is returned by searches given a blank term.
var ErrEmptySearchTerm = errors.New("empty search term provided")

// FieldError names one invalid form field.
type FieldError struct {
	Field   string `json:"field" example:"name"`
	Message string `json:"message" example:"cannot be blank"`
}

// ValidationError lists every invalid field of a submitted form.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether field is among the invalid ones.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// StorageError wraps a failure of the underlying store. The transaction it
// happened in has already been rolled back.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// wrapStorage passes nil and not-found through and wraps everything else.
func wrapStorage(op string, err error) error {
	if err == nil || errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

// newValidationError flattens ozzo errors into fields listed in order, with
// any field missing from order appended alphabetically.
func newValidationError(errs validation.Errors, order []string) error {
	if len(errs) == 0 {
		return nil
	}

	ve := &ValidationError{}
	seen := make(map[string]bool, len(errs))
	for _, field := range order {
		if err, ok := errs[field]; ok && err != nil {
			ve.Fields = append(ve.Fields, FieldError{Field: field, Message: err.Error()})
			seen[field] = true
		}
	}

	rest := make([]string, 0)
	for field, err := range errs {
		if !seen[field] && err != nil {
			rest = append(rest, field)
		}
	}
	sort.Strings(rest)
	for _, field := range rest {
		ve.Fields = append(ve.Fields, FieldError{Field: field, Message: errs[field].Error()})
	}

	if len(ve.Fields) == 0 {
		return nil
	}
	return ve
}
