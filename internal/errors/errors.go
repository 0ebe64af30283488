// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrSourceUnavailable = errors.New("data source unavailable")
	ErrFetchFailed       = errors.New("fetch failed")
	ErrRateLimited       = errors.New("rate limited")
	ErrTimeout           = errors.New("operation timed out")
	ErrConfigInvalid     = errors.New("invalid configuration")
	ErrDataNotFound      = errors.New("data not found")
	ErrNoAPIKey          = errors.New("missing API key")
	ErrNoSheetID         = errors.New("missing spreadsheet id")
	ErrEmptyDataset      = errors.New("dataset is empty")
	ErrInvalidRange      = errors.New("invalid date range")
	ErrInputValidation   = errors.New("input validation failed")
)

// FetchError represents a failure retrieving a record set from a data source.
type FetchError struct {
	Source     string
	Resource   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch error [%s] %s: HTTP %d: %v", e.Source, e.Resource, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch error [%s] %s: %v", e.Source, e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a new FetchError.
func NewFetchError(source, resource string, statusCode int, err error) *FetchError {
	return &FetchError{
		Source:     source,
		Resource:   resource,
		StatusCode: statusCode,
		Err:        err,
	}
}

// ValidationError represents a validation error.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
