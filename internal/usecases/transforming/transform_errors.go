package transforming

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn means the source header lacks a column the target
	// schema requires, so the renaming and coercion rules cannot apply.
	ErrMissingColumn = errors.New("source is missing a required column")

	// ErrEmptyHeader means the extracted table carried no usable header
	ErrEmptyHeader = errors.New("source header is empty")
)

// MissingColumnError wraps ErrMissingColumn with the sanitized column name
func MissingColumnError(column string) error {
	return fmt.Errorf("%w: %s", ErrMissingColumn, column)
}
