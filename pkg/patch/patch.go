// Package patch assembles sparse column updates from request payloads.
//
// A zero submitted value (empty string, 0, empty slice) counts as omitted,
// never as an explicit clear. Enumerated fields are validated eagerly as
// they are collected, so the first invalid value fails the whole build
// before any later field is looked at.
package patch

import (
	"errors"
	"fmt"
)

// ErrNoFields is returned by Build when no updatable field was present in
// the payload.
var ErrNoFields = errors.New("no fields to update")

// FieldError reports a submitted value outside a field's allowed set.
type FieldError struct {
	Field string
	Value string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid value %q for field %s", e.Value, e.Field)
}

// Builder folds submitted values into a column set for a single row update.
type Builder struct {
	columns map[string]interface{}
	err     error
}

func NewBuilder() *Builder {
	return &Builder{columns: make(map[string]interface{})}
}

// String collects column when value is non-empty.
func (b *Builder) String(column, value string) *Builder {
	if b.err != nil {
		return b
	}
	if value != "" {
		b.columns[column] = value
	}
	return b
}

// Enum collects column when value is non-empty, checking it against the
// allowed set first. An invalid value stops the fold.
func (b *Builder) Enum(column, value string, allowed []string) *Builder {
	if b.err != nil || value == "" {
		return b
	}
	for _, a := range allowed {
		if value == a {
			b.columns[column] = value
			return b
		}
	}
	b.err = &FieldError{Field: column, Value: value}
	return b
}

// Float collects column when value is non-zero.
func (b *Builder) Float(column string, value float64) *Builder {
	if b.err != nil {
		return b
	}
	if value != 0 {
		b.columns[column] = value
	}
	return b
}

// Uint collects column when value is non-zero.
func (b *Builder) Uint(column string, value uint) *Builder {
	if b.err != nil {
		return b
	}
	if value != 0 {
		b.columns[column] = value
	}
	return b
}

// Bytes collects column when value is non-empty.
func (b *Builder) Bytes(column string, value []byte) *Builder {
	if b.err != nil {
		return b
	}
	if len(value) > 0 {
		b.columns[column] = value
	}
	return b
}

// Err reports a validation failure latched during the fold, if any.
func (b *Builder) Err() error {
	return b.err
}

// Build returns the assembled column set. It fails with the latched field
// error, or with ErrNoFields when the fold collected nothing.
func (b *Builder) Build() (map[string]interface{}, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.columns) == 0 {
		return nil, ErrNoFields
	}
	return b.columns, nil
}
