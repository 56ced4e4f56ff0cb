// Package errors error kinds for detector construction.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation malformed or missing metadata fields.
	ErrValidation = fmt.Errorf("validation")
	// ErrGeometry dimensionally inconsistent geometry.
	ErrGeometry = fmt.Errorf("geometry")
	// ErrUnsupportedType unknown detector type tag.
	ErrUnsupportedType = fmt.Errorf("unsupportedtype")
	// ErrConfiguration unresolvable material or density parameters.
	ErrConfiguration = fmt.Errorf("configuration")
)

// FieldError carries an error kind together with the metadata field
// that caused it.
type FieldError struct {
	Kind    error
	Field   string
	Message string
}

// Error ...
func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("[%v] %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("[%v] %s: %s", e.Kind, e.Field, e.Message)
}

// Unwrap exposes the kind to errors.Is.
func (e *FieldError) Unwrap() error {
	return e.Kind
}

// Validation constructs an ErrValidation kind error for a field.
func Validation(field, message string, values ...interface{}) error {
	return &FieldError{Kind: ErrValidation, Field: field, Message: fmt.Sprintf(message, values...)}
}

// Geometry constructs an ErrGeometry kind error for a field.
func Geometry(field, message string, values ...interface{}) error {
	return &FieldError{Kind: ErrGeometry, Field: field, Message: fmt.Sprintf(message, values...)}
}

// UnsupportedType constructs an ErrUnsupportedType kind error.
func UnsupportedType(tag string) error {
	return &FieldError{Kind: ErrUnsupportedType, Field: "type", Message: fmt.Sprintf("unknown detector type %q", tag)}
}

// Configuration constructs an ErrConfiguration kind error.
func Configuration(message string, values ...interface{}) error {
	return &FieldError{Kind: ErrConfiguration, Message: fmt.Sprintf(message, values...)}
}

// Is reports whether err wraps the given kind.
func Is(err, kind error) bool {
	return errors.Is(err, kind)
}
