package config

import "fmt"

// Field error kind constants
const (
	ErrKindMissingField = "MISSING_FIELD"
	ErrKindInvalidType  = "INVALID_TYPE"
	ErrKindInvalidValue = "INVALID_VALUE"
)

// FieldError reports a single invalid field in a model record. Kind
// distinguishes absent fields from wrongly-typed and out-of-range ones
// so callers can react without parsing the message.
type FieldError struct {
	Record string // model id, or a positional label when the id is unusable
	Field  string // field name as spelled in the config file
	Kind   string
	Want   string // expected type or value constraint
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if e.Kind == ErrKindMissingField {
		return fmt.Sprintf("[%s] model record %s: required field %q is missing", e.Kind, e.Record, e.Field)
	}
	return fmt.Sprintf("[%s] model record %s: field %q must be %s", e.Kind, e.Record, e.Field, e.Want)
}

// NewFieldError creates a new field validation error.
func NewFieldError(record, field, kind, want string) *FieldError {
	return &FieldError{
		Record: record,
		Field:  field,
		Kind:   kind,
		Want:   want,
	}
}

// ErrMissingField reports a required field absent from a record.
func ErrMissingField(record, field string) *FieldError {
	return NewFieldError(record, field, ErrKindMissingField, "")
}

// ErrInvalidType reports a field present with the wrong JSON type.
func ErrInvalidType(record, field, want string) *FieldError {
	return NewFieldError(record, field, ErrKindInvalidType, want)
}

// ErrInvalidValue reports a well-typed field outside its allowed range.
func ErrInvalidValue(record, field, constraint string) *FieldError {
	return NewFieldError(record, field, ErrKindInvalidValue, constraint)
}
