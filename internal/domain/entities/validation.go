package entities

import (
	"fmt"
	"strings"
)

// Validation codes attached to a ValidationError. Messages are localized by
// the transport layer from (field, code).
const (
	CodeRequired      = "required"
	CodeInvalidFormat = "invalid_format"
	CodeOutOfRange    = "out_of_range"
	CodeUnknownOption = "unknown_option"
)

// ValidationError reports one missing or malformed field. It blocks forward
// navigation in the wizard and is never fatal.
type ValidationError struct {
	Field string `json:"field"`
	Code  string `json:"code"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Code)
}

// ValidationErrors is an ordered set of field errors. A nil or empty value
// means the input is valid.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Error())
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Field returns the first error tagged to field, if any.
func (v ValidationErrors) Field(field string) (ValidationError, bool) {
	for _, e := range v {
		if e.Field == field {
			return e, true
		}
	}
	return ValidationError{}, false
}

// Err converts an empty set to a nil error.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func (v *ValidationErrors) add(field, code string) {
	*v = append(*v, ValidationError{Field: field, Code: code})
}
