package errors

import (
	"fmt"
	"strings"
)

// HTTPError is an error that already knows its HTTP status.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// ValidationError carries one message per field that failed schema checks.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields, "; "))
}

// NewValidationError returns nil when no field failed.
func NewValidationError(fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// FieldsError is an HTTPError whose payload is a list of field messages.
type FieldsError struct {
	Code   int
	Fields []string
}

func (e *FieldsError) Error() string {
	return strings.Join(e.Fields, "; ")
}

// NewFieldsError creates a FieldsError.
func NewFieldsError(code int, fields []string) *FieldsError {
	return &FieldsError{Code: code, Fields: fields}
}
