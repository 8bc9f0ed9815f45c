// Package errors defines the stable error codes shared by the registries and
// the query facade, plus the classification used for CLI exit codes.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// DuplicateIdentifier indicates the identifier is already registered
	DuplicateIdentifier ErrorCode = "DUPLICATE_IDENTIFIER"
	// InvalidReference indicates a cross-reference to an unregistered identifier
	InvalidReference ErrorCode = "INVALID_REFERENCE"
	// InvalidField indicates an enum or numeric field outside its declared domain
	InvalidField ErrorCode = "INVALID_FIELD"
	// NotFound indicates a lookup miss
	NotFound ErrorCode = "NOT_FOUND"
	// RegistrationClosed indicates a registration attempt after the first query
	RegistrationClosed ErrorCode = "REGISTRATION_CLOSED"
)

// CatalogError carries the error code together with the offending identifier
// and field so registration failures are always attributable.
type CatalogError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	ID      string    `json:"id,omitempty"`
	Field   string    `json:"field,omitempty"`
	cause   error
}

// Error implements the error interface
func (e *CatalogError) Error() string {
	s := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.ID != "" {
		s += fmt.Sprintf(" (id=%s", e.ID)
		if e.Field != "" {
			s += fmt.Sprintf(", field=%s", e.Field)
		}
		s += ")"
	}
	if e.cause != nil {
		s += fmt.Sprintf(": %v", e.cause)
	}
	return s
}

// Unwrap returns the underlying error
func (e *CatalogError) Unwrap() error {
	return e.cause
}

// NewDuplicateIdentifier reports a second registration under the same id.
func NewDuplicateIdentifier(kind, id string) *CatalogError {
	return &CatalogError{
		Code:    DuplicateIdentifier,
		Message: fmt.Sprintf("%s already registered", kind),
		ID:      id,
	}
}

// NewInvalidReference reports a cross-reference to an id that is not
// registered (or a self-reference).
func NewInvalidReference(id, field, ref string) *CatalogError {
	return &CatalogError{
		Code:    InvalidReference,
		Message: fmt.Sprintf("reference %q does not resolve", ref),
		ID:      id,
		Field:   field,
	}
}

// NewInvalidField reports an out-of-domain enum or numeric value.
func NewInvalidField(id, field string, cause error) *CatalogError {
	return &CatalogError{
		Code:    InvalidField,
		Message: "field value outside its declared domain",
		ID:      id,
		Field:   field,
		cause:   cause,
	}
}

// NewNotFound reports a lookup miss.
func NewNotFound(kind, id string) *CatalogError {
	return &CatalogError{
		Code:    NotFound,
		Message: fmt.Sprintf("%s not found", kind),
		ID:      id,
	}
}

// NewRegistrationClosed reports a registration attempted after the first query.
func NewRegistrationClosed(kind string) *CatalogError {
	return &CatalogError{
		Code:    RegistrationClosed,
		Message: fmt.Sprintf("%s registry is closed to registration", kind),
	}
}

// CodeOf returns the error code carried by err, or "" when err is not a
// CatalogError.
func CodeOf(err error) ErrorCode {
	var ce *CatalogError
	if stderrors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// IsUserError reports whether err should map to CLI exit code 2: a lookup
// miss or a dangling reference supplied by the caller, as opposed to an
// internal failure.
func IsUserError(err error) bool {
	switch CodeOf(err) {
	case NotFound, InvalidReference:
		return true
	default:
		return false
	}
}
