package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrEmailExists = errors.New("email already registered")

// ValidationRootField is the field key used when a validation failure has no
// specific field path (e.g. an unparseable request body).
const ValidationRootField = "root"

// ValidationError carries one human-readable message per failing field.
// The first failure recorded for a field wins; later rules for the same
// field are not recorded.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// Add records a failure message for field unless one is already present.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, seen := e.Fields[field]; !seen {
		e.Fields[field] = message
	}
}
