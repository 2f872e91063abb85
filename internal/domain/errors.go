package domain

import "errors"

var (
	// Transport and backend errors
	ErrNetwork  = errors.New("backend unreachable")
	ErrAuth     = errors.New("access denied or session expired")
	ErrNotFound = errors.New("resource not found")
	ErrServer   = errors.New("backend server error")

	// Client-side errors
	ErrValidation      = errors.New("validation failed")
	ErrUnauthenticated = errors.New("not signed in")
	ErrCancelled       = errors.New("action cancelled")

	// Validation details, always wrapped in ErrValidation
	ErrRequiredField    = errors.New("field is required")
	ErrNotANumber       = errors.New("field must be a number")
	ErrNotABool         = errors.New("field must be true or false")
	ErrFieldTooLong     = errors.New("field exceeds maximum length")
	ErrUnknownField     = errors.New("unknown field")
	ErrInvalidPage      = errors.New("page must not be negative")
	ErrInvalidPageSize  = errors.New("page size must be positive")
	ErrInvalidKind      = errors.New("invalid option kind")
	ErrEmptyCredentials = errors.New("username and password are required")
)

// FieldError is a client-side validation failure for one form field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

// Unwrap exposes both the detail and ErrValidation to errors.Is.
func (e *FieldError) Unwrap() []error {
	return []error{ErrValidation, e.Err}
}
