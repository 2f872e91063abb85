package restapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmehra2102/menudash/internal/domain"
)

// APIError is a failed backend call, classified into the domain taxonomy.
type APIError struct {
	Method  string
	Path    string
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d %s: %v", e.Method, e.Path, e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%s %s: %d: %v", e.Method, e.Path, e.Status, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// classify maps an HTTP status to a domain error
func classify(status int) error {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return domain.ErrAuth
	case status == http.StatusNotFound:
		return domain.ErrNotFound
	case status >= 500:
		return domain.ErrServer
	case status >= 400:
		return domain.ErrValidation
	default:
		return nil
	}
}

// StatusOf returns the HTTP status of a failed call, 0 for transport failures.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
