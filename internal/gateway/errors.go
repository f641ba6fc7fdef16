// Package gateway implements the REST client for the intent analytics service.
package gateway

import (
	"errors"
	"fmt"
)

// InputError reports a missing required identifier. It fails fast, before any
// request is attempted.
type InputError struct {
	Field string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("enter a %s first", e.Field)
}

// NewInputError returns an InputError for the named field.
func NewInputError(field string) error {
	return &InputError{Field: field}
}

// TransportError reports a request that could not complete at all.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServiceError reports a non-2xx response. The message is the raw response
// body, which the service uses as its error text.
type ServiceError struct {
	Status int
	Body   string
}

func (e *ServiceError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return e.Body
}

// DecodeError reports a well-formed response whose payload did not match the
// expected shape. It is kept distinct from ServiceError so malformed data is
// never mistaken for a backend-reported failure.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode response from %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// AsServiceError unwraps err into a ServiceError when possible.
func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a ServiceError with a 404 status.
func IsNotFound(err error) bool {
	svcErr, ok := AsServiceError(err)
	return ok && svcErr.Status == 404
}
