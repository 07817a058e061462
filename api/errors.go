package api

import (
	"errors"
	"fmt"
)

// HTTPError is a non-2xx answer from either upstream host.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http status %d %s", e.StatusCode, e.Status)
}

// NetworkError means no response was received.
type NetworkError struct {
	Method string
	Route  string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Route, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IsTransport reports whether err came from the HTTP exchange rather than the caller.
func IsTransport(err error) bool {
	var httpErr *HTTPError
	var netErr *NetworkError
	return errors.As(err, &httpErr) || errors.As(err, &netErr) || errors.Is(err, ErrInvalidEnvelope)
}
