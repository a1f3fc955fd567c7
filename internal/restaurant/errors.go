package restaurant

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork marks a request that was rejected by the transport or
	// answered with a non-2xx status.
	ErrNetwork = errors.New("network failure")

	// ErrParse marks a response body that does not have the expected shape.
	ErrParse = errors.New("parse failure")
)

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
}

// Unwrap lets errors.Is(err, ErrNetwork) match status failures.
func (e *StatusError) Unwrap() error { return ErrNetwork }
