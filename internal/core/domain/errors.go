package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMutuallyExclusive indicates both a continent and a subregion filter were given.
	ErrMutuallyExclusive = errors.New("continent and subregion filters are mutually exclusive")

	// ErrFetch indicates the country listing could not be retrieved or decoded.
	// Every *FetchError matches it with errors.Is.
	ErrFetch = errors.New("fetch countries")
)

// FetchError describes a failed retrieval of the country listing.
type FetchError struct {
	// Op is the step that failed: "request", "status" or "decode".
	Op string

	// Status is the HTTP status code, if a response was received.
	Status int

	// Err is the underlying cause.
	Err error
}

// Error implements error.
func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch countries: %s: status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("fetch countries: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is reports ErrFetch as a match so callers need not know the concrete type.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}
