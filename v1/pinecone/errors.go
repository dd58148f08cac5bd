package pinecone

import (
	"errors"
	"fmt"
)

// Common client errors. These all represent programmer/input mistakes and are
// returned before any network activity; remote rejections surface through
// Result instead.
var (
	// ErrMissingAPIKey is returned when no API key is configured.
	ErrMissingAPIKey = errors.New("pinecone: missing API key")

	// ErrMissingEnvironment is returned when a legacy operation needs the
	// environment string and none is configured.
	ErrMissingEnvironment = errors.New("pinecone: missing environment")

	// ErrNilRequest is returned when a required request struct is nil.
	ErrNilRequest = errors.New("pinecone: request must not be nil")
)

// ValidationError describes a parameter that failed a pre-flight constraint.
// It is returned by façade operations before any request is issued.
type ValidationError struct {
	// Field is the logical name of the offending parameter.
	Field string

	// Constraint describes the violated rule, e.g. "must be a positive integer".
	Constraint string

	// Value is the rejected value.
	Value interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("pinecone: invalid %s: %s (got %v)", e.Field, e.Constraint, e.Value)
}

// IsValidationError checks whether err is a parameter validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// APIError describes a non-2xx response from the Pinecone API. It is carried
// on the failure Result (see Result.AsError) and passed to the observer and
// the warning log; it is never returned from a façade operation directly.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("pinecone: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("pinecone: HTTP %d: %s", e.StatusCode, e.Message)
}

// IsAPIError checks whether err represents an HTTP-level rejection.
func IsAPIError(err error) bool {
	var ae *APIError
	return errors.As(err, &ae)
}
