package client

import (
	"fmt"
	"strings"
)

// ValidationError reports required fields that were blank. It is raised
// before any request is attempted, so a validation failure never costs a
// network round trip.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) == 0 {
		return "required fields are missing"
	}
	return "required fields are missing: " + strings.Join(e.Missing, ", ")
}

// NetworkError wraps a transport-level failure: the request could not be
// sent or completed at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError carries a non-2xx response. Message holds the server's own
// error text when the body contained one, so it can be shown verbatim.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

// DecodeError wraps a response body that could not be parsed as expected.
// Callers treat it like a NetworkError for user messaging.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
