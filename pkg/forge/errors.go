package forge

import (
	"errors"
	"fmt"
	"net/http"
)

// Forge-specific errors.
var (
	ErrUnsupportedForge  = errors.New("unsupported forge")
	ErrInvalidBaseURL    = errors.New("invalid forge API URL")
	ErrInvalidState      = errors.New("invalid issue state, expected open, closed or all")
	ErrTransport         = errors.New("forge API request failed")
	ErrAPI               = errors.New("forge API returned an error")
	ErrMalformedResponse = errors.New("malformed forge API response")
)

// Status classes of API failures.
var (
	ErrUnauthorized = errors.New("unauthorized access to forge API")
	ErrForbidden    = errors.New("access to forge API forbidden")
	ErrNotFound     = errors.New("repository or resource not found")
	ErrValidation   = errors.New("request rejected by forge API")
)

// TransportError reports a request that never produced an HTTP response
// (DNS, TLS, connection or context failure).
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is matches ErrTransport.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// APIError is a response with an unexpected status code. Body is the raw
// response body.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("forge API returned %d: %s", e.StatusCode, e.Body)
}

// Is matches ErrAPI.
func (e *APIError) Is(target error) bool {
	return target == ErrAPI
}

// Unwrap returns the status class of the failure, if any.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrValidation
	}
	return nil
}

func newAPIError(statusCode int, body []byte) *APIError {
	return &APIError{StatusCode: statusCode, Body: string(body)}
}
