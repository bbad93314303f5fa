package leakradar

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/leakradar/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingToken is returned when no bearer token is provided.
	ErrMissingToken = errors.New("bearer token is required")

	// ErrClientClosed is returned when operations are attempted on a closed client.
	ErrClientClosed = errors.New("client has been closed")

	// ErrBadRequest is returned when the remote rejects the request as invalid.
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized is returned when the bearer token is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired bearer token")

	// ErrForbidden is returned when the account lacks permission for a resource.
	ErrForbidden = errors.New("access forbidden")

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation is returned when request parameters fail remote validation.
	ErrValidation = errors.New("parameter validation failed")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// LeakRadarError is implemented by all SDK errors.
type LeakRadarError interface {
	error
	LeakRadarError() // marker method
}

// APIError represents an HTTP error from the LeakRadar API. It is the base
// of the error hierarchy: status codes with a dedicated meaning are raised
// as one of the typed errors below, every other non-2xx status as a bare
// *APIError.
type APIError struct {
	// StatusCode is the HTTP status of the failed response.
	StatusCode int
	// Detail is the human-readable message from the response's "detail"
	// field, or the raw body text when the body is not JSON.
	Detail string
	// Body is the decoded JSON error body, if the response had one.
	Body map[string]any
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// LeakRadarError implements the LeakRadarError interface.
func (e *APIError) LeakRadarError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return target == ErrBadRequest
	case http.StatusUnauthorized:
		return target == ErrUnauthorized
	case http.StatusForbidden:
		return target == ErrForbidden
	case http.StatusNotFound:
		return target == ErrNotFound
	case http.StatusUnprocessableEntity:
		return target == ErrValidation
	case http.StatusTooManyRequests:
		return target == ErrRateLimited
	}
	return false
}

// BadRequestError is raised for HTTP 400 responses.
type BadRequestError struct{ APIError }

// Unwrap returns the base *APIError.
func (e *BadRequestError) Unwrap() error { return &e.APIError }

// UnauthorizedError is raised for HTTP 401 responses.
type UnauthorizedError struct{ APIError }

// Unwrap returns the base *APIError.
func (e *UnauthorizedError) Unwrap() error { return &e.APIError }

// ForbiddenError is raised for HTTP 403 responses.
type ForbiddenError struct{ APIError }

// Unwrap returns the base *APIError.
func (e *ForbiddenError) Unwrap() error { return &e.APIError }

// NotFoundError is raised for HTTP 404 responses.
type NotFoundError struct{ APIError }

// Unwrap returns the base *APIError.
func (e *NotFoundError) Unwrap() error { return &e.APIError }

// ValidationError is raised for HTTP 422 responses.
type ValidationError struct{ APIError }

// Unwrap returns the base *APIError.
func (e *ValidationError) Unwrap() error { return &e.APIError }

// TooManyRequestsError is raised for HTTP 429 responses.
type TooManyRequestsError struct{ APIError }

// Unwrap returns the base *APIError.
func (e *TooManyRequestsError) Unwrap() error { return &e.APIError }

// newStatusError maps an HTTP status code to its typed error. The mapping
// is an external contract and must not change.
func newStatusError(statusCode int, detail string, body map[string]any) error {
	base := APIError{StatusCode: statusCode, Detail: detail, Body: body}
	switch statusCode {
	case http.StatusBadRequest:
		return &BadRequestError{base}
	case http.StatusUnauthorized:
		return &UnauthorizedError{base}
	case http.StatusForbidden:
		return &ForbiddenError{base}
	case http.StatusNotFound:
		return &NotFoundError{base}
	case http.StatusUnprocessableEntity:
		return &ValidationError{base}
	case http.StatusTooManyRequests:
		return &TooManyRequestsError{base}
	default:
		return &base
	}
}

// wrapError converts internal transport errors to public errors. Errors
// that are not HTTP-level API errors (DNS failures, refused connections,
// timeouts) pass through untouched.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return newStatusError(apiErr.StatusCode, apiErr.Detail, apiErr.Body)
	}

	return err
}
