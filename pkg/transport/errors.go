package transport

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrEncodeBody is returned when a request body cannot be encoded as JSON.
	ErrEncodeBody = errors.New("transport: failed to encode request body")

	// ErrDecodeResponse is returned when a response body is not the expected JSON.
	ErrDecodeResponse = errors.New("transport: failed to decode response body")

	// ErrNoBaseURL is returned when neither a backend origin is configured nor
	// the current page has one.
	ErrNoBaseURL = errors.New("transport: backend origin is unknown")
)

// HTTPError is returned for responses with a status code of 400 or above.
type HTTPError struct {
	StatusCode int
	// Body is the response text, or the status text when the body was empty.
	Body string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Body)
}

// NetworkError is returned when no response was received.
type NetworkError struct {
	Method string
	// URL has session parameters redacted.
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("transport: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

// IsUnauthorized reports whether err is an HTTP 401 response.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsNetworkError reports whether err is a transport-level failure.
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}
