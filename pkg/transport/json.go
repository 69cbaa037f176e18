package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// OnUnauthorized selects how FetchJSON treats an HTTP 401 response.
type OnUnauthorized int

const (
	// ReturnError fails with *HTTPError.
	ReturnError OnUnauthorized = iota
	// ReturnNil resolves to a nil result and no error.
	ReturnNil
)

// DoJSON sends a request and decodes the JSON response into T.
func DoJSON[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var out T
	resp, err := c.Do(ctx, method, path, body)
	if err != nil {
		return out, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := decode(resp.Body, &out); err != nil {
		return out, err
	}
	return out, nil
}

// FetchJSON issues a GET request and decodes the response. With ReturnNil an
// HTTP 401 yields (nil, nil); every other failure is returned as is. A JSON
// null body also yields nil.
func FetchJSON[T any](ctx context.Context, c *Client, path string, on401 OnUnauthorized) (*T, error) {
	resp, err := c.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		if on401 == ReturnNil && IsUnauthorized(err) {
			return nil, nil
		}
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var out *T
	if err := decode(resp.Body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decode(r io.Reader, v any) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return errors.Join(ErrDecodeResponse, err)
	}
	return nil
}
