package querycache

import "errors"

var (
	// ErrEmptyKey is returned when a query is made with a zero-length key.
	ErrEmptyKey = errors.New("querycache: empty key")

	// ErrDecode is returned when a cached payload cannot be decoded into the requested type.
	ErrDecode = errors.New("querycache: failed to decode cached payload")

	// ErrEncode is returned when a fetched value cannot be encoded for storage.
	ErrEncode = errors.New("querycache: failed to encode payload")
)
