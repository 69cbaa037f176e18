package querycache

import (
	"context"
	"encoding/json"
	"errors"
)

// Query returns the value cached under key when the entry is fresh. Otherwise
// it calls fetch, stores the JSON encoding of the result and returns it.
// Errors from fetch are returned untouched and leave the cache unchanged.
func Query[T any](ctx context.Context, c *Cache, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if len(key) == 0 {
		return zero, ErrEmptyKey
	}

	if entry, ok := c.Get(key); ok && !entry.Stale {
		var v T
		if err := json.Unmarshal(entry.Data, &v); err == nil {
			return v, nil
		}
		// An undecodable entry is treated as a miss and overwritten below.
	}

	v, err := fetch(ctx)
	if err != nil {
		return zero, err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return zero, errors.Join(ErrEncode, err)
	}
	c.Set(key, data)
	return v, nil
}

// Decode unmarshals the entry stored under key into T.
// It reports false when no entry exists.
func Decode[T any](c *Cache, key Key) (T, bool, error) {
	var v T
	entry, ok := c.Get(key)
	if !ok {
		return v, false, nil
	}
	if err := json.Unmarshal(entry.Data, &v); err != nil {
		return v, true, errors.Join(ErrDecode, err)
	}
	return v, true, nil
}
