package querycache

import (
	"encoding/json"
	"time"
)

// Entry is a cached query result.
type Entry struct {
	Key       Key
	Data      json.RawMessage
	UpdatedAt time.Time
	Stale     bool
}

// EventType describes a cache change.
type EventType string

const (
	EventUpdated     EventType = "updated"
	EventRemoved     EventType = "removed"
	EventInvalidated EventType = "invalidated"
	EventEvicted     EventType = "evicted"
)

// Event is delivered to subscribers after the cache changed.
type Event struct {
	Type EventType
	Key  Key
}
