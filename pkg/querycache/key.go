package querycache

import "strings"

// Key identifies a cached query.
type Key []string

// HasPrefix reports whether k starts with every part of prefix.
// An empty prefix matches all keys.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i, part := range prefix {
		if k[i] != part {
			return false
		}
	}
	return true
}

func (k Key) String() string {
	return strings.Join(k, "/")
}

// id is the map key. Parts are separated by a byte that cannot appear in a
// shop domain or resource name.
func (k Key) id() string {
	return strings.Join(k, "\x00")
}

func keyFromID(id string) Key {
	return Key(strings.Split(id, "\x00"))
}
