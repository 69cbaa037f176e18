package navigation

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
)

// Memory is an in-memory Location. Assign moves the current URL to the target,
// the way a browser does, and appends it to the history.
type Memory struct {
	mu      sync.RWMutex
	current *url.URL
	history []string
}

// NewMemory creates a Memory location positioned at rawURL.
// An unparsable rawURL yields an empty URL rather than an error.
func NewMemory(rawURL string) *Memory {
	m := &Memory{}
	_ = m.SetURL(rawURL)
	return m
}

// URL returns a copy of the current URL.
func (m *Memory) URL() *url.URL {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneURL(m.current)
}

// SetURL replaces the current URL without recording a navigation.
func (m *Memory) SetURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		m.mu.Lock()
		m.current = &url.URL{}
		m.mu.Unlock()
		return fmt.Errorf("%w: %w", ErrInvalidTarget, err)
	}

	m.mu.Lock()
	m.current = u
	m.mu.Unlock()
	return nil
}

// Assign records target and makes it the current URL.
// Relative targets are resolved against the current URL.
func (m *Memory) Assign(ctx context.Context, target string) error {
	if strings.TrimSpace(target) == "" {
		return ErrInvalidTarget
	}
	ref, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTarget, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		ref = m.current.ResolveReference(ref)
	}
	m.current = ref
	m.history = append(m.history, ref.String())
	return nil
}

// History returns every navigation target in the order they were assigned.
func (m *Memory) History() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.history))
	copy(out, m.history)
	return out
}

// Last returns the most recent navigation target, if any.
func (m *Memory) Last() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.history) == 0 {
		return "", false
	}
	return m.history[len(m.history)-1], true
}
