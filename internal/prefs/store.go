// Package prefs holds the key/value preference store the panels read from and write to.
//
// Values are plain strings. Multi-value preferences (fg/bg color pairs, enabled
// column lists) use a comma-separated convention; see Tokenize.
package prefs

import "strings"

// Store is the preference store consumed by the UI panels.
// FetchOpt returns "" (or the registered default) for unset keys.
// SetOpt replaces the value; the most recent write wins. dirty marks the
// value for persistence on the next Save.
type Store interface {
	FetchOpt(key string) string
	SetOpt(key, value string, dirty bool)
}

// Tokenize splits a comma-separated preference value.
// An empty value yields no tokens; surrounding whitespace is trimmed from each token.
func Tokenize(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// MemStore is an in-memory Store, used by tests.
type MemStore struct {
	values map[string]string
	dirty  map[string]bool
}

// Ensure MemStore implements Store.
var _ Store = (*MemStore)(nil)

// NewMemStore creates a store seeded with values (may be nil).
func NewMemStore(values map[string]string) *MemStore {
	m := &MemStore{
		values: make(map[string]string, len(values)),
		dirty:  make(map[string]bool),
	}
	for k, v := range values {
		m.values[k] = v
	}
	return m
}

// FetchOpt implements Store.
func (m *MemStore) FetchOpt(key string) string {
	return m.values[key]
}

// SetOpt implements Store.
func (m *MemStore) SetOpt(key, value string, dirty bool) {
	m.values[key] = value
	if dirty {
		m.dirty[key] = true
	}
}

// IsDirty reports whether key was written with the dirty flag set.
func (m *MemStore) IsDirty(key string) bool {
	return m.dirty[key]
}
