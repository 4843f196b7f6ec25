// Package xsync extends the standard sync package.
package xsync

import (
	"sync"
)

// Map is a type-safe concurrent map.
type Map[K comparable, V any] struct {
	m sync.Map
}

// Load returns the value stored in the map for a key, or the zero value if no value is present.
// The ok result indicates whether value was found in the map.
func (m *Map[K, V]) Load(key K) (V, bool) {
	v, ok := m.m.Load(key)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

// Store sets the value for a key.
func (m *Map[K, V]) Store(key K, value V) {
	m.m.Store(key, value)
}

// Len returns the number of entries.
// The result is only a snapshot when the map is modified concurrently.
func (m *Map[K, V]) Len() int {
	var n int
	m.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
