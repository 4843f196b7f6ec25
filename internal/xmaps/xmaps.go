// Package xmaps provides an extension to the maps package.
package xmaps

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// OrderedMap is a map which is iterated in the order of its keys.
type OrderedMap[K cmp.Ordered, V any] map[K]V

// Keys returns the keys of m in ascending order.
func (o OrderedMap[K, V]) Keys() []K {
	return slices.Sorted(maps.Keys(o))
}

// All returns an iterator over key-value pairs from m in ascending order of the keys.
func (o OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(k K, v V) bool) {
		for _, key := range o.Keys() {
			if !yield(key, o[key]) {
				return
			}
		}
	}
}
