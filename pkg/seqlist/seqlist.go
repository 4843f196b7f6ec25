// Package seqlist provides a sequential list with a fixed capacity.
//
// Positions are 1-based, as is customary for this data structure.
package seqlist

import (
	"cmp"
	"fmt"
)

// MaxSize is the capacity of a [SeqList].
const MaxSize = 50

// SeqList is a list backed by a fixed-size array.
// The zero value is an empty list ready to use.
type SeqList[T comparable] struct {
	data [MaxSize]T
	len  int
}

// New returns a new list containing items.
// Items beyond the capacity are ignored.
func New[T comparable](items ...T) *SeqList[T] {
	l := &SeqList[T]{}
	for _, v := range items {
		if !l.Insert(l.len+1, v) {
			break
		}
	}
	return l
}

// Len returns the number of elements.
func (l *SeqList[T]) Len() int {
	return l.len
}

// IsEmpty reports whether the list has no elements.
func (l *SeqList[T]) IsEmpty() bool {
	return l.len == 0
}

// IsFull reports whether the list has reached its capacity.
func (l *SeqList[T]) IsFull() bool {
	return l.len == MaxSize
}

// Insert inserts e at position i and moves all following elements back by one.
// Valid positions are 1 to Len()+1.
// It reports false when the position is invalid or the list is full.
func (l *SeqList[T]) Insert(i int, e T) bool {
	if i < 1 || i > l.len+1 || l.IsFull() {
		return false
	}
	copy(l.data[i:l.len+1], l.data[i-1:l.len])
	l.data[i-1] = e
	l.len++
	return true
}

// Delete removes the element at position i and returns it.
// It reports false when the position is invalid.
func (l *SeqList[T]) Delete(i int) (T, bool) {
	var zero T
	if i < 1 || i > l.len {
		return zero, false
	}
	v := l.data[i-1]
	copy(l.data[i-1:l.len-1], l.data[i:l.len])
	l.len--
	l.data[l.len] = zero
	return v, true
}

// Get returns the element at position i.
// It reports false when the position is invalid.
func (l *SeqList[T]) Get(i int) (T, bool) {
	if i < 1 || i > l.len {
		var zero T
		return zero, false
	}
	return l.data[i-1], true
}

// Locate returns the position of the first element equal to e
// or 0 when there is no such element.
func (l *SeqList[T]) Locate(e T) int {
	for i, v := range l.data[:l.len] {
		if v == e {
			return i + 1
		}
	}
	return 0
}

// Values returns a copy of all elements in order.
func (l *SeqList[T]) Values() []T {
	s := make([]T, l.len)
	copy(s, l.data[:l.len])
	return s
}

func (l *SeqList[T]) String() string {
	return fmt.Sprint(l.data[:l.len])
}

// RemoveMin removes the first smallest element from s
// by overwriting it with the last element and returns the shortened slice.
// The order of the remaining elements is not preserved.
func RemoveMin[S ~[]E, E cmp.Ordered](s S) S {
	if len(s) == 0 {
		return s
	}
	m := 0
	for i := 1; i < len(s); i++ {
		if s[i] < s[m] {
			m = i
		}
	}
	last := len(s) - 1
	s[m] = s[last]
	var zero E
	s[last] = zero
	return s[:last]
}
