// Package stack provides a generic LIFO stack.
package stack

import (
	"fmt"
	"slices"

	"github.com/ErikKalkoken/exprcalc/internal/xslices"
)

// Stack is a last-in-first-out container backed by a growable slice.
//
// The zero value is an empty stack ready to use.
// A Stack must not be copied after first use.
type Stack[T any] struct {
	items []T
}

// New returns a new stack with the given items pushed in order,
// i.e. the last item ends up on top.
func New[T any](items ...T) *Stack[T] {
	s := &Stack[T]{items: slices.Clone(items)}
	return s
}

// Push adds v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes the top element and returns it.
// It reports false when the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	return xslices.Pop(&s.items)
}

// Peek returns the top element without removing it.
// It reports false when the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	return xslices.Last(s.items)
}

// IsEmpty reports whether the stack has no elements.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Values returns a copy of all elements from bottom to top.
func (s *Stack[T]) Values() []T {
	return slices.Clone(s.items)
}

// String returns the elements from bottom to top.
func (s *Stack[T]) String() string {
	return fmt.Sprint(s.items)
}
