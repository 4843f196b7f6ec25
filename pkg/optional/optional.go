// Package optional provides type safe optional variables.
package optional

import (
	"errors"
	"fmt"
)

var ErrIsEmpty = errors.New("optional is empty")

// Optional represents a variable that may contain a value or not.
//
// The zero value of an Optional is an empty Optional.
type Optional[T any] struct {
	value     T
	isPresent bool
}

// New returns a new Optional with a value.
func New[T any](v T) Optional[T] {
	return Optional[T]{value: v, isPresent: true}
}

// FromResult returns an Optional with v when err is nil
// and an empty Optional otherwise.
func FromResult[T any](v T, err error) Optional[T] {
	if err != nil {
		return Optional[T]{}
	}
	return New(v)
}

// IsEmpty reports whether an Optional is empty.
func (o Optional[T]) IsEmpty() bool {
	return !o.isPresent
}

// String returns a string representation of an Optional.
func (o Optional[T]) String() string {
	if o.IsEmpty() {
		return "<empty>"
	}
	return fmt.Sprint(o.value)
}

// StringFunc returns the result of f applied to the value
// or fallback when the Optional is empty.
func (o Optional[T]) StringFunc(fallback string, f func(v T) string) string {
	if o.IsEmpty() {
		return fallback
	}
	return f(o.value)
}

// MustValue returns the value of an Optional or panics if it is empty.
func (o Optional[T]) MustValue() T {
	if o.IsEmpty() {
		panic(ErrIsEmpty)
	}
	return o.value
}

// Value returns the value of an Optional.
func (o Optional[T]) Value() (T, error) {
	if o.IsEmpty() {
		var z T
		return z, ErrIsEmpty
	}
	return o.value, nil
}

// ValueOrFallback returns the value of an Optional or a fallback if it is empty.
func (o Optional[T]) ValueOrFallback(fallback T) T {
	if o.IsEmpty() {
		return fallback
	}
	return o.value
}

// ValueOrZero returns the value of an Optional or its type's zero value if it is empty.
func (o Optional[T]) ValueOrZero() T {
	var z T
	return o.ValueOrFallback(z)
}
