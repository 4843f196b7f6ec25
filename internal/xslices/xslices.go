// Package xslices contains helper functions for slices.
package xslices

// Filter returns a new slice containing the elements where applied function f returned true.
func Filter[S ~[]E, E any](s S, f func(E) bool) []E {
	s2 := make([]E, 0)
	for _, v := range s {
		if f(v) {
			s2 = append(s2, v)
		}
	}
	return s2
}

// Map returns a new slice with the results of function f applied to each element.
func Map[S ~[]X, X any, Y any](s S, f func(X) Y) []Y {
	s2 := make([]Y, len(s))
	for i, v := range s {
		s2[i] = f(v)
	}
	return s2
}

// Last returns the last element of s.
// It reports false when s is empty.
func Last[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}
	return s[len(s)-1], true
}

// Pop removes the last element of the slice pointed to by s and returns it.
// It reports false when the slice is empty.
func Pop[S ~[]E, E any](s *S) (E, bool) {
	v, ok := Last(*s)
	if !ok {
		return v, false
	}
	var zero E
	(*s)[len(*s)-1] = zero // release reference for GC
	*s = (*s)[:len(*s)-1]
	return v, true
}
