// Package xassert extends the testify assert package with additional test helpers.
package xassert

import (
	"errors"
	"math"
	"testing"

	"github.com/ErikKalkoken/go-set"
	"github.com/stretchr/testify/assert"
)

// EqualSet asserts that two sets are equal.
func EqualSet[T comparable](t *testing.T, want, got set.Set[T]) {
	t.Helper()
	assert.Truef(t, got.Equal(want), "Not equal:\nexpected: %s\nactual  : %s", want, got)
}

// Equal asserts that two objects are equal.
// This variant is type safe.
func Equal[T any](t *testing.T, want, got T) {
	t.Helper()
	assert.Equal(t, want, got)
}

// EqualFloat asserts that got is almost equal to want.
// The allowed difference is delta relative to the magnitude of want,
// but never less than delta.
func EqualFloat(t *testing.T, want, got, delta float64) bool {
	t.Helper()
	tolerance := delta * math.Max(1, math.Abs(want))
	return assert.InDeltaf(t, want, got, tolerance, "%v is not almost equal to %v (+/- %v)", got, want, tolerance)
}

// ErrorAs asserts that err contains an error of type T and returns it.
func ErrorAs[T error](t *testing.T, err error) (T, bool) {
	t.Helper()
	var target T
	ok := errors.As(err, &target)
	assert.Truef(t, ok, "%v is not of type %T", err, target)
	return target, ok
}
