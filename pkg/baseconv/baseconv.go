// Package baseconv converts integers into other numeral bases.
package baseconv

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/ErikKalkoken/exprcalc/pkg/stack"
)

const digits = "0123456789ABCDEF"

var ErrInvalidBase = errors.New("invalid base")

// ToBase returns the representation of n in the given base.
// Supported bases are 2 to 16. Negative numbers have a leading minus.
//
// The digits are computed by repeated division and reversed with a stack.
func ToBase[T constraints.Integer](n T, base int) (string, error) {
	if base < 2 || base > len(digits) {
		return "", fmt.Errorf("%w: %d", ErrInvalidBase, base)
	}
	if n == 0 {
		return "0", nil
	}
	var u uint64
	negative := n < 0
	if negative {
		u = uint64(-(n + 1)) + 1 // avoids overflow for the smallest value
	} else {
		u = uint64(n)
	}
	var s stack.Stack[byte]
	b := uint64(base)
	for u > 0 {
		s.Push(digits[u%b])
		u /= b
	}
	var sb strings.Builder
	if negative {
		sb.WriteByte('-')
	}
	for !s.IsEmpty() {
		d, _ := s.Pop()
		sb.WriteByte(d)
	}
	return sb.String(), nil
}

// ToBinary returns the binary representation of n.
func ToBinary[T constraints.Integer](n T) string {
	s, _ := ToBase(n, 2)
	return s
}

// ToHex returns the hexadecimal representation of n with upper case digits.
func ToHex[T constraints.Integer](n T) string {
	s, _ := ToBase(n, 16)
	return s
}
