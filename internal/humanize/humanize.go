// Package humanize transforms calculation results into user friendly representations.
package humanize

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/ErikKalkoken/exprcalc/pkg/baseconv"
)

// compactPrecision is the number of decimals of compact results when no precision is set.
const compactPrecision = 2

// Options control how a result is rendered.
type Options struct {
	Compact            bool // e.g. 1234 becomes 1.23 K; smaller values are not shortened
	Precision          int  // maximum number of decimals; 0 for the default of 6
	ThousandsSeparator bool
}

// Result returns a humanized result without trailing zeros, e.g. 2.50 becomes 2.5.
func Result(v float64, o Options) string {
	switch {
	case math.IsInf(v, 0) || math.IsNaN(v):
		return fmt.Sprint(v)
	case o.Compact && math.Abs(v) >= 1000:
		d := compactPrecision
		if o.Precision > 0 {
			d = min(o.Precision, 3)
		}
		return Compact(v, d)
	case o.ThousandsSeparator && o.Precision > 0:
		return humanize.CommafWithDigits(v, o.Precision)
	case o.ThousandsSeparator:
		return humanize.Commaf(v)
	case o.Precision > 0:
		return humanize.FtoaWithDigits(v, o.Precision)
	}
	return humanize.Ftoa(v)
}

// Compact returns a shortened number with a unit suffix, e.g. 1234 becomes 1.23 K.
// Decimals must be between 0 and 3.
func Compact(value float64, decimals int) string {
	var s int
	var a string
	v2 := math.Abs(value)
	switch {
	case v2 >= 1_000_000_000_000:
		s = 12
		a = " T"
	case v2 >= 1_000_000_000:
		s = 9
		a = " B"
	case v2 >= 1_000_000:
		s = 6
		a = " M"
	case v2 >= 1_000:
		s = 3
		a = " K"
	}
	if decimals < 0 || decimals > 3 {
		panic(fmt.Sprintf("Undefined decimals: %d", decimals))
	}
	return fmt.Sprintf("%.*f%s", decimals, value/math.Pow10(s), a)
}

// InBase returns the representation of an integral value in another base.
// It reports false when v has a fractional part or does not fit into an int64.
func InBase(v float64, base int) (string, bool) {
	if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
		return "", false
	}
	s, err := baseconv.ToBase(int64(v), base)
	if err != nil {
		return "", false
	}
	return s, true
}
