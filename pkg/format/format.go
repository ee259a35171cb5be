// Package format renders float64 results as display strings: grouped
// thousands for integer values, magnitude-tiered precision otherwise,
// and an English spelled-out form for integer results.
package format

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// integerLimit is the magnitude above which a float64 can no longer
// represent every integer exactly; beyond it the tiered formatting
// takes over rather than pretending to integer precision.
const integerLimit = 1e15

// Number formats a value for display. Integer values (within float
// precision) below 1e15 get grouped thousands and no decimals; other
// values get a precision tier chosen by magnitude.
func Number(n float64) string {
	if IsInteger(n) && math.Abs(n) < integerLimit {
		return humanize.Comma(int64(math.Round(n)))
	}

	abs := math.Abs(n)
	switch {
	case abs >= 1000:
		return humanize.CommafWithDigits(n, 2)
	case abs >= 1:
		return strconv.FormatFloat(n, 'f', 6, 64)
	case abs >= 0.001:
		return strconv.FormatFloat(n, 'f', 8, 64)
	default:
		return strconv.FormatFloat(n, 'e', 4, 64)
	}
}

// WithDecimals formats a value with a fixed decimal count, grouping
// thousands, except that integer values keep the no-decimals integer
// form.
func WithDecimals(n float64, decimals int) string {
	if IsInteger(n) && math.Abs(n) < integerLimit {
		return humanize.Comma(int64(math.Round(n)))
	}
	return humanize.CommafWithDigits(n, decimals)
}

// IsInteger reports whether n is an integer within float64 tolerance.
func IsInteger(n float64) bool {
	return n == math.Trunc(n) || math.Abs(n-math.Round(n)) < 1e-9*math.Max(1, math.Abs(n))
}
