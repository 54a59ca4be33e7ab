package fp

import (
	"math"
	"strconv"
)

// Interval is a closed range [Lo, Hi] of values a correctly rounded
// floating point operation may legally produce. Intervals are immutable
// after construction; deriving a new range always builds a new Interval.
type Interval struct {
	// Lo and Hi are the inclusive endpoints. Either may be infinite.
	Lo, Hi float64
}

// NewInterval constructs the closed interval [lo, hi].
// It panics when lo > hi or either endpoint is NaN.
func NewInterval(lo, hi float64) Interval {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		panic("fp: interval endpoint is NaN")
	}
	if lo > hi {
		panic("fp: interval endpoints are reversed: [" +
			strconv.FormatFloat(lo, 'g', -1, 64) + ", " +
			strconv.FormatFloat(hi, 'g', -1, 64) + "]")
	}
	return Interval{Lo: lo, Hi: hi}
}

// Point constructs the degenerate interval containing exactly x.
func Point(x float64) Interval {
	return NewInterval(x, x)
}

// Any returns the unbounded interval; it contains every value, NaN
// included, and expresses "any result is acceptable".
func Any() Interval {
	return Interval{Lo: math.Inf(-1), Hi: math.Inf(1)}
}

// Contains reports whether x lies within the interval. NaN is contained
// only by the unbounded interval (an operation whose result domain is
// unrestricted may legally produce NaN).
func (i Interval) Contains(x float64) bool {
	if math.IsNaN(x) {
		return math.IsInf(i.Lo, -1) && math.IsInf(i.Hi, 1)
	}
	return i.Lo <= x && x <= i.Hi
}

// IsPoint reports whether the interval holds a single value.
func (i Interval) IsPoint() bool {
	return i.Lo == i.Hi
}

// Span returns the smallest interval containing every given interval.
// It panics when called with no arguments.
func Span(intervals ...Interval) Interval {
	if len(intervals) == 0 {
		panic("fp: Span of no intervals")
	}
	out := intervals[0]
	for _, iv := range intervals[1:] {
		if iv.Lo < out.Lo {
			out.Lo = iv.Lo
		}
		if iv.Hi > out.Hi {
			out.Hi = iv.Hi
		}
	}
	return out
}

// String renders the interval for diagnostics.
func (i Interval) String() string {
	if i.IsPoint() {
		return "{" + strconv.FormatFloat(i.Lo, 'g', -1, 64) + "}"
	}
	return "[" + strconv.FormatFloat(i.Lo, 'g', -1, 64) + ", " +
		strconv.FormatFloat(i.Hi, 'g', -1, 64) + "]"
}
