package compare

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/texel/fp"
)

// Result is a comparison verdict. A mismatch is a value, not an error:
// expectation failures flow back to the caller's reporting while
// precondition violations panic.
type Result struct {
	// Matched reports whether the observed value satisfied the
	// expectation.
	Matched bool

	// Got and Expected are diagnostic renderings of the two sides.
	Got, Expected string
}

// Expectation judges observed values. Implementations are Exact,
// InInterval, IntervalVector, IntervalMatrix, and the AnyOf,
// SkipUndefined, and AlwaysPass combinators.
type Expectation interface {
	Compare(got Value) Result
}

// Compare judges got against the expectation. A nil expectation passes,
// as with SkipUndefined.
func Compare(got Value, e Expectation) Result {
	if e == nil {
		return Result{Matched: true, Got: got.String(), Expected: "<undefined>"}
	}
	return e.Compare(got)
}

// Exact expects a value equal to want. Float kinds of differing precision
// compare by numeric value alone; NaN matches NaN, and negative zero
// matches positive zero. Every other kind requires the exact same kind.
func Exact(want Value) Expectation { return exact{want} }

type exact struct {
	want Value
}

func (e exact) Compare(got Value) Result {
	res := Result{Got: got.String(), Expected: e.want.String()}
	switch want := e.want.(type) {
	case Scalar:
		g, ok := got.(Scalar)
		res.Matched = ok && scalarsEqual(g, want)
	case Vector:
		g, ok := got.(Vector)
		if !ok || g.Len() != want.Len() {
			return res
		}
		for i := 0; i < want.Len(); i++ {
			if !scalarsEqual(g.At(i), want.At(i)) {
				return res
			}
		}
		res.Matched = true
	case Matrix:
		g, ok := got.(Matrix)
		if !ok || g.Cols() != want.Cols() || g.Rows() != want.Rows() {
			return res
		}
		for c := 0; c < want.Cols(); c++ {
			for r := 0; r < want.Rows(); r++ {
				if !scalarsEqual(g.Col(c).At(r), want.Col(c).At(r)) {
					return res
				}
			}
		}
		res.Matched = true
	default:
		panic(fmt.Sprintf("compare: unhandled value %T", e.want))
	}
	return res
}

// scalarsEqual implements the exact-match rules: float kinds are
// interchangeable with each other, NaN equals NaN, and signed zeros are
// equal. Non-float kinds must agree exactly.
func scalarsEqual(got, want Scalar) bool {
	if got.kind != want.kind {
		if !got.kind.IsFloat() || !want.kind.IsFloat() {
			return false
		}
	}
	if math.IsNaN(got.v) && math.IsNaN(want.v) {
		return true
	}
	return got.v == want.v // +0 == -0 holds by IEEE comparison
}

// InInterval expects a float-kind scalar inside iv.
func InInterval(iv fp.Interval) Expectation { return inInterval{iv} }

type inInterval struct {
	iv fp.Interval
}

func (e inInterval) Compare(got Value) Result {
	res := Result{Got: got.String(), Expected: e.iv.String()}
	g, ok := got.(Scalar)
	res.Matched = ok && g.kind.IsFloat() && e.iv.Contains(g.v)
	return res
}

// IntervalVector expects a float-kind vector whose element i lies in
// ivs[i].
func IntervalVector(ivs []fp.Interval) Expectation {
	if len(ivs) < 2 || len(ivs) > 4 {
		panic(fmt.Sprintf("compare: interval vector has %d elements, want 2-4", len(ivs)))
	}
	return intervalVector{ivs}
}

type intervalVector struct {
	ivs []fp.Interval
}

func (e intervalVector) Compare(got Value) Result {
	parts := make([]string, len(e.ivs))
	for i, iv := range e.ivs {
		parts[i] = iv.String()
	}
	res := Result{Got: got.String(), Expected: "[" + strings.Join(parts, ", ") + "]"}
	g, ok := got.(Vector)
	if !ok || !g.Kind().IsFloat() || g.Len() != len(e.ivs) {
		return res
	}
	for i, iv := range e.ivs {
		if !iv.Contains(g.At(i).v) {
			return res
		}
	}
	res.Matched = true
	return res
}

// IntervalMatrix expects a float-kind matrix whose element (c, r) lies in
// ivs[c][r]. Columns must be 2-4 same-length rows of 2-4.
func IntervalMatrix(ivs [][]fp.Interval) Expectation {
	if len(ivs) < 2 || len(ivs) > 4 {
		panic(fmt.Sprintf("compare: interval matrix has %d columns, want 2-4", len(ivs)))
	}
	for _, col := range ivs {
		if len(col) != len(ivs[0]) {
			panic("compare: interval matrix columns differ in length")
		}
		if len(col) < 2 || len(col) > 4 {
			panic(fmt.Sprintf("compare: interval matrix column has %d rows, want 2-4", len(col)))
		}
	}
	return intervalMatrix{ivs}
}

type intervalMatrix struct {
	ivs [][]fp.Interval
}

func (e intervalMatrix) Compare(got Value) Result {
	cols := make([]string, len(e.ivs))
	for c, col := range e.ivs {
		parts := make([]string, len(col))
		for r, iv := range col {
			parts[r] = iv.String()
		}
		cols[c] = "[" + strings.Join(parts, ", ") + "]"
	}
	res := Result{Got: got.String(), Expected: "[" + strings.Join(cols, ", ") + "]"}
	g, ok := got.(Matrix)
	if !ok || !g.Kind().IsFloat() || g.Cols() != len(e.ivs) || g.Rows() != len(e.ivs[0]) {
		return res
	}
	for c, col := range e.ivs {
		for r, iv := range col {
			if !iv.Contains(g.Col(c).At(r).v) {
				return res
			}
		}
	}
	res.Matched = true
	return res
}

// AnyOf passes when any candidate matches. On failure the result carries
// every candidate's expectation for diagnostics.
func AnyOf(candidates ...Expectation) Expectation {
	if len(candidates) == 0 {
		panic("compare: AnyOf needs at least one candidate")
	}
	return anyOf{candidates}
}

type anyOf struct {
	candidates []Expectation
}

func (e anyOf) Compare(got Value) Result {
	expected := make([]string, 0, len(e.candidates))
	for _, c := range e.candidates {
		res := c.Compare(got)
		if res.Matched {
			return res
		}
		expected = append(expected, res.Expected)
	}
	return Result{
		Got:      got.String(),
		Expected: "any of [" + strings.Join(expected, ", ") + "]",
	}
}

// SkipUndefined treats a nil expectation as "anything passes" and
// otherwise defers to it.
func SkipUndefined(e Expectation) Expectation { return skipUndefined{e} }

type skipUndefined struct {
	inner Expectation
}

func (e skipUndefined) Compare(got Value) Result {
	if e.inner == nil {
		return Result{Matched: true, Got: got.String(), Expected: "<undefined>"}
	}
	return e.inner.Compare(got)
}

// AlwaysPass matches unconditionally; msg stands in for the expectation
// in diagnostics. Used when only "ran without failing" matters.
func AlwaysPass(msg string) Expectation { return alwaysPass{msg} }

type alwaysPass struct {
	msg string
}

func (e alwaysPass) Compare(got Value) Result {
	return Result{Matched: true, Got: got.String(), Expected: e.msg}
}
