// Package compare turns decoded numeric values into match verdicts
// against expected scalars, vectors, matrices, or floating-point
// intervals.
package compare

import (
	"fmt"
	"strings"
)

// ScalarKind identifies the numeric type of a scalar value.
type ScalarKind uint8

// Scalar kinds.
const (
	KindAbstractFloat ScalarKind = iota
	KindF64
	KindF32
	KindF16
	KindU32
	KindU16
	KindU8
	KindI32
	KindI16
	KindI8
	KindBool
)

// String returns the WGSL-style name of the kind.
func (k ScalarKind) String() string {
	switch k {
	case KindAbstractFloat:
		return "abstract-float"
	case KindF64:
		return "f64"
	case KindF32:
		return "f32"
	case KindF16:
		return "f16"
	case KindU32:
		return "u32"
	case KindU16:
		return "u16"
	case KindU8:
		return "u8"
	case KindI32:
		return "i32"
	case KindI16:
		return "i16"
	case KindI8:
		return "i8"
	case KindBool:
		return "bool"
	}
	return "ScalarKind(?)"
}

// IsFloat reports whether the kind is float-flavored. Float kinds of
// differing precision are interchangeable for comparison.
func (k ScalarKind) IsFloat() bool {
	switch k {
	case KindAbstractFloat, KindF64, KindF32, KindF16:
		return true
	}
	return false
}

// Value is a scalar, vector, or matrix carried through a comparison.
type Value interface {
	// Kind returns the scalar kind shared by every element.
	Kind() ScalarKind

	// String renders the value for diagnostics.
	String() string
}

// Scalar is a single typed numeric value. The zero Scalar is a false bool.
type Scalar struct {
	kind ScalarKind
	v    float64
}

// Scalar constructors mirror the WGSL value types.

func AbstractFloat(v float64) Scalar { return Scalar{KindAbstractFloat, v} }
func F64(v float64) Scalar { return Scalar{KindF64, v} }
func F32(v float32) Scalar { return Scalar{KindF32, float64(v)} }
func F16(v float32) Scalar { return Scalar{KindF16, float64(v)} }
func U32(v uint32) Scalar  { return Scalar{KindU32, float64(v)} }
func U16(v uint16) Scalar  { return Scalar{KindU16, float64(v)} }
func U8(v uint8) Scalar    { return Scalar{KindU8, float64(v)} }
func I32(v int32) Scalar   { return Scalar{KindI32, float64(v)} }
func I16(v int16) Scalar   { return Scalar{KindI16, float64(v)} }
func I8(v int8) Scalar     { return Scalar{KindI8, float64(v)} }

// Bool wraps a boolean scalar.
func Bool(v bool) Scalar {
	if v {
		return Scalar{KindBool, 1}
	}
	return Scalar{KindBool, 0}
}

// Kind returns the scalar's kind.
func (s Scalar) Kind() ScalarKind { return s.kind }

// Float returns the scalar's numeric value widened to float64.
func (s Scalar) Float() float64 { return s.v }

// String renders the scalar as kind(value).
func (s Scalar) String() string {
	if s.kind == KindBool {
		return fmt.Sprintf("bool(%v)", s.v != 0)
	}
	return fmt.Sprintf("%s(%v)", s.kind, s.v)
}

// Vector is 2 to 4 scalars of one shared kind.
type Vector struct {
	elems []Scalar
}

// Vec builds a vector. Element counts outside 2-4 and mixed scalar kinds
// panic.
func Vec(elems ...Scalar) Vector {
	if len(elems) < 2 || len(elems) > 4 {
		panic(fmt.Sprintf("compare: vector has %d elements, want 2-4", len(elems)))
	}
	for _, e := range elems[1:] {
		if e.kind != elems[0].kind {
			panic(fmt.Sprintf("compare: vector mixes %s and %s elements", elems[0].kind, e.kind))
		}
	}
	out := make([]Scalar, len(elems))
	copy(out, elems)
	return Vector{elems: out}
}

// Kind returns the kind shared by the vector's elements.
func (v Vector) Kind() ScalarKind { return v.elems[0].kind }

// Len returns the element count.
func (v Vector) Len() int { return len(v.elems) }

// At returns element i.
func (v Vector) At(i int) Scalar { return v.elems[i] }

// String renders the vector as vecN<kind>(...).
func (v Vector) String() string {
	parts := make([]string, len(v.elems))
	for i, e := range v.elems {
		parts[i] = fmt.Sprint(e.v)
	}
	return fmt.Sprintf("vec%d<%s>(%s)", len(v.elems), v.Kind(), strings.Join(parts, ", "))
}

// Matrix is 2 to 4 columns of 2 to 4 scalars each, all of one shared
// float kind.
type Matrix struct {
	cols []Vector
}

// Mat builds a matrix from its columns. Column counts outside 2-4, ragged
// columns, and mixed scalar kinds panic.
func Mat(cols ...Vector) Matrix {
	if len(cols) < 2 || len(cols) > 4 {
		panic(fmt.Sprintf("compare: matrix has %d columns, want 2-4", len(cols)))
	}
	for _, c := range cols[1:] {
		if c.Kind() != cols[0].Kind() {
			panic(fmt.Sprintf("compare: matrix mixes %s and %s columns", cols[0].Kind(), c.Kind()))
		}
		if c.Len() != cols[0].Len() {
			panic(fmt.Sprintf("compare: matrix mixes %d and %d element columns", cols[0].Len(), c.Len()))
		}
	}
	out := make([]Vector, len(cols))
	copy(out, cols)
	return Matrix{cols: out}
}

// Kind returns the kind shared by the matrix's elements.
func (m Matrix) Kind() ScalarKind { return m.cols[0].Kind() }

// Cols returns the column count; Rows the per-column element count.
func (m Matrix) Cols() int { return len(m.cols) }

// Rows returns the per-column element count.
func (m Matrix) Rows() int { return m.cols[0].Len() }

// Col returns column i.
func (m Matrix) Col(i int) Vector { return m.cols[i] }

// String renders the matrix as matCxR<kind>(col, ...).
func (m Matrix) String() string {
	parts := make([]string, len(m.cols))
	for i, c := range m.cols {
		parts[i] = c.String()
	}
	return fmt.Sprintf("mat%dx%d<%s>(%s)", m.Cols(), m.Rows(), m.Kind(), strings.Join(parts, ", "))
}
