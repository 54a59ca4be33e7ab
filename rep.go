package texel

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/texel/fp"
)

// Components maps texel channels to shader-visible numeric values.
type Components map[Component]float64

// BitComponents maps texel channels to raw per-component bit patterns.
type BitComponents map[Component]uint32

// ULPComponents maps texel channels to signed ULP-from-zero distances.
type ULPComponents map[Component]int64

// Range bounds the legal shader-visible values of a component. Min and Max
// include infinities for float representations that can encode them;
// FiniteMin and FiniteMax are always finite.
type Range struct {
	Min, Max             float64
	FiniteMin, FiniteMax float64
}

// Representation is the per-format operation set of the texel registry:
// how component values become bit patterns and bytes and back. One
// Representation exists per packable format, built at package load and
// immutable afterwards.
type Representation struct {
	// Format is the format this representation belongs to.
	Format Format

	// ComponentOrder is the fixed iteration order of the format's
	// channels; Pack lays fields out in this order starting at bit 0 of
	// byte 0.
	ComponentOrder []Component

	// ComponentInfo describes each channel's representation.
	ComponentInfo map[Component]ComponentInfo

	sharedRange *Range
	perRange    map[Component]Range

	// sharedExponent marks the rgb9e5ufloat layout, which packs as a unit
	// rather than as independent fields.
	sharedExponent bool

	// multiPlane marks combined depth/stencil formats, whose planes have
	// no single interleaved byte layout.
	multiPlane bool
}

// Rep returns the texel representation for f. Formats without a
// representation (block-compressed formats) panic; combined depth/stencil
// formats return a representation whose Pack and UnpackBits panic, since
// their planes must be resolved through AspectFormat first.
func Rep(f Format) *Representation {
	r, ok := repTable[f]
	if !ok {
		panic("texel: format " + string(f) + " has no texel representation")
	}
	return r
}

// NumericRange returns the legal value range of component c. Packed
// formats carry per-component ranges (rgb10a2uint's alpha spans 0-3 while
// its color channels span 0-1023); all other formats share one range
// across components.
func (r *Representation) NumericRange(c Component) Range {
	if r.perRange != nil {
		rng, ok := r.perRange[c]
		if !ok {
			panic("texel: format " + string(r.Format) + " has no component " + c.String())
		}
		return rng
	}
	return *r.sharedRange
}

// SharedRange returns the range common to all components and true, or a
// zero Range and false when the format's components have differing ranges.
func (r *Representation) SharedRange() (Range, bool) {
	if r.sharedRange == nil {
		return Range{}, false
	}
	return *r.sharedRange, true
}

// Encode validates each component value against its numeric range and
// returns the encoded numbers: normalized values become their integer
// encodings, floats quantize to their representable neighbors, integers
// pass through validated. Unrepresentable components panic.
func (r *Representation) Encode(components Components) Components {
	out := make(Components, len(r.ComponentOrder))
	for _, c := range r.ComponentOrder {
		v := r.component(components, c)
		info := r.ComponentInfo[c]
		r.assertInRange(c, v)
		switch info.DataType {
		case DataTypeUnorm:
			out[c] = float64(FloatAsNormalizedInteger(v, info.BitLength, false))
		case DataTypeSnorm:
			i := SignExtend(FloatAsNormalizedInteger(v, info.BitLength, true), info.BitLength)
			out[c] = float64(i)
		case DataTypeUint, DataTypeSint:
			assertIntegerInRange(v, info.BitLength, info.DataType == DataTypeSint)
			out[c] = v
		case DataTypeFloat, DataTypeUFloat:
			out[c] = r.bitsToNumberComponent(c, r.numberToBitsComponent(c, v))
		default:
			panic(r.unrepresentable(c))
		}
	}
	return out
}

// Decode is the inverse of Encode: encoded numbers back to shader-visible
// values.
func (r *Representation) Decode(encoded Components) Components {
	out := make(Components, len(r.ComponentOrder))
	for _, c := range r.ComponentOrder {
		v := r.component(encoded, c)
		info := r.ComponentInfo[c]
		switch info.DataType {
		case DataTypeUnorm:
			out[c] = NormalizedIntegerAsFloat(uint32(v), info.BitLength, false)
		case DataTypeSnorm:
			out[c] = NormalizedIntegerAsFloat(uint32(int32(v))&mask32(info.BitLength), info.BitLength, true)
		case DataTypeUint, DataTypeSint:
			assertIntegerInRange(v, info.BitLength, info.DataType == DataTypeSint)
			out[c] = v
		case DataTypeFloat, DataTypeUFloat:
			out[c] = v
		default:
			panic(r.unrepresentable(c))
		}
	}
	return out
}

// NumberToBits converts shader-visible values directly to per-component
// bit patterns, skipping Encode's range validation (floats truncate rather
// than assert).
func (r *Representation) NumberToBits(components Components) BitComponents {
	out := make(BitComponents, len(r.ComponentOrder))
	for _, c := range r.ComponentOrder {
		out[c] = r.numberToBitsComponent(c, r.component(components, c))
	}
	return out
}

// BitsToNumber converts per-component bit patterns to shader-visible
// values.
func (r *Representation) BitsToNumber(bits BitComponents) Components {
	out := make(Components, len(r.ComponentOrder))
	for _, c := range r.ComponentOrder {
		b, ok := bits[c]
		if !ok {
			panic("texel: missing bits for component " + c.String())
		}
		out[c] = r.bitsToNumberComponent(c, b)
	}
	return out
}

// BitsToULPFromZero converts per-component bit patterns to their signed
// integer distance from zero in ULPs of the component's representation.
// Normalized and integer components count in representable steps; float
// components count normal-number ULPs (subnormal patterns collapse to 0).
func (r *Representation) BitsToULPFromZero(bits BitComponents) ULPComponents {
	out := make(ULPComponents, len(r.ComponentOrder))
	for _, c := range r.ComponentOrder {
		b, ok := bits[c]
		if !ok {
			panic("texel: missing bits for component " + c.String())
		}
		out[c] = r.bitsToULPComponent(c, b)
	}
	return out
}

// Pack validates and encodes each component, then lays the encoded fields
// out into the format's byte layout, LSB first within a little-endian
// block. It panics for unrepresentable components and for combined
// depth/stencil formats.
func (r *Representation) Pack(components Components) []byte {
	if r.multiPlane {
		panic("texel: " + string(r.Format) + " has no single-plane layout; resolve the aspect first")
	}
	if r.sharedExponent {
		word := PackRGB9E5UFloat(
			r.rangeClamped9e5(components, R),
			r.rangeClamped9e5(components, G),
			r.rangeClamped9e5(components, B),
		)
		out := make([]byte, 4)
		binary.LittleEndian.PutUint32(out, word)
		return out
	}
	out := make([]byte, r.bytesPerTexel())
	offset := 0
	for _, c := range r.ComponentOrder {
		info := r.ComponentInfo[c]
		v := r.component(components, c)
		r.assertInRange(c, v)
		writeBits(out, offset, info.BitLength, r.numberToBitsComponent(c, v))
		offset += info.BitLength
	}
	return out
}

// UnpackBits is Pack's inverse up to encoding: it splits a packed byte
// layout into per-component bit patterns. data must be exactly one texel
// block.
func (r *Representation) UnpackBits(data []byte) BitComponents {
	if r.multiPlane {
		panic("texel: " + string(r.Format) + " has no single-plane layout; resolve the aspect first")
	}
	if len(data) != r.bytesPerTexel() {
		panic(fmt.Sprintf("texel: %s texel is %d bytes, got %d",
			r.Format, r.bytesPerTexel(), len(data)))
	}
	out := make(BitComponents, len(r.ComponentOrder))
	if r.sharedExponent {
		word := binary.LittleEndian.Uint32(data)
		exp := word >> 27
		out[R] = word & 0x1FF | exp<<9
		out[G] = word >> 9 & 0x1FF | exp<<9
		out[B] = word >> 18 & 0x1FF | exp<<9
		return out
	}
	// Fast paths for byte/halfword/word aligned components.
	if w := r.uniformByteWidth(); w != 0 {
		for i, c := range r.ComponentOrder {
			switch w {
			case 1:
				out[c] = uint32(data[i])
			case 2:
				out[c] = uint32(binary.LittleEndian.Uint16(data[2*i:]))
			case 4:
				out[c] = binary.LittleEndian.Uint32(data[4*i:])
			}
		}
		return out
	}
	offset := 0
	for _, c := range r.ComponentOrder {
		info := r.ComponentInfo[c]
		if info.DataType == DataTypeNone {
			panic(r.unrepresentable(c))
		}
		out[c] = readBits(data, offset, info.BitLength)
		offset += info.BitLength
	}
	return out
}

// uniformByteWidth returns the shared component byte width for the aligned
// fast path, or 0 when components are not uniformly 8/16/32 bits.
func (r *Representation) uniformByteWidth() int {
	w := r.ComponentInfo[r.ComponentOrder[0]].BitLength
	if w != 8 && w != 16 && w != 32 {
		return 0
	}
	for _, c := range r.ComponentOrder {
		info := r.ComponentInfo[c]
		if info.DataType == DataTypeNone || info.BitLength != w {
			return 0
		}
	}
	return w / 8
}

func (r *Representation) bytesPerTexel() int {
	if r.sharedExponent {
		return 4
	}
	bits := 0
	for _, c := range r.ComponentOrder {
		info := r.ComponentInfo[c]
		if info.DataType == DataTypeNone {
			panic(r.unrepresentable(c))
		}
		bits += info.BitLength
	}
	return (bits + 7) / 8
}

func (r *Representation) component(components Components, c Component) float64 {
	v, ok := components[c]
	if !ok {
		panic("texel: missing value for component " + c.String() + " of " + string(r.Format))
	}
	return v
}

func (r *Representation) assertInRange(c Component, v float64) {
	if math.IsNaN(v) {
		dt := r.ComponentInfo[c].DataType
		if (dt == DataTypeFloat || dt == DataTypeUFloat) && !r.sharedExponent {
			return // the representation reserves NaN patterns
		}
		panic(fmt.Sprintf("texel: %s component %s cannot represent NaN", r.Format, c))
	}
	rng := r.NumericRange(c)
	if v < rng.Min || v > rng.Max {
		panic(fmt.Sprintf("texel: %s component %s value %v out of range [%v, %v]",
			r.Format, c, v, rng.Min, rng.Max))
	}
}

func (r *Representation) unrepresentable(c Component) string {
	return fmt.Sprintf(
		"texel: component %s of %s has no defined bit representation and cannot be encoded, decoded, packed, or unpacked",
		c, r.Format)
}

func (r *Representation) rangeClamped9e5(components Components, c Component) float32 {
	v := r.component(components, c)
	r.assertInRange(c, v)
	return float32(v)
}

func (r *Representation) numberToBitsComponent(c Component, v float64) uint32 {
	info := r.ComponentInfo[c]
	switch info.DataType {
	case DataTypeUnorm:
		return FloatAsNormalizedInteger(v, info.BitLength, false)
	case DataTypeSnorm:
		return FloatAsNormalizedInteger(v, info.BitLength, true)
	case DataTypeUint:
		assertIntegerInRange(v, info.BitLength, false)
		return uint32(v)
	case DataTypeSint:
		assertIntegerInRange(v, info.BitLength, true)
		return uint32(int32(v)) & mask32(info.BitLength)
	case DataTypeFloat:
		if info.BitLength == 32 {
			return math.Float32bits(float32(v))
		}
		return fp.NumberToBits(v, fp.Float16)
	case DataTypeUFloat:
		if r.sharedExponent {
			return rgb9e5ComponentBits(v)
		}
		return fp.NumberToBits(v, r.ufloatFormat(c))
	}
	panic(r.unrepresentable(c))
}

func (r *Representation) bitsToNumberComponent(c Component, bits uint32) float64 {
	info := r.ComponentInfo[c]
	switch info.DataType {
	case DataTypeUnorm:
		return NormalizedIntegerAsFloat(bits, info.BitLength, false)
	case DataTypeSnorm:
		return NormalizedIntegerAsFloat(bits, info.BitLength, true)
	case DataTypeUint:
		return float64(bits & mask32(info.BitLength))
	case DataTypeSint:
		return float64(SignExtend(bits, info.BitLength))
	case DataTypeFloat:
		if info.BitLength == 32 {
			return float64(math.Float32frombits(bits))
		}
		return fp.BitsToNumber(bits, fp.Float16)
	case DataTypeUFloat:
		if r.sharedExponent {
			// No reserved exponent: every pattern is finite.
			return float64(bits&0x1FF) * math.Ldexp(1, int(bits>>9)-rgb9e5ExpBias-rgb9e5MantissaBits)
		}
		return fp.BitsToNumber(bits, r.ufloatFormat(c))
	}
	panic(r.unrepresentable(c))
}

func (r *Representation) bitsToULPComponent(c Component, bits uint32) int64 {
	info := r.ComponentInfo[c]
	switch info.DataType {
	case DataTypeUnorm, DataTypeUint:
		return int64(bits & mask32(info.BitLength))
	case DataTypeSnorm:
		// The two most negative patterns decode to the same value, so they
		// are the same distance from zero.
		i := int64(SignExtend(bits, info.BitLength))
		min := -(int64(1)<<(info.BitLength-1) - 1)
		if i < min {
			i = min
		}
		return i
	case DataTypeSint:
		return int64(SignExtend(bits, info.BitLength))
	case DataTypeFloat:
		if info.BitLength == 32 {
			return fp.BitsToNormalULPFromZero(bits, fp.Float32)
		}
		return fp.BitsToNormalULPFromZero(bits, fp.Float16)
	case DataTypeUFloat:
		if r.sharedExponent {
			// Shared-exponent patterns have no Inf/NaN; the magnitude
			// formula applies to every pattern.
			ulp := int64(bits&0x3FFF) - 0x1FF
			if ulp < 0 {
				ulp = 0
			}
			return ulp
		}
		return fp.BitsToNormalULPFromZero(bits, r.ufloatFormat(c))
	}
	panic(r.unrepresentable(c))
}

func (r *Representation) ufloatFormat(c Component) fp.Format {
	switch r.ComponentInfo[c].BitLength {
	case 11:
		return fp.UFloat11
	case 10:
		return fp.UFloat10
	}
	return fp.UFloat9e5
}

// writeBits ORs the low width bits of v into buf starting at bit offset,
// LSB first.
func writeBits(buf []byte, offset, width int, v uint32) {
	idx := offset / 8
	window := (uint64(v) & uint64Mask(width)) << (offset % 8)
	for window != 0 {
		buf[idx] |= byte(window)
		window >>= 8
		idx++
	}
}

// readBits extracts width bits starting at bit offset, LSB first.
func readBits(buf []byte, offset, width int) uint32 {
	idx := offset / 8
	shift := offset % 8
	var window uint64
	for i := 0; i*8 < shift+width; i++ {
		window |= uint64(buf[idx+i]) << (8 * i)
	}
	return uint32(window >> shift & uint64Mask(width))
}

func uint64Mask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return 1<<width - 1
}
