package fp

import (
	"math"

	"github.com/chewxy/math32"
)

const (
	f16ExpMask      = 0x7C00
	f16MantissaMask = 0x03FF
	f16SignMask     = 0x8000
)

// F16FromBits decodes an IEEE binary16 bit pattern into a float32, with full
// subnormal support. This is the strict decoder; BitsToFloat32 with Float16
// produces the same results but stays in the generic path.
func F16FromBits(bits uint16) float32 {
	sign := uint32(bits&f16SignMask) << 16
	exp := (bits >> 10) & 0x1F
	man := uint32(bits & f16MantissaMask)
	switch {
	case exp == 0x1F:
		// Inf or NaN.
		return math.Float32frombits(sign | 0xFF<<23 | man<<13)
	case exp == 0:
		// Zero or subnormal: man * 2^-24.
		v := float32(math.Ldexp(float64(man), -24))
		if sign != 0 {
			v = -v
		}
		return v
	}
	return math.Float32frombits(sign | (uint32(exp)+112)<<23 | man<<13)
}

// f16BitsTowardZero converts x to binary16 truncating toward zero, keeping
// subnormal results (unlike the flushing Float32ToBits path). Magnitudes
// beyond the largest finite binary16 truncate to that largest finite value.
func f16BitsTowardZero(x float32) uint16 {
	b := math.Float32bits(x)
	sign := uint16(b>>16) & f16SignMask
	exp := int(b>>23) & 0xFF
	man := b & 0x7FFFFF

	switch {
	case exp == 0xFF && man != 0:
		return sign | f16ExpMask | uint16(man>>13) | 1 // keep NaN a NaN
	case exp == 0xFF:
		return sign | f16ExpMask
	}

	e := exp - 112 // rebias 127 -> 15
	switch {
	case e >= 31:
		return sign | f16ExpMask | f16MantissaMask // largest finite
	case e <= -11:
		return sign // below the smallest subnormal
	case e <= 0:
		// Subnormal result: floor(|x| / 2^-24).
		return sign | uint16((man|0x800000)>>uint(14-e))
	}
	return sign | uint16(e)<<10 | uint16(man>>13)
}

// CorrectlyRoundedF16 returns the set of binary16 values a correctly rounded
// conversion of x may produce: the single exact value when x is
// representable, otherwise the two neighboring representable values that
// bracket it. Beyond the finite range the appropriately signed infinity
// stands in as the outer neighbor. NaN and infinities return themselves.
//
// This is the strict counterpart to the truncating Float32ToBits encoder;
// both behaviors are legal WGSL conversions and callers choose per site.
func CorrectlyRoundedF16(x float32) []float32 {
	if math32.IsNaN(x) || math32.IsInf(x, 0) {
		return []float32{x}
	}
	t := f16BitsTowardZero(x)
	tv := F16FromBits(t)
	if tv == x {
		return []float32{tv}
	}
	away := F16FromBits(t&f16SignMask | (t&^f16SignMask + 1))
	if x < 0 {
		return []float32{away, tv}
	}
	return []float32{tv, away}
}

// F16Bits returns the binary16 bit pattern of x. The conversion is exact
// for values representable in binary16 (including subnormals) and
// truncates toward zero otherwise; callers needing the round-to-nearest
// neighbor set go through CorrectlyRoundedF16 first.
func F16Bits(x float32) uint16 {
	return f16BitsTowardZero(x)
}

// IsSubnormalF16 reports whether x is in the subnormal range of binary16
// (nonzero, magnitude below the smallest binary16 normal).
func IsSubnormalF16(x float32) bool {
	return x != 0 && math32.Abs(x) < float32(Float16.MinNormal())
}
