package fp

import (
	"math"
	"strconv"
)

// Float32ToBits encodes n into the bit pattern of the target format.
//
// The conversion is deliberately loose in exactly the ways WGSL allows:
// the mantissa is truncated toward zero (never rounded), and results that
// would be subnormal in the target format are flushed to signed zero.
// NaN encodes to an arbitrary quiet NaN pattern and infinities to the
// appropriately signed all-ones-exponent pattern.
//
// Float32ToBits panics when the rebiased exponent overflows the target
// exponent field, or when a negative non-zero value is encoded into an
// unsigned format. Both indicate a caller bug, not a data condition.
func Float32ToBits(n float32, f Format) uint32 {
	bits := math.Float32bits(n)
	sign := bits >> 31
	exp := int((bits >> 23) & 0xFF)
	man := bits & 0x7FFFFF

	if f.Signed == 0 && sign != 0 && !(exp == 0 && man == 0) {
		panic("fp: cannot encode a negative value into an unsigned format")
	}
	signBit := (sign & uint32(f.Signed)) << (f.ExponentBits + f.MantissaBits)

	switch {
	case exp == 0xFF && man != 0:
		// NaN. Any quiet NaN pattern is acceptable.
		return signBit | f.exponentMask()<<f.MantissaBits | 1<<(f.MantissaBits-1)
	case exp == 0xFF:
		// Infinity.
		return signBit | f.exponentMask()<<f.MantissaBits
	case exp == 0:
		// Zero or a 32-bit subnormal; both flush to signed zero.
		return signBit
	}

	newExp := exp - Float32.Bias + f.Bias
	if newExp >= int(f.exponentMask()) {
		panic("fp: exponent overflow encoding " + strconv.FormatFloat(float64(n), 'g', -1, 32))
	}
	if newExp <= 0 {
		// The result would be subnormal in the target format; flush.
		return signBit
	}
	return signBit | uint32(newExp)<<f.MantissaBits | man>>(23-f.MantissaBits)
}

// BitsToFloat32 decodes a bit pattern of the given format.
//
// An all-ones exponent field decodes to Inf or NaN. Target-format
// subnormals decode to their exact value (the flush in Float32ToBits is an
// encode-side behavior only).
func BitsToFloat32(bits uint32, f Format) float32 {
	var sign uint32
	if f.Signed != 0 {
		sign = (bits >> (f.ExponentBits + f.MantissaBits)) & 1
	}
	exp := (bits >> f.MantissaBits) & f.exponentMask()
	man := bits & f.mantissaMask()

	switch {
	case exp == f.exponentMask():
		// Inf or NaN; shifting the mantissa left preserves its nonzero-ness.
		return math.Float32frombits(sign<<31 | 0xFF<<23 | man<<(23-f.MantissaBits))
	case exp == 0:
		// Zero or subnormal: man * 2^(1 - bias - mantissaBits).
		v := float32(math.Ldexp(float64(man), 1-f.Bias-f.MantissaBits))
		if sign != 0 {
			v = -v
		}
		return v
	}
	newExp := int(exp) - f.Bias + Float32.Bias
	return math.Float32frombits(sign<<31 | uint32(newExp)<<23 | man<<(23-f.MantissaBits))
}

// BitsToNormalULPFromZero returns the signed distance of a bit pattern from
// zero, measured in normal-number ULPs of the format.
//
// Zero and all subnormal patterns collapse to distance 0; the smallest
// normal number is exactly 1 ULP from zero. Infinity and NaN patterns are a
// precondition violation and panic.
func BitsToNormalULPFromZero(bits uint32, f Format) int64 {
	exp := (bits >> f.MantissaBits) & f.exponentMask()
	if exp == f.exponentMask() {
		panic("fp: ULP distance from zero is undefined for Inf/NaN")
	}
	magnitude := int64(bits & ((1 << (f.ExponentBits + f.MantissaBits)) - 1))
	ulp := magnitude - int64(f.mantissaMask())
	if ulp < 0 {
		ulp = 0
	}
	if f.Signed != 0 && bits>>(f.ExponentBits+f.MantissaBits)&1 != 0 {
		ulp = -ulp
	}
	return ulp
}

// NumberToBits encodes via Float32ToBits after narrowing from float64. It
// exists so table-driven callers can stay in float64 without sprinkling
// conversions.
func NumberToBits(n float64, f Format) uint32 {
	return Float32ToBits(float32(n), f)
}

// BitsToNumber is the float64-returning counterpart of BitsToFloat32.
func BitsToNumber(bits uint32, f Format) float64 {
	return float64(BitsToFloat32(bits, f))
}

// Quantize returns the value n becomes after an encode/decode round trip
// through the format. With the truncating encoder this is the nearest
// representable value toward zero, or zero when n is subnormal in f.
func Quantize(n float64, f Format) float64 {
	return BitsToNumber(NumberToBits(n, f), f)
}
