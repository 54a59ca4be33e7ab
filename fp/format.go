// Package fp implements bit-level codecs for the IEEE-754-family floating
// point representations used by GPU texture formats.
//
// A Format describes an arbitrary (sign, exponent, mantissa, bias) binary
// layout. Predefined formats cover the representations WebGPU cares about:
// 32- and 16-bit IEEE floats, the unsigned 11- and 10-bit floats of
// rg11b10ufloat, and the 9-bit-mantissa component format of rgb9e5ufloat.
//
// Two conversion behaviors coexist deliberately. The generic encoder
// (Float32ToBits) truncates the mantissa and flushes subnormal results to
// zero, matching the loose conversion WGSL permits. CorrectlyRoundedF16
// enumerates the exact round-to-nearest neighbor set instead. Callers pick
// the behavior per call site; the two are never unified.
package fp

import "math"

// Format is an immutable descriptor of a binary floating point layout.
// The total bit width is Signed + ExponentBits + MantissaBits and must not
// exceed 32.
type Format struct {
	// Signed is 1 when the layout carries a sign bit, 0 otherwise.
	Signed int

	// ExponentBits is the width of the biased exponent field.
	ExponentBits int

	// MantissaBits is the width of the trailing significand field.
	MantissaBits int

	// Bias is the exponent bias.
	Bias int
}

// Predefined formats.
var (
	// Float32 is standard IEEE 754 binary32.
	Float32 = Format{Signed: 1, ExponentBits: 8, MantissaBits: 23, Bias: 127}

	// Float16 is standard IEEE 754 binary16.
	Float16 = Format{Signed: 1, ExponentBits: 5, MantissaBits: 10, Bias: 15}

	// UFloat11 is the unsigned 11-bit float used by the R and G channels of
	// rg11b10ufloat.
	UFloat11 = Format{Signed: 0, ExponentBits: 5, MantissaBits: 6, Bias: 15}

	// UFloat10 is the unsigned 10-bit float used by the B channel of
	// rg11b10ufloat.
	UFloat10 = Format{Signed: 0, ExponentBits: 5, MantissaBits: 5, Bias: 15}

	// UFloat9e5 describes a single component of rgb9e5ufloat as if it owned
	// the shared 5-bit exponent outright.
	UFloat9e5 = Format{Signed: 0, ExponentBits: 5, MantissaBits: 9, Bias: 15}
)

// Bits returns the total bit width of the layout.
func (f Format) Bits() int {
	return f.Signed + f.ExponentBits + f.MantissaBits
}

// exponentMask returns the all-ones biased exponent field value.
func (f Format) exponentMask() uint32 {
	return (1 << f.ExponentBits) - 1
}

// mantissaMask returns the all-ones mantissa field value.
func (f Format) mantissaMask() uint32 {
	return (1 << f.MantissaBits) - 1
}

// MaxFinite returns the largest finite value representable in the format.
func (f Format) MaxFinite() float64 {
	// Largest normal: mantissa all ones, exponent one below the reserved
	// all-ones field.
	maxExp := int(f.exponentMask()) - 1 - f.Bias
	frac := 2 - 1/float64(uint64(1)<<f.MantissaBits)
	return math.Ldexp(frac, maxExp)
}

// MinNormal returns the smallest positive normal value of the format.
func (f Format) MinNormal() float64 {
	return math.Ldexp(1, 1-f.Bias)
}
