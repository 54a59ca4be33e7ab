package texel

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/gogpu/texel/fp"
)

// RGB9E5 layout: [exp:5][B:9][G:9][R:9], LSB first.
const (
	rgb9e5MantissaBits = 9
	rgb9e5ExpBias      = 15

	// RGB9E5Max is the largest representable channel value,
	// (2^9-1)/2^9 * 2^(31-15-9+9) = 511/512 * 2^16.
	RGB9E5Max = 65408
)

// PackRGB9E5UFloat packs three unsigned floats into the rgb9e5ufloat
// shared-exponent encoding.
//
// The algorithm is the classic two-pass shared-exponent scheme: clamp each
// channel to the representable maximum, derive a candidate exponent from
// the largest channel, round all three mantissas under that exponent, and
// bump the exponent once more when rounding carried the largest channel
// past the 9-bit mantissa range. Skipping the rebump pass mis-packs values
// just below power-of-two boundaries.
//
// NaN and negative inputs clamp to zero.
func PackRGB9E5UFloat(r, g, b float32) uint32 {
	const n = rgb9e5MantissaBits
	const bias = rgb9e5ExpBias

	rc := clampToRGB9E5(r)
	gc := clampToRGB9E5(g)
	bc := clampToRGB9E5(b)
	maxc := math32.Max(rc, math32.Max(gc, bc))

	expShared := 0
	if maxc > 0 {
		expShared = int(math32.Floor(math32.Log2(maxc))) + 1 + bias
		if expShared < 0 {
			expShared = 0
		}
	}

	// Round the largest channel under the candidate exponent; a carry out
	// of the mantissa range bumps the shared exponent.
	if rgb9e5Mantissa(maxc, expShared) == 1<<n {
		expShared++
	}

	rs := rgb9e5Mantissa(rc, expShared)
	gs := rgb9e5Mantissa(gc, expShared)
	bs := rgb9e5Mantissa(bc, expShared)
	return rs | gs<<n | bs<<(2*n) | uint32(expShared)<<(3*n)
}

// UnpackRGB9E5UFloat is the inverse of PackRGB9E5UFloat.
func UnpackRGB9E5UFloat(v uint32) (r, g, b float32) {
	const n = rgb9e5MantissaBits
	exp := int(v >> (3 * n))
	scale := float32(math.Ldexp(1, exp-rgb9e5ExpBias-n))
	r = float32(v&(1<<n-1)) * scale
	g = float32(v>>n&(1<<n-1)) * scale
	b = float32(v>>(2*n)&(1<<n-1)) * scale
	return r, g, b
}

func clampToRGB9E5(v float32) float32 {
	if !(v > 0) { // negative, zero, or NaN
		return 0
	}
	return math32.Min(v, RGB9E5Max)
}

// rgb9e5ComponentBits encodes one channel value as the 14-bit
// [exp:5][mantissa:9] pattern it would carry if it owned the shared
// exponent outright. The mantissa has no implicit leading bit: the value
// is mantissa * 2^(exp-24), so this is the exact inverse of the registry's
// per-component decode. The mantissa truncates toward zero.
func rgb9e5ComponentBits(v float64) uint32 {
	if v <= 0 {
		return 0
	}
	exp := int(math.Floor(math.Log2(v))) + 1 + rgb9e5ExpBias
	switch {
	case exp < 0:
		exp = 0
	case exp > 31:
		// Beyond the representable range; clamp to the largest pattern.
		return 1<<rgb9e5MantissaBits - 1 | 31<<rgb9e5MantissaBits
	}
	man := uint32(math.Floor(v * math.Ldexp(1, rgb9e5ExpBias+rgb9e5MantissaBits-exp)))
	return man | uint32(exp)<<rgb9e5MantissaBits
}

// rgb9e5Mantissa rounds v to a mantissa under the given shared exponent.
// The result may be 1<<9 when rounding carries out of range; the caller
// uses that to decide whether to bump the exponent.
func rgb9e5Mantissa(v float32, expShared int) uint32 {
	scale := math.Ldexp(1, expShared-rgb9e5ExpBias-rgb9e5MantissaBits)
	return uint32(math.Floor(float64(v)/scale + 0.5))
}

// PackRG11B10UFloat packs two 11-bit and one 10-bit unsigned float channels
// into a 32-bit word as [B:10][G:11][R:11], LSB first. Unlike rgb9e5 the
// channels are fully independent. Channel magnitudes beyond the per-channel
// finite maximum panic via the underlying encoder.
func PackRG11B10UFloat(r, g, b float32) uint32 {
	return fp.Float32ToBits(r, fp.UFloat11) |
		fp.Float32ToBits(g, fp.UFloat11)<<11 |
		fp.Float32ToBits(b, fp.UFloat10)<<22
}

// UnpackRG11B10UFloat is the inverse of PackRG11B10UFloat.
func UnpackRG11B10UFloat(v uint32) (r, g, b float32) {
	r = fp.BitsToFloat32(v&0x7FF, fp.UFloat11)
	g = fp.BitsToFloat32(v>>11&0x7FF, fp.UFloat11)
	b = fp.BitsToFloat32(v>>22&0x3FF, fp.UFloat10)
	return r, g, b
}

// PackRGB10A2Unorm packs four normalized values into [A:2][B:10][G:10][R:10],
// LSB first. Inputs outside the normalized range panic.
func PackRGB10A2Unorm(r, g, b, a float64) uint32 {
	return FloatAsNormalizedInteger(r, 10, false) |
		FloatAsNormalizedInteger(g, 10, false)<<10 |
		FloatAsNormalizedInteger(b, 10, false)<<20 |
		FloatAsNormalizedInteger(a, 2, false)<<30
}

// UnpackRGB10A2Unorm is the inverse of PackRGB10A2Unorm.
func UnpackRGB10A2Unorm(v uint32) (r, g, b, a float64) {
	r = NormalizedIntegerAsFloat(v&0x3FF, 10, false)
	g = NormalizedIntegerAsFloat(v>>10&0x3FF, 10, false)
	b = NormalizedIntegerAsFloat(v>>20&0x3FF, 10, false)
	a = NormalizedIntegerAsFloat(v>>30&0x3, 2, false)
	return r, g, b, a
}

// PackRGB10A2Uint packs four unsigned integers into the rgb10a2uint layout.
// RGB channels must be below 1024 and A below 4; violations panic.
func PackRGB10A2Uint(r, g, b, a uint32) uint32 {
	assertIntegerInRange(float64(r), 10, false)
	assertIntegerInRange(float64(g), 10, false)
	assertIntegerInRange(float64(b), 10, false)
	assertIntegerInRange(float64(a), 2, false)
	return r | g<<10 | b<<20 | a<<30
}

// UnpackRGB10A2Uint is the inverse of PackRGB10A2Uint.
func UnpackRGB10A2Uint(v uint32) (r, g, b, a uint32) {
	return v & 0x3FF, v >> 10 & 0x3FF, v >> 20 & 0x3FF, v >> 30 & 0x3
}

// Pack2x16Float returns every 32-bit word a conforming pack2x16float
// implementation may produce for the pair (x, y). WGSL permits both
// rounding modes and both subnormal behaviors, so each half contributes up
// to four bit patterns (two rounding neighbors, each with a
// flushed-to-zero variant when subnormal); callers comparing observed
// values must accept any member of the returned set.
func Pack2x16Float(x, y float32) []uint32 {
	xs := f16PackCandidates(x)
	ys := f16PackCandidates(y)
	out := make([]uint32, 0, len(xs)*len(ys))
	for _, hi := range ys {
		for _, lo := range xs {
			out = append(out, uint32(lo)|uint32(hi)<<16)
		}
	}
	return out
}

func f16PackCandidates(v float32) []uint16 {
	var out []uint16
	add := func(b uint16) {
		for _, have := range out {
			if have == b {
				return
			}
		}
		out = append(out, b)
	}
	for _, c := range fp.CorrectlyRoundedF16(v) {
		bits := fp.F16Bits(c)
		add(bits)
		if fp.IsSubnormalF16(c) {
			add(bits & 0x8000) // flush-to-zero variant, sign preserved
		}
	}
	return out
}

// Pack2x16Unorm packs two floats as unorm16 values, clamping to [0, 1]
// per the WGSL builtin (NaN clamps to 0).
func Pack2x16Unorm(x, y float32) uint32 {
	return packUnormField(x, 16) | packUnormField(y, 16)<<16
}

// Pack2x16Snorm packs two floats as snorm16 values, clamping to [-1, 1]
// per the WGSL builtin (NaN clamps to 0).
func Pack2x16Snorm(x, y float32) uint32 {
	return packSnormField(x, 16) | packSnormField(y, 16)<<16
}

// Pack4x8Unorm packs four floats as unorm8 values, clamping to [0, 1].
func Pack4x8Unorm(a, b, c, d float32) uint32 {
	return packUnormField(a, 8) | packUnormField(b, 8)<<8 |
		packUnormField(c, 8)<<16 | packUnormField(d, 8)<<24
}

// Pack4x8Snorm packs four floats as snorm8 values, clamping to [-1, 1].
func Pack4x8Snorm(a, b, c, d float32) uint32 {
	return packSnormField(a, 8) | packSnormField(b, 8)<<8 |
		packSnormField(c, 8)<<16 | packSnormField(d, 8)<<24
}

func packUnormField(v float32, bits int) uint32 {
	if math32.IsNaN(v) {
		return 0
	}
	return FloatAsNormalizedInteger(float64(clamp(v, 0, 1)), bits, false)
}

func packSnormField(v float32, bits int) uint32 {
	if math32.IsNaN(v) {
		return 0
	}
	return FloatAsNormalizedInteger(float64(clamp(v, -1, 1)), bits, true)
}
