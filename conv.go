package texel

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// FloatAsNormalizedInteger encodes a normalized float as an integer bit
// pattern of the given width. For signed encodings v must lie in [-1, 1],
// for unsigned in [0, 1]; values outside the range panic, since they
// indicate a caller bug rather than a data condition.
//
// The returned pattern is two's complement masked to bitLength for signed
// encodings. Exact halves round toward positive infinity, so a negative tie
// encodes one step above the away-from-zero result.
func FloatAsNormalizedInteger(v float64, bitLength int, signed bool) uint32 {
	if signed {
		if v < -1 || v > 1 {
			panic(fmt.Sprintf("texel: snorm%d value %v out of range [-1, 1]", bitLength, v))
		}
		max := float64(int64(1)<<(bitLength-1) - 1)
		i := int32(math.Floor(v*max + 0.5))
		return uint32(i) & mask32(bitLength)
	}
	if v < 0 || v > 1 {
		panic(fmt.Sprintf("texel: unorm%d value %v out of range [0, 1]", bitLength, v))
	}
	max := float64(uint64(1)<<bitLength - 1)
	return uint32(math.Floor(v*max + 0.5))
}

// NormalizedIntegerAsFloat is the inverse of FloatAsNormalizedInteger.
//
// For signed encodings the most negative representable integer decodes to
// the same value as the integer one above it (snorm8's -128 and -127 both
// decode to -1), per the WebGPU snorm convention: the representable range
// stays symmetric.
func NormalizedIntegerAsFloat(bits uint32, bitLength int, signed bool) float64 {
	if signed {
		i := SignExtend(bits, bitLength)
		max := float64(int64(1)<<(bitLength-1) - 1)
		return math.Max(float64(i)/max, -1)
	}
	max := float64(uint64(1)<<bitLength - 1)
	return float64(bits&mask32(bitLength)) / max
}

// SignExtend interprets the low bitLength bits of v as a two's complement
// integer and widens it to int32.
func SignExtend(v uint32, bitLength int) int32 {
	shift := 32 - bitLength
	return int32(v<<shift) >> shift
}

// assertIntegerInRange validates that v is an integer representable in the
// given width and signedness. Violations panic.
func assertIntegerInRange(v float64, bitLength int, signed bool) {
	if v != math.Trunc(v) {
		panic(fmt.Sprintf("texel: value %v is not an integer", v))
	}
	var lo, hi float64
	if signed {
		lo = -float64(int64(1) << (bitLength - 1))
		hi = float64(int64(1)<<(bitLength-1) - 1)
	} else {
		hi = float64(uint64(1)<<bitLength - 1)
	}
	if v < lo || v > hi {
		panic(fmt.Sprintf("texel: integer %v out of range [%v, %v]", v, lo, hi))
	}
}

// mask32 returns the all-ones pattern of the given width. bitLength 32
// masks nothing.
func mask32(bitLength int) uint32 {
	if bitLength >= 32 {
		return ^uint32(0)
	}
	return 1<<bitLength - 1
}

// clamp limits v to [lo, hi].
func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
