package texel

import (
	"math"
	"testing"

	"github.com/gogpu/texel/fp"
)

func TestPackRGB9E5UFloat(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float32
		want    uint32
	}{
		{"zero", 0, 0, 0, 0},
		{"negative clamps to zero", -1, -0.5, 0, 0},
		{"nan clamps to zero", float32(math.NaN()), 0, 0, 0},
		// 1.0 = 256/512 * 2^1: mantissa 256, exponent 1+15.
		{"one in red", 1, 0, 0, 256 | 16<<27},
		{"one in all", 1, 1, 1, 256 | 256<<9 | 256<<18 | 16<<27},
		// Max channel value: all mantissa bits set under the top exponent.
		{"max", RGB9E5Max, 0, 0, 511 | 31<<27},
		{"overflow clamps to max", 1e10, 0, 0, 511 | 31<<27},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PackRGB9E5UFloat(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("PackRGB9E5UFloat(%v, %v, %v) = %#x, want %#x",
					tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

// Rounding the largest channel can carry out of the 9-bit mantissa; the
// shared exponent must bump so the value still round-trips within half a
// step. 0.9999 sits just below 1.0 where a single-pass packer mis-packs.
func TestPackRGB9E5UFloatRebump(t *testing.T) {
	v := float32(0.9999)
	packed := PackRGB9E5UFloat(v, 0, 0)
	r, _, _ := UnpackRGB9E5UFloat(packed)
	if math.Abs(float64(r-v)) > 1.0/512 {
		t.Fatalf("pack(%v) = %#x unpacks to %v", v, packed, r)
	}
	if exp := packed >> 27; exp != 16 {
		t.Errorf("pack(%v) shared exponent = %d, want 16 after rebump", v, exp)
	}
}

// Packing is idempotent: re-packing an unpacked value reproduces the word.
func TestPackRGB9E5UFloatIdempotent(t *testing.T) {
	words := []uint32{
		0, 1, 511, 256 | 16<<27, 511 | 31<<27,
		123 | 456<<9 | 78<<18 | 20<<27,
		1 | 1<<9 | 1<<18, // denormal mantissas under exponent 0
	}
	for _, w := range words {
		r, g, b := UnpackRGB9E5UFloat(w)
		if got := PackRGB9E5UFloat(r, g, b); got != w {
			t.Errorf("pack(unpack(%#x)) = %#x", w, got)
		}
	}
}

func TestPackRG11B10UFloat(t *testing.T) {
	// 1.0 in uf11 is 0x3C0 (exponent 15, mantissa 0); in uf10 it is 0x1E0.
	if got := PackRG11B10UFloat(1, 0, 0); got != 0x3C0 {
		t.Errorf("pack(1, 0, 0) = %#x, want 0x3c0", got)
	}
	if got := PackRG11B10UFloat(0, 1, 0); got != 0x3C0<<11 {
		t.Errorf("pack(0, 1, 0) = %#x", got)
	}
	if got := PackRG11B10UFloat(0, 0, 1); got != 0x1E0<<22 {
		t.Errorf("pack(0, 0, 1) = %#x", got)
	}

	r, g, b := UnpackRG11B10UFloat(PackRG11B10UFloat(0.5, 2, 8))
	if r != 0.5 || g != 2 || b != 8 {
		t.Errorf("round trip = (%v, %v, %v), want (0.5, 2, 8)", r, g, b)
	}
}

func TestPackRG11B10UFloatOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("packing a value above the uf11 finite maximum did not panic")
		}
	}()
	PackRG11B10UFloat(float32(fp.UFloat11.MaxFinite() * 2), 0, 0)
}

func TestPackRGB10A2(t *testing.T) {
	if got := PackRGB10A2Unorm(1, 0, 0, 1); got != 0x3FF|0x3<<30 {
		t.Errorf("unorm pack = %#x", got)
	}
	r, g, b, a := UnpackRGB10A2Unorm(PackRGB10A2Unorm(0, 0.5, 1, 1.0/3))
	if r != 0 || b != 1 {
		t.Errorf("unorm round trip r=%v b=%v", r, b)
	}
	if math.Abs(g-0.5) > 1.0/1023 || math.Abs(a-1.0/3) > 1.0/3 {
		t.Errorf("unorm round trip g=%v a=%v", g, a)
	}

	if got := PackRGB10A2Uint(1023, 512, 1, 3); got != 1023|512<<10|1<<20|3<<30 {
		t.Errorf("uint pack = %#x", got)
	}
	ur, ug, ub, ua := UnpackRGB10A2Uint(1023 | 512<<10 | 1<<20 | 3<<30)
	if ur != 1023 || ug != 512 || ub != 1 || ua != 3 {
		t.Errorf("uint unpack = (%d, %d, %d, %d)", ur, ug, ub, ua)
	}
}

func TestPackRGB10A2UintRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("alpha above 3 did not panic")
		}
	}()
	PackRGB10A2Uint(0, 0, 0, 4)
}

func TestPack2x16Float(t *testing.T) {
	// Exactly representable halves produce a single candidate.
	got := Pack2x16Float(1, 2)
	if len(got) != 1 || got[0] != 0x3C00|0x4000<<16 {
		t.Fatalf("Pack2x16Float(1, 2) = %#x, want [0x40003c00]", got)
	}

	// An inexact value contributes its two rounding neighbors.
	if got := Pack2x16Float(float32(1)+float32(math.Ldexp(1, -12)), 0); len(got) != 2 {
		t.Errorf("inexact half: %d candidates, want 2", len(got))
	}

	// A subnormal half additionally contributes its flushed-to-zero form.
	sub := float32(math.Ldexp(1, -25))
	candidates := Pack2x16Float(sub, 0)
	foundFlush := false
	for _, c := range candidates {
		if c&0xFFFF == 0 {
			foundFlush = true
		}
	}
	if !foundFlush {
		t.Errorf("subnormal half candidates %#x lack the flushed form", candidates)
	}
}

func TestPackNormBuiltins(t *testing.T) {
	tests := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"2x16unorm ones", Pack2x16Unorm(1, 1), 0xFFFFFFFF},
		{"2x16unorm clamps", Pack2x16Unorm(-5, 2), 0xFFFF0000},
		{"2x16unorm nan is zero", Pack2x16Unorm(float32(math.NaN()), 1), 0xFFFF0000},
		{"2x16snorm ones", Pack2x16Snorm(1, -1), 0x8001<<16 | 0x7FFF},
		{"4x8unorm", Pack4x8Unorm(0, 1, 0, 1), 0xFF00FF00},
		{"4x8snorm clamps", Pack4x8Snorm(-2, 2, 0, 0), 0x7F81},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %#x, want %#x", tt.got, tt.want)
			}
		})
	}
}
