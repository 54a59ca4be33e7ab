package fp

import (
	"math"
	"testing"
)

func TestFloat32ToBits_Float16(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want uint32
	}{
		{"zero", 0, 0x0000},
		{"negative zero", float32(math.Copysign(0, -1)), 0x8000},
		{"one", 1, 0x3C00},
		{"negative one", -1, 0xBC00},
		{"two", 2, 0x4000},
		{"half", 0.5, 0x3800},
		{"max finite", 65504, 0x7BFF},
		{"positive infinity", float32(math.Inf(1)), 0x7C00},
		{"negative infinity", float32(math.Inf(-1)), 0xFC00},
		{"smallest normal", 6.103515625e-05, 0x0400}, // 2^-14
		{"subnormal flushes to zero", 3.0517578125e-05, 0x0000},
		{"negative subnormal flushes to signed zero", -3.0517578125e-05, 0x8000},
		// 1 + 3/2048 needs 11 mantissa bits; the low bit truncates away.
		{"mantissa truncates toward zero", 1.00146484375, 0x3C01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Float32ToBits(tt.in, Float16); got != tt.want {
				t.Errorf("Float32ToBits(%v, Float16) = %#04x, want %#04x", tt.in, got, tt.want)
			}
		})
	}
}

func TestFloat32ToBits_NaN(t *testing.T) {
	bits := Float32ToBits(float32(math.NaN()), Float16)
	if bits&0x7C00 != 0x7C00 || bits&0x03FF == 0 {
		t.Errorf("NaN encoded to %#04x, want an all-ones exponent with nonzero mantissa", bits)
	}
}

func TestFloat32ToBits_OverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("encoding 2^17 into Float16 should panic on exponent overflow")
		}
	}()
	Float32ToBits(131072, Float16)
}

func TestFloat32ToBits_NegativeIntoUnsignedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("encoding -1 into UFloat11 should panic")
		}
	}()
	Float32ToBits(-1, UFloat11)
}

func TestBitsToFloat32_RoundTrip(t *testing.T) {
	formats := []struct {
		name string
		f    Format
	}{
		{"Float16", Float16},
		{"UFloat11", UFloat11},
		{"UFloat10", UFloat10},
		{"UFloat9e5", UFloat9e5},
	}
	for _, ff := range formats {
		t.Run(ff.name, func(t *testing.T) {
			// Every representable normal value must survive a decode/encode
			// round trip exactly.
			max := uint32(1) << (ff.f.ExponentBits + ff.f.MantissaBits)
			for bits := uint32(0); bits < max; bits++ {
				exp := (bits >> ff.f.MantissaBits) & ff.f.exponentMask()
				if exp == 0 || exp == ff.f.exponentMask() {
					continue // subnormals flush on encode; Inf/NaN aside
				}
				v := BitsToFloat32(bits, ff.f)
				if got := Float32ToBits(v, ff.f); got != bits {
					t.Fatalf("round trip of %#x through %v: got %#x", bits, v, got)
				}
			}
		})
	}
}

func TestBitsToFloat32_Subnormals(t *testing.T) {
	// Smallest f16 subnormal is 2^-24; decode is exact even though encode
	// flushes.
	want := float32(math.Ldexp(1, -24))
	if got := BitsToFloat32(0x0001, Float16); got != want {
		t.Errorf("decode(0x0001) = %v, want 2^-24", got)
	}
	if got := BitsToFloat32(0x8001, Float16); got != -want {
		t.Errorf("decode(0x8001) = %v, want -2^-24", got)
	}
}

func TestBitsToNormalULPFromZero(t *testing.T) {
	tests := []struct {
		name string
		bits uint32
		f    Format
		want int64
	}{
		{"zero", 0x0000, Float16, 0},
		{"largest subnormal collapses to zero", 0x03FF, Float16, 0},
		{"first normal", 0x0400, Float16, 1},
		{"second normal", 0x0401, Float16, 2},
		{"negative first normal", 0x8400, Float16, -1},
		{"negative subnormal collapses to zero", 0x83FF, Float16, 0},
		{"ufloat first normal", 1 << 6, UFloat11, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BitsToNormalULPFromZero(tt.bits, tt.f); got != tt.want {
				t.Errorf("BitsToNormalULPFromZero(%#x) = %d, want %d", tt.bits, got, tt.want)
			}
		})
	}
}

func TestBitsToNormalULPFromZero_InfPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("ULP distance of an infinity pattern should panic")
		}
	}()
	BitsToNormalULPFromZero(0x7C00, Float16)
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		f    Format
		want float64
	}{
		{"exact through f16", 0.5, Float16, 0.5},
		{"truncates toward zero", 1.00146484375, Float16, 1.0009765625},
		{"subnormal flushes", 3.0517578125e-05, Float16, 0},
		{"exact through uf10", 2, UFloat10, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quantize(tt.in, tt.f); got != tt.want {
				t.Errorf("Quantize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormat_MaxFinite(t *testing.T) {
	if got := Float16.MaxFinite(); got != 65504 {
		t.Errorf("Float16.MaxFinite() = %v, want 65504", got)
	}
	if got := Float32.MaxFinite(); got != math.MaxFloat32 {
		t.Errorf("Float32.MaxFinite() = %v, want MaxFloat32", got)
	}
	// rg11b10's B channel: (2 - 2^-5) * 2^15.
	if got := UFloat10.MaxFinite(); got != 64512 {
		t.Errorf("UFloat10.MaxFinite() = %v, want 64512", got)
	}
	if got := UFloat11.MaxFinite(); got != 65024 {
		t.Errorf("UFloat11.MaxFinite() = %v, want 65024", got)
	}
}
