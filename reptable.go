package texel

import (
	"math"

	"github.com/gogpu/texel/fp"
)

func unormRange() *Range { return &Range{Min: 0, Max: 1, FiniteMin: 0, FiniteMax: 1} }
func snormRange() *Range { return &Range{Min: -1, Max: 1, FiniteMin: -1, FiniteMax: 1} }

func uintRange(bits int) Range {
	max := float64(uint64(1)<<bits - 1)
	return Range{Min: 0, Max: max, FiniteMin: 0, FiniteMax: max}
}

func sintRange(bits int) Range {
	min := -float64(int64(1) << (bits - 1))
	max := float64(int64(1)<<(bits-1) - 1)
	return Range{Min: min, Max: max, FiniteMin: min, FiniteMax: max}
}

func floatRange(f fp.Format) Range {
	max := f.MaxFinite()
	min := float64(0)
	lo := float64(0)
	if f.Signed != 0 {
		min = -max
		lo = math.Inf(-1)
	}
	return Range{Min: lo, Max: math.Inf(1), FiniteMin: min, FiniteMax: max}
}

func sameInfo(order []Component, info ComponentInfo) map[Component]ComponentInfo {
	out := make(map[Component]ComponentInfo, len(order))
	for _, c := range order {
		out[c] = info
	}
	return out
}

func unormRep(f Format, bits int, order ...Component) *Representation {
	return &Representation{
		Format:         f,
		ComponentOrder: order,
		ComponentInfo:  sameInfo(order, ComponentInfo{DataType: DataTypeUnorm, BitLength: bits}),
		sharedRange:    unormRange(),
	}
}

func snormRep(f Format, bits int, order ...Component) *Representation {
	return &Representation{
		Format:         f,
		ComponentOrder: order,
		ComponentInfo:  sameInfo(order, ComponentInfo{DataType: DataTypeSnorm, BitLength: bits}),
		sharedRange:    snormRange(),
	}
}

func uintRep(f Format, bits int, order ...Component) *Representation {
	rng := uintRange(bits)
	return &Representation{
		Format:         f,
		ComponentOrder: order,
		ComponentInfo:  sameInfo(order, ComponentInfo{DataType: DataTypeUint, BitLength: bits}),
		sharedRange:    &rng,
	}
}

func sintRep(f Format, bits int, order ...Component) *Representation {
	rng := sintRange(bits)
	return &Representation{
		Format:         f,
		ComponentOrder: order,
		ComponentInfo:  sameInfo(order, ComponentInfo{DataType: DataTypeSint, BitLength: bits}),
		sharedRange:    &rng,
	}
}

func floatRep(f Format, bits int, order ...Component) *Representation {
	ff := fp.Float32
	if bits == 16 {
		ff = fp.Float16
	}
	rng := floatRange(ff)
	return &Representation{
		Format:         f,
		ComponentOrder: order,
		ComponentInfo:  sameInfo(order, ComponentInfo{DataType: DataTypeFloat, BitLength: bits}),
		sharedRange:    &rng,
	}
}

var rgba = []Component{R, G, B, A}

// repTable is built once at package load and immutable afterwards.
var repTable = map[Format]*Representation{
	// 8-bit.
	R8Unorm: unormRep(R8Unorm, 8, R),
	R8Snorm: snormRep(R8Snorm, 8, R),
	R8Uint:  uintRep(R8Uint, 8, R),
	R8Sint:  sintRep(R8Sint, 8, R),

	// 16-bit.
	R16Uint:  uintRep(R16Uint, 16, R),
	R16Sint:  sintRep(R16Sint, 16, R),
	R16Float: floatRep(R16Float, 16, R),
	RG8Unorm: unormRep(RG8Unorm, 8, R, G),
	RG8Snorm: snormRep(RG8Snorm, 8, R, G),
	RG8Uint:  uintRep(RG8Uint, 8, R, G),
	RG8Sint:  sintRep(RG8Sint, 8, R, G),

	// 32-bit.
	R32Uint:        uintRep(R32Uint, 32, R),
	R32Sint:        sintRep(R32Sint, 32, R),
	R32Float:       floatRep(R32Float, 32, R),
	RG16Uint:       uintRep(RG16Uint, 16, R, G),
	RG16Sint:       sintRep(RG16Sint, 16, R, G),
	RG16Float:      floatRep(RG16Float, 16, R, G),
	RGBA8Unorm:     unormRep(RGBA8Unorm, 8, rgba...),
	RGBA8UnormSrgb: unormRep(RGBA8UnormSrgb, 8, rgba...),
	RGBA8Snorm:     snormRep(RGBA8Snorm, 8, rgba...),
	RGBA8Uint:      uintRep(RGBA8Uint, 8, rgba...),
	RGBA8Sint:      sintRep(RGBA8Sint, 8, rgba...),
	BGRA8Unorm:     unormRep(BGRA8Unorm, 8, B, G, R, A),
	BGRA8UnormSrgb: unormRep(BGRA8UnormSrgb, 8, B, G, R, A),

	// Packed 32-bit.
	RGB10A2Uint: {
		Format:         RGB10A2Uint,
		ComponentOrder: rgba,
		ComponentInfo: map[Component]ComponentInfo{
			R: {DataType: DataTypeUint, BitLength: 10},
			G: {DataType: DataTypeUint, BitLength: 10},
			B: {DataType: DataTypeUint, BitLength: 10},
			A: {DataType: DataTypeUint, BitLength: 2},
		},
		perRange: map[Component]Range{
			R: uintRange(10), G: uintRange(10), B: uintRange(10), A: uintRange(2),
		},
	},
	RGB10A2Unorm: {
		Format:         RGB10A2Unorm,
		ComponentOrder: rgba,
		ComponentInfo: map[Component]ComponentInfo{
			R: {DataType: DataTypeUnorm, BitLength: 10},
			G: {DataType: DataTypeUnorm, BitLength: 10},
			B: {DataType: DataTypeUnorm, BitLength: 10},
			A: {DataType: DataTypeUnorm, BitLength: 2},
		},
		sharedRange: unormRange(),
	},
	RG11B10UFloat: {
		Format:         RG11B10UFloat,
		ComponentOrder: []Component{R, G, B},
		ComponentInfo: map[Component]ComponentInfo{
			R: {DataType: DataTypeUFloat, BitLength: 11},
			G: {DataType: DataTypeUFloat, BitLength: 11},
			B: {DataType: DataTypeUFloat, BitLength: 10},
		},
		perRange: map[Component]Range{
			R: floatRange(fp.UFloat11),
			G: floatRange(fp.UFloat11),
			B: floatRange(fp.UFloat10),
		},
	},
	RGB9E5UFloat: {
		Format:         RGB9E5UFloat,
		ComponentOrder: []Component{R, G, B},
		// BitLength -1: the per-component bit patterns are UFloat9e5
		// patterns (shared exponent widened into each component), not
		// fixed fields of the packed word.
		ComponentInfo: map[Component]ComponentInfo{
			R: {DataType: DataTypeUFloat, BitLength: -1},
			G: {DataType: DataTypeUFloat, BitLength: -1},
			B: {DataType: DataTypeUFloat, BitLength: -1},
		},
		// No reserved Inf/NaN exponent, so the finite max is the max.
		sharedRange:    &Range{Min: 0, Max: RGB9E5Max, FiniteMin: 0, FiniteMax: RGB9E5Max},
		sharedExponent: true,
	},

	// 64-bit.
	RG32Uint:    uintRep(RG32Uint, 32, R, G),
	RG32Sint:    sintRep(RG32Sint, 32, R, G),
	RG32Float:   floatRep(RG32Float, 32, R, G),
	RGBA16Uint:  uintRep(RGBA16Uint, 16, rgba...),
	RGBA16Sint:  sintRep(RGBA16Sint, 16, rgba...),
	RGBA16Float: floatRep(RGBA16Float, 16, rgba...),

	// 128-bit.
	RGBA32Uint:  uintRep(RGBA32Uint, 32, rgba...),
	RGBA32Sint:  sintRep(RGBA32Sint, 32, rgba...),
	RGBA32Float: floatRep(RGBA32Float, 32, rgba...),

	// Depth and stencil.
	Stencil8:     uintRep(Stencil8, 8, Stencil),
	Depth16Unorm: unormRep(Depth16Unorm, 16, Depth),
	Depth32Float: floatRep(Depth32Float, 32, Depth),
	Depth24Plus: {
		Format:         Depth24Plus,
		ComponentOrder: []Component{Depth},
		ComponentInfo:  map[Component]ComponentInfo{Depth: {DataType: DataTypeNone}},
		sharedRange:    unormRange(),
	},
	Depth24PlusStencil8: {
		Format:         Depth24PlusStencil8,
		ComponentOrder: []Component{Depth, Stencil},
		ComponentInfo: map[Component]ComponentInfo{
			Depth:   {DataType: DataTypeNone},
			Stencil: {DataType: DataTypeUint, BitLength: 8},
		},
		perRange: map[Component]Range{
			Depth:   *unormRange(),
			Stencil: uintRange(8),
		},
		multiPlane: true,
	},
	Depth32FloatStencil8: {
		Format:         Depth32FloatStencil8,
		ComponentOrder: []Component{Depth, Stencil},
		ComponentInfo: map[Component]ComponentInfo{
			Depth:   {DataType: DataTypeFloat, BitLength: 32},
			Stencil: {DataType: DataTypeUint, BitLength: 8},
		},
		perRange: map[Component]Range{
			Depth:   floatRange(fp.Float32),
			Stencil: uintRange(8),
		},
		multiPlane: true,
	},
}
