package texel

// Declared texture formats.
const (
	// 8-bit color formats.
	R8Unorm Format = "r8unorm"
	R8Snorm Format = "r8snorm"
	R8Uint  Format = "r8uint"
	R8Sint  Format = "r8sint"

	// 16-bit color formats.
	R16Uint  Format = "r16uint"
	R16Sint  Format = "r16sint"
	R16Float Format = "r16float"
	RG8Unorm Format = "rg8unorm"
	RG8Snorm Format = "rg8snorm"
	RG8Uint  Format = "rg8uint"
	RG8Sint  Format = "rg8sint"

	// 32-bit color formats.
	R32Uint        Format = "r32uint"
	R32Sint        Format = "r32sint"
	R32Float       Format = "r32float"
	RG16Uint       Format = "rg16uint"
	RG16Sint       Format = "rg16sint"
	RG16Float      Format = "rg16float"
	RGBA8Unorm     Format = "rgba8unorm"
	RGBA8UnormSrgb Format = "rgba8unorm-srgb"
	RGBA8Snorm     Format = "rgba8snorm"
	RGBA8Uint      Format = "rgba8uint"
	RGBA8Sint      Format = "rgba8sint"
	BGRA8Unorm     Format = "bgra8unorm"
	BGRA8UnormSrgb Format = "bgra8unorm-srgb"

	// Packed 32-bit color formats.
	RGB10A2Uint   Format = "rgb10a2uint"
	RGB10A2Unorm  Format = "rgb10a2unorm"
	RG11B10UFloat Format = "rg11b10ufloat"
	RGB9E5UFloat  Format = "rgb9e5ufloat"

	// 64-bit color formats.
	RG32Uint    Format = "rg32uint"
	RG32Sint    Format = "rg32sint"
	RG32Float   Format = "rg32float"
	RGBA16Uint  Format = "rgba16uint"
	RGBA16Sint  Format = "rgba16sint"
	RGBA16Float Format = "rgba16float"

	// 128-bit color formats.
	RGBA32Uint  Format = "rgba32uint"
	RGBA32Sint  Format = "rgba32sint"
	RGBA32Float Format = "rgba32float"

	// Depth and stencil formats.
	Stencil8             Format = "stencil8"
	Depth16Unorm         Format = "depth16unorm"
	Depth24Plus          Format = "depth24plus"
	Depth24PlusStencil8  Format = "depth24plus-stencil8"
	Depth32Float         Format = "depth32float"
	Depth32FloatStencil8 Format = "depth32float-stencil8"

	// BC (DXT) compressed formats.
	BC1RGBAUnorm     Format = "bc1-rgba-unorm"
	BC1RGBAUnormSrgb Format = "bc1-rgba-unorm-srgb"
	BC2RGBAUnorm     Format = "bc2-rgba-unorm"
	BC2RGBAUnormSrgb Format = "bc2-rgba-unorm-srgb"
	BC3RGBAUnorm     Format = "bc3-rgba-unorm"
	BC3RGBAUnormSrgb Format = "bc3-rgba-unorm-srgb"
	BC4RUnorm        Format = "bc4-r-unorm"
	BC4RSnorm        Format = "bc4-r-snorm"
	BC5RGUnorm       Format = "bc5-rg-unorm"
	BC5RGSnorm       Format = "bc5-rg-snorm"
	BC6HRGBUFloat    Format = "bc6h-rgb-ufloat"
	BC6HRGBFloat     Format = "bc6h-rgb-float"
	BC7RGBAUnorm     Format = "bc7-rgba-unorm"
	BC7RGBAUnormSrgb Format = "bc7-rgba-unorm-srgb"

	// ETC2 / EAC compressed formats.
	ETC2RGB8Unorm       Format = "etc2-rgb8unorm"
	ETC2RGB8UnormSrgb   Format = "etc2-rgb8unorm-srgb"
	ETC2RGB8A1Unorm     Format = "etc2-rgb8a1unorm"
	ETC2RGB8A1UnormSrgb Format = "etc2-rgb8a1unorm-srgb"
	ETC2RGBA8Unorm      Format = "etc2-rgba8unorm"
	ETC2RGBA8UnormSrgb  Format = "etc2-rgba8unorm-srgb"
	EACR11Unorm         Format = "eac-r11unorm"
	EACR11Snorm         Format = "eac-r11snorm"
	EACRG11Unorm        Format = "eac-rg11unorm"
	EACRG11Snorm        Format = "eac-rg11snorm"

	// ASTC compressed formats.
	ASTC4x4Unorm       Format = "astc-4x4-unorm"
	ASTC4x4UnormSrgb   Format = "astc-4x4-unorm-srgb"
	ASTC5x4Unorm       Format = "astc-5x4-unorm"
	ASTC5x4UnormSrgb   Format = "astc-5x4-unorm-srgb"
	ASTC5x5Unorm       Format = "astc-5x5-unorm"
	ASTC5x5UnormSrgb   Format = "astc-5x5-unorm-srgb"
	ASTC6x5Unorm       Format = "astc-6x5-unorm"
	ASTC6x5UnormSrgb   Format = "astc-6x5-unorm-srgb"
	ASTC6x6Unorm       Format = "astc-6x6-unorm"
	ASTC6x6UnormSrgb   Format = "astc-6x6-unorm-srgb"
	ASTC8x5Unorm       Format = "astc-8x5-unorm"
	ASTC8x5UnormSrgb   Format = "astc-8x5-unorm-srgb"
	ASTC8x6Unorm       Format = "astc-8x6-unorm"
	ASTC8x6UnormSrgb   Format = "astc-8x6-unorm-srgb"
	ASTC8x8Unorm       Format = "astc-8x8-unorm"
	ASTC8x8UnormSrgb   Format = "astc-8x8-unorm-srgb"
	ASTC10x5Unorm      Format = "astc-10x5-unorm"
	ASTC10x5UnormSrgb  Format = "astc-10x5-unorm-srgb"
	ASTC10x6Unorm      Format = "astc-10x6-unorm"
	ASTC10x6UnormSrgb  Format = "astc-10x6-unorm-srgb"
	ASTC10x8Unorm      Format = "astc-10x8-unorm"
	ASTC10x8UnormSrgb  Format = "astc-10x8-unorm-srgb"
	ASTC10x10Unorm     Format = "astc-10x10-unorm"
	ASTC10x10UnormSrgb Format = "astc-10x10-unorm-srgb"
	ASTC12x10Unorm     Format = "astc-12x10-unorm"
	ASTC12x10UnormSrgb Format = "astc-12x10-unorm-srgb"
	ASTC12x12Unorm     Format = "astc-12x12-unorm"
	ASTC12x12UnormSrgb Format = "astc-12x12-unorm-srgb"
)

// Feature gate names.
const (
	FeatureDepth32FloatStencil8   = "depth32float-stencil8"
	FeatureTextureCompressionBC   = "texture-compression-bc"
	FeatureTextureCompressionETC2 = "texture-compression-etc2"
	FeatureTextureCompressionASTC = "texture-compression-astc"
)

// formatTable is built once at package load and immutable afterwards.
var formatTable = map[Format]FormatInfo{
	// 8-bit.
	R8Unorm: colorFormat(colorSpec{dataType: DataTypeUnorm, bytes: 1,
		render: render(true, true, 1, 1), multisample: true}),
	R8Snorm: colorFormat(colorSpec{dataType: DataTypeSnorm, bytes: 1}),
	R8Uint: colorFormat(colorSpec{dataType: DataTypeUint, bytes: 1,
		render: render(false, false, 1, 1), multisample: true}),
	R8Sint: colorFormat(colorSpec{dataType: DataTypeSint, bytes: 1,
		render: render(false, false, 1, 1), multisample: true}),

	// 16-bit.
	R16Uint: colorFormat(colorSpec{dataType: DataTypeUint, bytes: 2,
		render: render(false, false, 2, 2), multisample: true}),
	R16Sint: colorFormat(colorSpec{dataType: DataTypeSint, bytes: 2,
		render: render(false, false, 2, 2), multisample: true}),
	R16Float: colorFormat(colorSpec{dataType: DataTypeFloat, bytes: 2,
		render: render(true, true, 2, 2), multisample: true}),
	RG8Unorm: colorFormat(colorSpec{dataType: DataTypeUnorm, bytes: 2,
		render: render(true, true, 2, 1), multisample: true}),
	RG8Snorm: colorFormat(colorSpec{dataType: DataTypeSnorm, bytes: 2}),
	RG8Uint: colorFormat(colorSpec{dataType: DataTypeUint, bytes: 2,
		render: render(false, false, 2, 1), multisample: true}),
	RG8Sint: colorFormat(colorSpec{dataType: DataTypeSint, bytes: 2,
		render: render(false, false, 2, 1), multisample: true}),

	// 32-bit.
	R32Uint: colorFormat(colorSpec{dataType: DataTypeUint, bytes: 4,
		storage: true, rwStorage: true, render: render(false, false, 4, 4)}),
	R32Sint: colorFormat(colorSpec{dataType: DataTypeSint, bytes: 4,
		storage: true, rwStorage: true, render: render(false, false, 4, 4)}),
	R32Float: colorFormat(colorSpec{dataType: DataTypeFloat, bytes: 4,
		storage: true, rwStorage: true, render: render(false, false, 4, 4), multisample: true}),
	RG16Uint: colorFormat(colorSpec{dataType: DataTypeUint, bytes: 4,
		render: render(false, false, 4, 2), multisample: true}),
	RG16Sint: colorFormat(colorSpec{dataType: DataTypeSint, bytes: 4,
		render: render(false, false, 4, 2), multisample: true}),
	RG16Float: colorFormat(colorSpec{dataType: DataTypeFloat, bytes: 4,
		render: render(true, true, 4, 2), multisample: true}),
	RGBA8Unorm: colorFormat(colorSpec{dataType: DataTypeUnorm, bytes: 4,
		storage: true, render: render(true, true, 8, 1), multisample: true}),
	RGBA8UnormSrgb: colorFormat(colorSpec{dataType: DataTypeUnorm, bytes: 4,
		render: render(true, true, 8, 1), multisample: true, base: RGBA8Unorm}),
	RGBA8Snorm: colorFormat(colorSpec{dataType: DataTypeSnorm, bytes: 4, storage: true}),
	RGBA8Uint: colorFormat(colorSpec{dataType: DataTypeUint, bytes: 4,
		storage: true, render: render(false, false, 4, 1), multisample: true}),
	RGBA8Sint: colorFormat(colorSpec{dataType: DataTypeSint, bytes: 4,
		storage: true, render: render(false, false, 4, 1), multisample: true}),
	BGRA8Unorm: colorFormat(colorSpec{dataType: DataTypeUnorm, bytes: 4,
		render: render(true, true, 8, 1), multisample: true}),
	BGRA8UnormSrgb: colorFormat(colorSpec{dataType: DataTypeUnorm, bytes: 4,
		render: render(true, true, 8, 1), multisample: true, base: BGRA8Unorm}),

	// Packed 32-bit.
	RGB10A2Uint: colorFormat(colorSpec{dataType: DataTypeUint, bytes: 4,
		render: render(false, false, 8, 4), multisample: true}),
	RGB10A2Unorm: colorFormat(colorSpec{dataType: DataTypeUnorm, bytes: 4,
		render: render(true, true, 8, 4), multisample: true}),
	// Renderability of rg11b10ufloat is additionally gated at runtime by
	// the rg11b10ufloat-renderable feature; the table records the
	// capability the format has when that feature is present.
	RG11B10UFloat: colorFormat(colorSpec{dataType: DataTypeUFloat, bytes: 4,
		render: render(true, true, 8, 4), multisample: true}),
	RGB9E5UFloat: colorFormat(colorSpec{dataType: DataTypeUFloat, bytes: 4}),

	// 64-bit.
	RG32Uint: colorFormat(colorSpec{dataType: DataTypeUint, bytes: 8,
		storage: true, render: render(false, false, 8, 4)}),
	RG32Sint: colorFormat(colorSpec{dataType: DataTypeSint, bytes: 8,
		storage: true, render: render(false, false, 8, 4)}),
	RG32Float: colorFormat(colorSpec{dataType: DataTypeFloat, bytes: 8,
		storage: true, render: render(false, false, 8, 4)}),
	RGBA16Uint: colorFormat(colorSpec{dataType: DataTypeUint, bytes: 8,
		storage: true, render: render(false, false, 8, 2), multisample: true}),
	RGBA16Sint: colorFormat(colorSpec{dataType: DataTypeSint, bytes: 8,
		storage: true, render: render(false, false, 8, 2), multisample: true}),
	RGBA16Float: colorFormat(colorSpec{dataType: DataTypeFloat, bytes: 8,
		storage: true, render: render(true, true, 8, 2), multisample: true}),

	// 128-bit.
	RGBA32Uint: colorFormat(colorSpec{dataType: DataTypeUint, bytes: 16,
		storage: true, render: render(false, false, 16, 4)}),
	RGBA32Sint: colorFormat(colorSpec{dataType: DataTypeSint, bytes: 16,
		storage: true, render: render(false, false, 16, 4)}),
	RGBA32Float: colorFormat(colorSpec{dataType: DataTypeFloat, bytes: 16,
		storage: true, render: render(false, false, 16, 4)}),

	// Depth and stencil.
	Stencil8: {
		BlockWidth: 1, BlockHeight: 1,
		Stencil:     &AspectInfo{Type: DataTypeUint, CopySrc: true, CopyDst: true, Bytes: 1},
		Multisample: true,
	},
	Depth16Unorm: {
		BlockWidth: 1, BlockHeight: 1,
		Depth:       &AspectInfo{Type: DataTypeUnorm, CopySrc: true, CopyDst: true, Bytes: 2},
		Multisample: true,
	},
	Depth24Plus: {
		BlockWidth: 1, BlockHeight: 1,
		// The depth plane has no defined encoding; it can be neither
		// copied nor packed.
		Depth:       &AspectInfo{Type: DataTypeNone},
		Multisample: true,
	},
	Depth24PlusStencil8: {
		BlockWidth: 1, BlockHeight: 1,
		Depth:       &AspectInfo{Type: DataTypeNone},
		Stencil:     &AspectInfo{Type: DataTypeUint, CopySrc: true, CopyDst: true, Bytes: 1},
		Multisample: true,
	},
	Depth32Float: {
		BlockWidth: 1, BlockHeight: 1,
		Depth:       &AspectInfo{Type: DataTypeFloat, CopySrc: true, Bytes: 4},
		Multisample: true,
	},
	Depth32FloatStencil8: {
		BlockWidth: 1, BlockHeight: 1,
		Depth:       &AspectInfo{Type: DataTypeFloat, CopySrc: true, Bytes: 4},
		Stencil:     &AspectInfo{Type: DataTypeUint, CopySrc: true, CopyDst: true, Bytes: 1},
		Multisample: true,
		Feature:     FeatureDepth32FloatStencil8,
	},

	// BC.
	BC1RGBAUnorm:     compressedFormat(4, 4, 8, DataTypeUnorm, FeatureTextureCompressionBC, ""),
	BC1RGBAUnormSrgb: compressedFormat(4, 4, 8, DataTypeUnorm, FeatureTextureCompressionBC, BC1RGBAUnorm),
	BC2RGBAUnorm:     compressedFormat(4, 4, 16, DataTypeUnorm, FeatureTextureCompressionBC, ""),
	BC2RGBAUnormSrgb: compressedFormat(4, 4, 16, DataTypeUnorm, FeatureTextureCompressionBC, BC2RGBAUnorm),
	BC3RGBAUnorm:     compressedFormat(4, 4, 16, DataTypeUnorm, FeatureTextureCompressionBC, ""),
	BC3RGBAUnormSrgb: compressedFormat(4, 4, 16, DataTypeUnorm, FeatureTextureCompressionBC, BC3RGBAUnorm),
	BC4RUnorm:        compressedFormat(4, 4, 8, DataTypeUnorm, FeatureTextureCompressionBC, ""),
	BC4RSnorm:        compressedFormat(4, 4, 8, DataTypeSnorm, FeatureTextureCompressionBC, ""),
	BC5RGUnorm:       compressedFormat(4, 4, 16, DataTypeUnorm, FeatureTextureCompressionBC, ""),
	BC5RGSnorm:       compressedFormat(4, 4, 16, DataTypeSnorm, FeatureTextureCompressionBC, ""),
	BC6HRGBUFloat:    compressedFormat(4, 4, 16, DataTypeUFloat, FeatureTextureCompressionBC, ""),
	BC6HRGBFloat:     compressedFormat(4, 4, 16, DataTypeFloat, FeatureTextureCompressionBC, ""),
	BC7RGBAUnorm:     compressedFormat(4, 4, 16, DataTypeUnorm, FeatureTextureCompressionBC, ""),
	BC7RGBAUnormSrgb: compressedFormat(4, 4, 16, DataTypeUnorm, FeatureTextureCompressionBC, BC7RGBAUnorm),

	// ETC2 / EAC.
	ETC2RGB8Unorm:       compressedFormat(4, 4, 8, DataTypeUnorm, FeatureTextureCompressionETC2, ""),
	ETC2RGB8UnormSrgb:   compressedFormat(4, 4, 8, DataTypeUnorm, FeatureTextureCompressionETC2, ETC2RGB8Unorm),
	ETC2RGB8A1Unorm:     compressedFormat(4, 4, 8, DataTypeUnorm, FeatureTextureCompressionETC2, ""),
	ETC2RGB8A1UnormSrgb: compressedFormat(4, 4, 8, DataTypeUnorm, FeatureTextureCompressionETC2, ETC2RGB8A1Unorm),
	ETC2RGBA8Unorm:      compressedFormat(4, 4, 16, DataTypeUnorm, FeatureTextureCompressionETC2, ""),
	ETC2RGBA8UnormSrgb:  compressedFormat(4, 4, 16, DataTypeUnorm, FeatureTextureCompressionETC2, ETC2RGBA8Unorm),
	EACR11Unorm:         compressedFormat(4, 4, 8, DataTypeUnorm, FeatureTextureCompressionETC2, ""),
	EACR11Snorm:         compressedFormat(4, 4, 8, DataTypeSnorm, FeatureTextureCompressionETC2, ""),
	EACRG11Unorm:        compressedFormat(4, 4, 16, DataTypeUnorm, FeatureTextureCompressionETC2, ""),
	EACRG11Snorm:        compressedFormat(4, 4, 16, DataTypeSnorm, FeatureTextureCompressionETC2, ""),

	// ASTC.
	ASTC4x4Unorm:       compressedFormat(4, 4, 16, DataTypeUnorm, FeatureTextureCompressionASTC, ""),
	ASTC4x4UnormSrgb:   compressedFormat(4, 4, 16, DataTypeUnorm, FeatureTextureCompressionASTC, ASTC4x4Unorm),
	ASTC5x4Unorm:       compressedFormat(5, 4, 16, DataTypeUnorm, FeatureTextureCompressionASTC, ""),
	ASTC5x4UnormSrgb:   compressedFormat(5, 4, 16, DataTypeUnorm, FeatureTextureCompressionASTC, ASTC5x4Unorm),
	ASTC5x5Unorm:       compressedFormat(5, 5, 16, DataTypeUnorm, FeatureTextureCompressionASTC, ""),
	ASTC5x5UnormSrgb:   compressedFormat(5, 5, 16, DataTypeUnorm, FeatureTextureCompressionASTC, ASTC5x5Unorm),
	ASTC6x5Unorm:       compressedFormat(6, 5, 16, DataTypeUnorm, FeatureTextureCompressionASTC, ""),
	ASTC6x5UnormSrgb:   compressedFormat(6, 5, 16, DataTypeUnorm, FeatureTextureCompressionASTC, ASTC6x5Unorm),
	ASTC6x6Unorm:       compressedFormat(6, 6, 16, DataTypeUnorm, FeatureTextureCompressionASTC, ""),
	ASTC6x6UnormSrgb:   compressedFormat(6, 6, 16, DataTypeUnorm, FeatureTextureCompressionASTC, ASTC6x6Unorm),
	ASTC8x5Unorm:       compressedFormat(8, 5, 16, DataTypeUnorm, FeatureTextureCompressionASTC, ""),
	ASTC8x5UnormSrgb:   compressedFormat(8, 5, 16, DataTypeUnorm, FeatureTextureCompressionASTC, ASTC8x5Unorm),
	ASTC8x6Unorm:       compressedFormat(8, 6, 16, DataTypeUnorm, FeatureTextureCompressionASTC, ""),
	ASTC8x6UnormSrgb:   compressedFormat(8, 6, 16, DataTypeUnorm, FeatureTextureCompressionASTC, ASTC8x6Unorm),
	ASTC8x8Unorm:       compressedFormat(8, 8, 16, DataTypeUnorm, FeatureTextureCompressionASTC, ""),
	ASTC8x8UnormSrgb:   compressedFormat(8, 8, 16, DataTypeUnorm, FeatureTextureCompressionASTC, ASTC8x8Unorm),
	ASTC10x5Unorm:      compressedFormat(10, 5, 16, DataTypeUnorm, FeatureTextureCompressionASTC, ""),
	ASTC10x5UnormSrgb:  compressedFormat(10, 5, 16, DataTypeUnorm, FeatureTextureCompressionASTC, ASTC10x5Unorm),
	ASTC10x6Unorm:      compressedFormat(10, 6, 16, DataTypeUnorm, FeatureTextureCompressionASTC, ""),
	ASTC10x6UnormSrgb:  compressedFormat(10, 6, 16, DataTypeUnorm, FeatureTextureCompressionASTC, ASTC10x6Unorm),
	ASTC10x8Unorm:      compressedFormat(10, 8, 16, DataTypeUnorm, FeatureTextureCompressionASTC, ""),
	ASTC10x8UnormSrgb:  compressedFormat(10, 8, 16, DataTypeUnorm, FeatureTextureCompressionASTC, ASTC10x8Unorm),
	ASTC10x10Unorm:     compressedFormat(10, 10, 16, DataTypeUnorm, FeatureTextureCompressionASTC, ""),
	ASTC10x10UnormSrgb: compressedFormat(10, 10, 16, DataTypeUnorm, FeatureTextureCompressionASTC, ASTC10x10Unorm),
	ASTC12x10Unorm:     compressedFormat(12, 10, 16, DataTypeUnorm, FeatureTextureCompressionASTC, ""),
	ASTC12x10UnormSrgb: compressedFormat(12, 10, 16, DataTypeUnorm, FeatureTextureCompressionASTC, ASTC12x10Unorm),
	ASTC12x12Unorm:     compressedFormat(12, 12, 16, DataTypeUnorm, FeatureTextureCompressionASTC, ""),
	ASTC12x12UnormSrgb: compressedFormat(12, 12, 16, DataTypeUnorm, FeatureTextureCompressionASTC, ASTC12x12Unorm),
}
