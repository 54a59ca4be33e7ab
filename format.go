package texel

import "sort"

// Format identifies a texture format by its WebGPU string name.
type Format string

// Aspect selects the plane of a texture addressed by a view or copy.
type Aspect uint8

// Texture aspects.
const (
	// AspectAll addresses every aspect of the format.
	AspectAll Aspect = iota

	// AspectDepthOnly addresses only the depth plane.
	AspectDepthOnly

	// AspectStencilOnly addresses only the stencil plane.
	AspectStencilOnly
)

// String returns the WebGPU name of the aspect.
func (a Aspect) String() string {
	switch a {
	case AspectAll:
		return "all"
	case AspectDepthOnly:
		return "depth-only"
	case AspectStencilOnly:
		return "stencil-only"
	}
	return "Aspect(?)"
}

// Dimension is a texture dimensionality.
type Dimension uint8

// Texture dimensions.
const (
	Dimension1D Dimension = iota
	Dimension2D
	Dimension3D
)

// String returns the WebGPU name of the dimension.
func (d Dimension) String() string {
	switch d {
	case Dimension1D:
		return "1d"
	case Dimension2D:
		return "2d"
	case Dimension3D:
		return "3d"
	}
	return "Dimension(?)"
}

// SampleType describes how a shader may sample an aspect of a format.
type SampleType uint8

// Sample types.
const (
	// SampleTypeNone marks an aspect that cannot be sampled.
	SampleTypeNone SampleType = iota

	// SampleTypeFloat is filterable float sampling.
	SampleTypeFloat

	// SampleTypeUnfilterableFloat is float sampling without filtering
	// (32-bit float formats without the float32-filterable feature).
	SampleTypeUnfilterableFloat

	// SampleTypeUint is unsigned integer sampling.
	SampleTypeUint

	// SampleTypeSint is signed integer sampling.
	SampleTypeSint

	// SampleTypeDepth is depth-comparison sampling.
	SampleTypeDepth
)

// String returns the WebGPU name of the sample type.
func (s SampleType) String() string {
	switch s {
	case SampleTypeNone:
		return "none"
	case SampleTypeFloat:
		return "float"
	case SampleTypeUnfilterableFloat:
		return "unfilterable-float"
	case SampleTypeUint:
		return "uint"
	case SampleTypeSint:
		return "sint"
	case SampleTypeDepth:
		return "depth"
	}
	return "SampleType(?)"
}

// AspectInfo describes one aspect (color, depth, or stencil) of a format.
type AspectInfo struct {
	// Type is the numeric representation of the aspect's components.
	// DataTypeNone marks an aspect with no defined encoding
	// (depth24plus's depth plane).
	Type DataType

	// CopySrc and CopyDst report buffer/texture copy capability for this
	// aspect.
	CopySrc, CopyDst bool

	// Storage reports storage-texture (write) capability; ReadWriteStorage
	// additionally allows read-write access.
	Storage, ReadWriteStorage bool

	// Bytes is the aspect's bytes per texel block; 0 when the aspect has
	// no defined memory footprint.
	Bytes int
}

// RenderInfo describes color render-target capability of a format.
type RenderInfo struct {
	// Blend reports blendability; Resolve reports multisample-resolve
	// capability.
	Blend, Resolve bool

	// ByteCost is the format's render target pixel byte cost; Alignment is
	// its render target component alignment. Both feed the per-sample byte
	// budget computed by BytesPerSample.
	ByteCost, Alignment int
}

// FormatInfo is the format table entry for one texture format. Every field
// is always present: inapplicable capabilities hold their zero value (nil
// sub-descriptors, empty feature) rather than being absent, so callers
// never distinguish "missing" from "not applicable".
type FormatInfo struct {
	// BlockWidth and BlockHeight are the texel block footprint (1x1 for
	// all uncompressed formats).
	BlockWidth, BlockHeight int

	// Color, Depth, and Stencil describe the aspects the format has; nil
	// for aspects it lacks.
	Color, Depth, Stencil *AspectInfo

	// ColorRender is non-nil when the format is usable as a color render
	// target.
	ColorRender *RenderInfo

	// Multisample reports multisampled-texture capability.
	Multisample bool

	// Feature names the GPU feature gating the format's availability, or
	// is empty for core formats.
	Feature string

	// BaseFormat is the non-sRGB sibling used for view compatibility, or
	// empty when the format is its own base.
	BaseFormat Format
}

// BytesPerBlock returns the bytes per texel block of the format's sole
// memory-backed aspect. It returns 0 when the format has no single defined
// footprint: combined depth/stencil formats, and formats whose aspect has
// no defined encoding.
func (i FormatInfo) BytesPerBlock() int {
	switch {
	case i.Color != nil:
		return i.Color.Bytes
	case i.Depth != nil && i.Stencil != nil:
		return 0
	case i.Depth != nil:
		return i.Depth.Bytes
	case i.Stencil != nil:
		return i.Stencil.Bytes
	}
	return 0
}

// Info returns the format table entry for f. It is total over the declared
// formats and panics on an identifier outside the table, which indicates a
// caller bug.
func (f Format) Info() FormatInfo {
	info, ok := formatTable[f]
	if !ok {
		panic("texel: unknown texture format " + string(f))
	}
	return info
}

// All returns every declared format in lexical order.
func All() []Format {
	out := make([]Format, 0, len(formatTable))
	for f := range formatTable {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// colorSpec is the sparse per-entry description merged over the regular
// color format defaults by colorFormat.
type colorSpec struct {
	dataType    DataType
	bytes       int
	storage     bool
	rwStorage   bool
	render      *RenderInfo
	multisample bool
	feature     string
	base        Format
}

// colorFormat builds a regular (1x1 block, copyable both ways) color
// format entry from its sparse spec.
func colorFormat(s colorSpec) FormatInfo {
	return FormatInfo{
		BlockWidth:  1,
		BlockHeight: 1,
		Color: &AspectInfo{
			Type:             s.dataType,
			CopySrc:          true,
			CopyDst:          true,
			Storage:          s.storage,
			ReadWriteStorage: s.rwStorage,
			Bytes:            s.bytes,
		},
		ColorRender: s.render,
		Multisample: s.multisample,
		Feature:     s.feature,
		BaseFormat:  s.base,
	}
}

// render builds the ColorRender sub-descriptor.
func render(blend, resolve bool, byteCost, alignment int) *RenderInfo {
	return &RenderInfo{Blend: blend, Resolve: resolve, ByteCost: byteCost, Alignment: alignment}
}

// compressedFormat builds a block-compressed color format entry.
// Compressed formats copy both ways but never render, store, or
// multisample.
func compressedFormat(w, h, bytes int, dt DataType, feature string, base Format) FormatInfo {
	return FormatInfo{
		BlockWidth:  w,
		BlockHeight: h,
		Color: &AspectInfo{
			Type:    dt,
			CopySrc: true,
			CopyDst: true,
			Bytes:   bytes,
		},
		Feature:    feature,
		BaseFormat: base,
	}
}
