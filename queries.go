package texel

// IsColor reports whether f has a color aspect.
func (f Format) IsColor() bool { return f.Info().Color != nil }

// IsDepth reports whether f has a depth aspect.
func (f Format) IsDepth() bool { return f.Info().Depth != nil }

// IsStencil reports whether f has a stencil aspect.
func (f Format) IsStencil() bool { return f.Info().Stencil != nil }

// IsDepthOrStencil reports whether f has a depth or stencil aspect.
func (f Format) IsDepthOrStencil() bool {
	info := f.Info()
	return info.Depth != nil || info.Stencil != nil
}

// IsCompressed reports whether f is block-compressed.
func (f Format) IsCompressed() bool {
	info := f.Info()
	return info.BlockWidth > 1 || info.BlockHeight > 1
}

// IsRegular reports whether f is an uncompressed color format.
func (f Format) IsRegular() bool { return f.IsColor() && !f.IsCompressed() }

// HasAspect reports whether f carries the planes addressed by a.
func (f Format) HasAspect(a Aspect) bool {
	info := f.Info()
	switch a {
	case AspectDepthOnly:
		return info.Depth != nil
	case AspectStencilOnly:
		return info.Stencil != nil
	}
	return true
}

// AspectFormat resolves the per-aspect format of f viewed through aspect a:
// the format whose texels actually back that plane. Combined depth/stencil
// formats resolve to their per-plane formats; single-aspect formats resolve
// to themselves. Requesting an aspect the format does not have panics.
func (f Format) AspectFormat(a Aspect) Format {
	if !f.HasAspect(a) {
		panic("texel: format " + string(f) + " has no " + a.String() + " aspect")
	}
	switch f {
	case Depth24PlusStencil8:
		switch a {
		case AspectDepthOnly:
			return Depth24Plus
		case AspectStencilOnly:
			return Stencil8
		}
	case Depth32FloatStencil8:
		switch a {
		case AspectDepthOnly:
			return Depth32Float
		case AspectStencilOnly:
			return Stencil8
		}
	}
	return f
}

// SampleType returns how a shader samples the given aspect of f.
// Requesting AspectAll on a combined depth/stencil format panics: the two
// planes sample differently and the caller must pick one.
func (f Format) SampleType(a Aspect) SampleType {
	info := f.Info()
	switch a {
	case AspectDepthOnly:
		if info.Depth == nil {
			panic("texel: format " + string(f) + " has no depth aspect")
		}
		return SampleTypeDepth
	case AspectStencilOnly:
		if info.Stencil == nil {
			panic("texel: format " + string(f) + " has no stencil aspect")
		}
		return SampleTypeUint
	}
	if info.Depth != nil && info.Stencil != nil {
		panic("texel: sample type of " + string(f) + " is per-aspect; resolve the aspect first")
	}
	if info.Depth != nil {
		return SampleTypeDepth
	}
	if info.Stencil != nil {
		return SampleTypeUint
	}
	switch info.Color.Type {
	case DataTypeUint:
		return SampleTypeUint
	case DataTypeSint:
		return SampleTypeSint
	}
	switch f {
	case R32Float, RG32Float, RGBA32Float:
		// Filterable only with the float32-filterable feature.
		return SampleTypeUnfilterableFloat
	}
	return SampleTypeFloat
}

// ViewCompatible reports whether a texture of format f may be viewed as
// format other. Identical formats are always compatible; outside
// compatibility mode a format and its sRGB sibling are too.
func (f Format) ViewCompatible(compatibilityMode bool, other Format) bool {
	if f == other {
		return true
	}
	if compatibilityMode {
		return false
	}
	return f.Info().BaseFormat == other || other.Info().BaseFormat == f
}

// DimensionCompatible reports whether a texture of format f may be created
// with the given dimension. 1D and 3D textures take neither compressed nor
// depth/stencil formats.
func (f Format) DimensionCompatible(d Dimension) bool {
	if d == Dimension2D {
		return true
	}
	return !f.IsCompressed() && !f.IsDepthOrStencil()
}

// CopyDirection distinguishes the two directions of a linear-data copy.
type CopyDirection uint8

// Copy directions.
const (
	// CopyBufferToTexture is a write of linear data into a texture.
	CopyBufferToTexture CopyDirection = iota

	// CopyTextureToBuffer is a readback of a texture into linear data.
	CopyTextureToBuffer
)

// DepthStencilCopySupported reports whether the given buffer/texture copy
// direction is allowed for an aspect of a depth or stencil format. The
// legality is an allow-list recorded in the aspect capability table
// (depth32float, for example, reads back but cannot be written).
// AspectAll is only valid on single-aspect formats; on combined formats it
// reports false since a copy must address one plane.
func DepthStencilCopySupported(dir CopyDirection, f Format, a Aspect) bool {
	info := f.Info()
	var aspect *AspectInfo
	switch a {
	case AspectDepthOnly:
		aspect = info.Depth
	case AspectStencilOnly:
		aspect = info.Stencil
	case AspectAll:
		if info.Depth != nil && info.Stencil != nil {
			return false
		}
		if aspect = info.Depth; aspect == nil {
			aspect = info.Stencil
		}
	}
	if aspect == nil {
		return false
	}
	if dir == CopyBufferToTexture {
		return aspect.CopyDst
	}
	return aspect.CopySrc
}

// BytesPerSample computes the render-target byte budget consumed by one
// sample across the given color attachment formats. The sum is
// order-dependent: each format's byte cost lands at the running total
// rounded up to that format's alignment. Every format must be color
// renderable; others panic.
func BytesPerSample(formats []Format) int {
	total := 0
	for _, f := range formats {
		ri := f.Info().ColorRender
		if ri == nil {
			panic("texel: format " + string(f) + " is not color renderable")
		}
		total = alignUp(total, ri.Alignment) + ri.ByteCost
	}
	return total
}

func alignUp(n, align int) int {
	return (n + align - 1) / align * align
}
