package texel

import "github.com/gogpu/gputypes"

// FromGPUTextureFormat converts a gputypes texture format into its texel
// Format. The boolean reports whether the value is known.
func FromGPUTextureFormat(f gputypes.TextureFormat) (Format, bool) {
	switch f {
	case gputypes.TextureFormatR8Unorm:
		return R8Unorm, true
	case gputypes.TextureFormatRGBA8Unorm:
		return RGBA8Unorm, true
	case gputypes.TextureFormatBGRA8Unorm:
		return BGRA8Unorm, true
	case gputypes.TextureFormatDepth24PlusStencil8:
		return Depth24PlusStencil8, true
	}
	return "", false
}

// GPUTextureFormat converts f into the gputypes enumeration. Formats the
// enumeration does not define map to TextureFormatUndefined with ok false.
func GPUTextureFormat(f Format) (gputypes.TextureFormat, bool) {
	switch f {
	case R8Unorm:
		return gputypes.TextureFormatR8Unorm, true
	case RGBA8Unorm:
		return gputypes.TextureFormatRGBA8Unorm, true
	case BGRA8Unorm:
		return gputypes.TextureFormatBGRA8Unorm, true
	case Depth24PlusStencil8:
		return gputypes.TextureFormatDepth24PlusStencil8, true
	}
	return gputypes.TextureFormatUndefined, false
}
