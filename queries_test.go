package texel

import "testing"

func TestAspectPredicates(t *testing.T) {
	tests := []struct {
		f                            Format
		color, depth, stencil, compr bool
	}{
		{RGBA8Unorm, true, false, false, false},
		{Depth32Float, false, true, false, false},
		{Stencil8, false, false, true, false},
		{Depth24PlusStencil8, false, true, true, false},
		{BC3RGBAUnorm, true, false, false, true},
		{ASTC10x8UnormSrgb, true, false, false, true},
	}
	for _, tt := range tests {
		if got := tt.f.IsColor(); got != tt.color {
			t.Errorf("%s.IsColor() = %v", tt.f, got)
		}
		if got := tt.f.IsDepth(); got != tt.depth {
			t.Errorf("%s.IsDepth() = %v", tt.f, got)
		}
		if got := tt.f.IsStencil(); got != tt.stencil {
			t.Errorf("%s.IsStencil() = %v", tt.f, got)
		}
		if got := tt.f.IsCompressed(); got != tt.compr {
			t.Errorf("%s.IsCompressed() = %v", tt.f, got)
		}
		if got := tt.f.IsRegular(); got != (tt.color && !tt.compr) {
			t.Errorf("%s.IsRegular() = %v", tt.f, got)
		}
	}
}

func TestAspectFormat(t *testing.T) {
	tests := []struct {
		f      Format
		aspect Aspect
		want   Format
	}{
		{Depth24PlusStencil8, AspectDepthOnly, Depth24Plus},
		{Depth24PlusStencil8, AspectStencilOnly, Stencil8},
		{Depth32FloatStencil8, AspectDepthOnly, Depth32Float},
		{Depth32FloatStencil8, AspectStencilOnly, Stencil8},
		{Depth32Float, AspectDepthOnly, Depth32Float},
		{Depth32Float, AspectAll, Depth32Float},
		{Stencil8, AspectStencilOnly, Stencil8},
		{RGBA8Unorm, AspectAll, RGBA8Unorm},
	}
	for _, tt := range tests {
		if got := tt.f.AspectFormat(tt.aspect); got != tt.want {
			t.Errorf("%s.AspectFormat(%s) = %s, want %s", tt.f, tt.aspect, got, tt.want)
		}
	}
}

func TestAspectFormatMissingAspectPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("depth aspect of a color format did not panic")
		}
	}()
	RGBA8Unorm.AspectFormat(AspectDepthOnly)
}

func TestSampleTypeQuery(t *testing.T) {
	tests := []struct {
		f      Format
		aspect Aspect
		want   SampleType
	}{
		{RGBA8Unorm, AspectAll, SampleTypeFloat},
		{RGBA16Float, AspectAll, SampleTypeFloat},
		{R32Float, AspectAll, SampleTypeUnfilterableFloat},
		{RG32Float, AspectAll, SampleTypeUnfilterableFloat},
		{RGBA32Float, AspectAll, SampleTypeUnfilterableFloat},
		{R8Uint, AspectAll, SampleTypeUint},
		{RGBA8Sint, AspectAll, SampleTypeSint},
		{Depth16Unorm, AspectAll, SampleTypeDepth},
		{Depth24PlusStencil8, AspectDepthOnly, SampleTypeDepth},
		{Depth24PlusStencil8, AspectStencilOnly, SampleTypeUint},
		{Stencil8, AspectAll, SampleTypeUint},
	}
	for _, tt := range tests {
		if got := tt.f.SampleType(tt.aspect); got != tt.want {
			t.Errorf("%s.SampleType(%s) = %s, want %s", tt.f, tt.aspect, got, tt.want)
		}
	}
}

func TestSampleTypeCombinedAllPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("AspectAll on a combined depth/stencil format did not panic")
		}
	}()
	Depth24PlusStencil8.SampleType(AspectAll)
}

func TestViewCompatible(t *testing.T) {
	tests := []struct {
		f, other Format
		compat   bool
		want     bool
	}{
		{RGBA8Unorm, RGBA8Unorm, false, true},
		{RGBA8Unorm, RGBA8UnormSrgb, false, true},
		{RGBA8UnormSrgb, RGBA8Unorm, false, true},
		{RGBA8Unorm, RGBA8UnormSrgb, true, false},
		{RGBA8Unorm, BGRA8Unorm, false, false},
		{BC1RGBAUnorm, BC1RGBAUnormSrgb, false, true},
		{Depth24Plus, Depth24Plus, true, true},
	}
	for _, tt := range tests {
		if got := tt.f.ViewCompatible(tt.compat, tt.other); got != tt.want {
			t.Errorf("%s.ViewCompatible(%v, %s) = %v, want %v",
				tt.f, tt.compat, tt.other, got, tt.want)
		}
	}
}

func TestDimensionCompatible(t *testing.T) {
	tests := []struct {
		f    Format
		d    Dimension
		want bool
	}{
		{RGBA8Unorm, Dimension1D, true},
		{RGBA8Unorm, Dimension2D, true},
		{RGBA8Unorm, Dimension3D, true},
		{Depth32Float, Dimension2D, true},
		{Depth32Float, Dimension1D, false},
		{Depth32Float, Dimension3D, false},
		{BC1RGBAUnorm, Dimension3D, false},
		{BC1RGBAUnorm, Dimension2D, true},
	}
	for _, tt := range tests {
		if got := tt.f.DimensionCompatible(tt.d); got != tt.want {
			t.Errorf("%s.DimensionCompatible(%s) = %v, want %v", tt.f, tt.d, got, tt.want)
		}
	}
}

func TestDepthStencilCopySupported(t *testing.T) {
	tests := []struct {
		dir    CopyDirection
		f      Format
		aspect Aspect
		want   bool
	}{
		{CopyTextureToBuffer, Depth32Float, AspectAll, true},
		{CopyTextureToBuffer, Depth32Float, AspectDepthOnly, true},
		{CopyBufferToTexture, Depth32Float, AspectDepthOnly, false},
		{CopyTextureToBuffer, Depth16Unorm, AspectDepthOnly, true},
		{CopyBufferToTexture, Depth16Unorm, AspectDepthOnly, true},
		{CopyTextureToBuffer, Depth24Plus, AspectDepthOnly, false},
		{CopyBufferToTexture, Depth24Plus, AspectDepthOnly, false},
		{CopyTextureToBuffer, Stencil8, AspectAll, true},
		{CopyBufferToTexture, Stencil8, AspectStencilOnly, true},
		{CopyTextureToBuffer, Depth24PlusStencil8, AspectStencilOnly, true},
		{CopyBufferToTexture, Depth24PlusStencil8, AspectStencilOnly, true},
		{CopyTextureToBuffer, Depth24PlusStencil8, AspectDepthOnly, false},
		{CopyTextureToBuffer, Depth24PlusStencil8, AspectAll, false},
		{CopyTextureToBuffer, Depth32FloatStencil8, AspectDepthOnly, true},
		{CopyBufferToTexture, Depth32FloatStencil8, AspectDepthOnly, false},
	}
	for _, tt := range tests {
		if got := DepthStencilCopySupported(tt.dir, tt.f, tt.aspect); got != tt.want {
			t.Errorf("DepthStencilCopySupported(%d, %s, %s) = %v, want %v",
				tt.dir, tt.f, tt.aspect, got, tt.want)
		}
	}
}

func TestBytesPerSample(t *testing.T) {
	tests := []struct {
		name    string
		formats []Format
		want    int
	}{
		{"empty", nil, 0},
		{"single rgba8", []Format{RGBA8Unorm}, 8},
		{"two rgba8", []Format{RGBA8Unorm, RGBA8Unorm}, 16},
		// r32float costs 4 at alignment 4; rgba8unorm then aligns from 4.
		{"r32f then rgba8", []Format{R32Float, RGBA8Unorm}, 12},
		{"r8 then r32f", []Format{R8Unorm, R32Float}, 8},
		{"rgba16f", []Format{RGBA16Float}, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BytesPerSample(tt.formats); got != tt.want {
				t.Errorf("BytesPerSample(%v) = %d, want %d", tt.formats, got, tt.want)
			}
		})
	}
}

func TestBytesPerSampleNonRenderablePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("non-renderable format did not panic")
		}
	}()
	BytesPerSample([]Format{RGBA8Snorm})
}
