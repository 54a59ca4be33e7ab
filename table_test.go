package texel

import "testing"

// The table must be internally consistent for every declared format.
func TestFormatTableTotality(t *testing.T) {
	all := All()
	if len(all) != len(formatTable) {
		t.Fatalf("All() returned %d formats, table has %d", len(all), len(formatTable))
	}
	for _, f := range all {
		info := f.Info()
		if info.BlockWidth < 1 || info.BlockHeight < 1 {
			t.Errorf("%s: block %dx%d", f, info.BlockWidth, info.BlockHeight)
		}
		if info.Color == nil && info.Depth == nil && info.Stencil == nil {
			t.Errorf("%s: no aspects", f)
		}
		if info.Color != nil && (info.Depth != nil || info.Stencil != nil) {
			t.Errorf("%s: mixes color and depth/stencil aspects", f)
		}
		if info.ColorRender != nil && info.Color == nil {
			t.Errorf("%s: color renderable without a color aspect", f)
		}
		if info.ColorRender != nil {
			if info.ColorRender.ByteCost <= 0 || info.ColorRender.Alignment <= 0 {
				t.Errorf("%s: render byte cost %d alignment %d",
					f, info.ColorRender.ByteCost, info.ColorRender.Alignment)
			}
		}
		if info.BaseFormat != "" {
			base := info.BaseFormat.Info()
			if base.BaseFormat != "" {
				t.Errorf("%s: base format %s is itself sRGB", f, info.BaseFormat)
			}
			if base.Color == nil || info.Color == nil || base.Color.Bytes != info.Color.Bytes {
				t.Errorf("%s: base format %s differs in footprint", f, info.BaseFormat)
			}
		}
		if f.IsCompressed() && info.ColorRender != nil {
			t.Errorf("%s: compressed format marked renderable", f)
		}
	}
}

func TestFormatInfoKnownEntries(t *testing.T) {
	info := RGBA8Unorm.Info()
	if info.Color.Bytes != 4 {
		t.Errorf("rgba8unorm bytes = %d, want 4", info.Color.Bytes)
	}
	if info.ColorRender == nil || info.ColorRender.ByteCost != 8 {
		t.Errorf("rgba8unorm render byte cost = %+v, want 8", info.ColorRender)
	}
	if !info.Color.Storage || !info.Multisample {
		t.Errorf("rgba8unorm storage=%v multisample=%v", info.Color.Storage, info.Multisample)
	}

	if b := RGBA32Float.Info().BytesPerBlock(); b != 16 {
		t.Errorf("rgba32float bytes per block = %d, want 16", b)
	}
	if b := BC1RGBAUnorm.Info().BytesPerBlock(); b != 8 {
		t.Errorf("bc1 bytes per block = %d, want 8", b)
	}
	if w := ASTC12x12Unorm.Info().BlockWidth; w != 12 {
		t.Errorf("astc-12x12 block width = %d, want 12", w)
	}

	if b := Depth24PlusStencil8.Info().BytesPerBlock(); b != 0 {
		t.Errorf("depth24plus-stencil8 bytes per block = %d, want 0", b)
	}
	if b := Depth16Unorm.Info().BytesPerBlock(); b != 2 {
		t.Errorf("depth16unorm bytes per block = %d, want 2", b)
	}

	if f := Depth32FloatStencil8.Info().Feature; f != FeatureDepth32FloatStencil8 {
		t.Errorf("depth32float-stencil8 feature = %q", f)
	}
	if f := RGBA8Unorm.Info().Feature; f != "" {
		t.Errorf("rgba8unorm feature = %q, want core", f)
	}
}

func TestFormatInfoUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Info() on an unknown format did not panic")
		}
	}()
	Format("r7unorm").Info()
}

func TestSRGBSiblings(t *testing.T) {
	pairs := map[Format]Format{
		RGBA8UnormSrgb:    RGBA8Unorm,
		BGRA8UnormSrgb:    BGRA8Unorm,
		BC1RGBAUnormSrgb:  BC1RGBAUnorm,
		BC7RGBAUnormSrgb:  BC7RGBAUnorm,
		ETC2RGB8UnormSrgb: ETC2RGB8Unorm,
		ASTC4x4UnormSrgb:  ASTC4x4Unorm,
	}
	for srgb, base := range pairs {
		if got := srgb.Info().BaseFormat; got != base {
			t.Errorf("%s base = %q, want %q", srgb, got, base)
		}
	}
}
