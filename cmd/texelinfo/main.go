// Command texelinfo inspects texture formats and packs image pixels into
// their texel byte layout.
//
// Usage:
//
//	texelinfo -list
//	texelinfo -format rgba8unorm
//	texelinfo -format rgba8unorm -image in.png -out out.bin
//
// PNG and TIFF images are accepted.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"log"
	"log/slog"
	"os"

	_ "golang.org/x/image/tiff"

	"github.com/gogpu/texel"
)

func main() {
	var (
		list    = flag.Bool("list", false, "list every declared format")
		format  = flag.String("format", "", "format to inspect")
		imgPath = flag.String("image", "", "image to pack with -format")
		outPath = flag.String("out", "", "output file for packed texels")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		texel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	switch {
	case *list:
		listFormats()
	case *format != "" && *imgPath != "":
		if *outPath == "" {
			log.Fatal("packing needs -out")
		}
		if err := packImage(texel.Format(*format), *imgPath, *outPath); err != nil {
			log.Fatalf("Failed to pack: %v", err)
		}
	case *format != "":
		describeFormat(texel.Format(*format))
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func listFormats() {
	for _, f := range texel.All() {
		info := f.Info()
		kind := "color"
		switch {
		case info.Depth != nil && info.Stencil != nil:
			kind = "depth+stencil"
		case info.Depth != nil:
			kind = "depth"
		case info.Stencil != nil:
			kind = "stencil"
		case f.IsCompressed():
			kind = fmt.Sprintf("compressed %dx%d", info.BlockWidth, info.BlockHeight)
		}
		fmt.Printf("%-28s %-16s %3d bytes/block\n", f, kind, info.BytesPerBlock())
	}
}

func describeFormat(f texel.Format) {
	info := f.Info()
	fmt.Printf("%s\n", f)
	fmt.Printf("  block:        %dx%d, %d bytes\n", info.BlockWidth, info.BlockHeight, info.BytesPerBlock())
	if info.Color != nil {
		fmt.Printf("  color:        %s, storage=%v, read-write=%v\n",
			info.Color.Type, info.Color.Storage, info.Color.ReadWriteStorage)
	}
	if info.Depth != nil {
		fmt.Printf("  depth:        %s, copy src=%v dst=%v\n",
			info.Depth.Type, info.Depth.CopySrc, info.Depth.CopyDst)
	}
	if info.Stencil != nil {
		fmt.Printf("  stencil:      %s, copy src=%v dst=%v\n",
			info.Stencil.Type, info.Stencil.CopySrc, info.Stencil.CopyDst)
	}
	if info.ColorRender != nil {
		fmt.Printf("  render:       blend=%v resolve=%v byte cost=%d align=%d\n",
			info.ColorRender.Blend, info.ColorRender.Resolve,
			info.ColorRender.ByteCost, info.ColorRender.Alignment)
	}
	fmt.Printf("  multisample:  %v\n", info.Multisample)
	if info.Feature != "" {
		fmt.Printf("  feature:      %s\n", info.Feature)
	}
	if info.BaseFormat != "" {
		fmt.Printf("  base format:  %s\n", info.BaseFormat)
	}

	if !f.IsRegular() {
		return
	}
	rep := texel.Rep(f)
	fmt.Printf("  components:\n")
	for _, c := range rep.ComponentOrder {
		ci := rep.ComponentInfo[c]
		rng := rep.NumericRange(c)
		fmt.Printf("    %-8s %s", c, ci.DataType)
		if ci.BitLength > 0 {
			fmt.Printf(":%d", ci.BitLength)
		}
		fmt.Printf("  range [%v, %v]\n", rng.Min, rng.Max)
	}
}

// packImage decodes an image, packs every pixel into the format's texel
// layout row by row, and writes the raw texels to outPath.
func packImage(f texel.Format, imgPath, outPath string) error {
	if !f.IsRegular() {
		return fmt.Errorf("%s is not an uncompressed color format", f)
	}
	rep := texel.Rep(f)

	in, err := os.Open(imgPath)
	if err != nil {
		return err
	}
	defer in.Close()
	img, kind, err := image.Decode(in)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", imgPath, err)
	}

	bounds := img.Bounds()
	texel.Logger().Debug("packing image",
		"image", imgPath, "codec", kind, "format", string(f),
		"width", bounds.Dx(), "height", bounds.Dy())

	var out []byte
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out = append(out, rep.Pack(pixelComponents(rep, img.At(x, y)))...)
		}
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return err
	}
	fmt.Printf("%s: %dx%d -> %d bytes of %s\n",
		outPath, bounds.Dx(), bounds.Dy(), len(out), f)
	return nil
}

// pixelComponents converts one image pixel into the component values the
// format's representation expects: normalized formats take [0, 1] scaled
// channels, integer formats the raw 16-bit channel values clamped to the
// component range, float formats the normalized value as-is.
func pixelComponents(rep *texel.Representation, px color.Color) texel.Components {
	r, g, b, a := px.RGBA()
	channels := map[texel.Component]float64{
		texel.R: float64(r) / 0xFFFF,
		texel.G: float64(g) / 0xFFFF,
		texel.B: float64(b) / 0xFFFF,
		texel.A: float64(a) / 0xFFFF,
	}
	out := make(texel.Components, len(rep.ComponentOrder))
	for _, c := range rep.ComponentOrder {
		v := channels[c]
		info := rep.ComponentInfo[c]
		switch info.DataType {
		case texel.DataTypeSnorm:
			// Images carry no negative channels; unorm maps directly.
			out[c] = v
		case texel.DataTypeUint, texel.DataTypeSint:
			rng := rep.NumericRange(c)
			scaled := v * rng.FiniteMax
			out[c] = float64(int64(scaled))
		default:
			out[c] = v
		}
	}
	return out
}
