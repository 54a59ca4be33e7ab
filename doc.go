// Package texel describes GPU texture formats and converts texel data
// between shader-visible numbers and packed bytes.
//
// # Overview
//
// texel is a pure Go texture format and numeric codec library for the
// GoGPU ecosystem. It carries a declarative table of every WebGPU texture
// format (block footprint, per-aspect capabilities, render and multisample
// capability, feature gates) and, for each packable format, a texel
// representation that encodes, decodes, packs, and unpacks component
// values bit-exactly.
//
// # Quick Start
//
//	import "github.com/gogpu/texel"
//
//	// Inspect a format.
//	info := texel.RGBA8Unorm.Info()
//	_ = info.Color.Bytes // 4
//
//	// Pack component values into texel bytes.
//	rep := texel.Rep(texel.RGBA8Unorm)
//	data := rep.Pack(texel.Components{
//		texel.R: 1, texel.G: 0.5, texel.B: 0, texel.A: 1,
//	})
//
//	// And back to per-component bit patterns.
//	bits := rep.UnpackBits(data)
//
// # Architecture
//
// The library is organized into:
//   - Root package: format table and queries, texel representations,
//     normalized/integer codecs, packed codecs (rgb9e5, rg11b10, rgb10a2,
//     the pack2x16/pack4x8 family), linear copy layout helpers
//   - fp: bit-level codecs for arbitrary float layouts, ULP distance,
//     correctly-rounded f16 enumeration, comparison intervals
//   - compare: typed scalar/vector/matrix values and expectation matching
//     for harnesses that judge observed GPU results
//
// # Error Model
//
// Precondition violations (out-of-range values, operations on components
// with no defined encoding, unknown format identifiers) panic immediately:
// they indicate bugs in the calling code, not runtime conditions. Checks
// that answer questions ("does this format support X?") return values and
// never panic. Expectation mismatches in the compare package are ordinary
// results, not errors.
//
// # Concurrency
//
// All tables are built at package load and immutable afterwards; every
// operation is a pure function of its inputs. The package is safe for
// unsynchronized concurrent use.
package texel
