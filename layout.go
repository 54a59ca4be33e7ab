package texel

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// BytesPerRowAlignment is the required alignment of a copy's bytes-per-row
// stride in buffer/texture transfers.
const BytesPerRowAlignment = 256

// BytesInACompleteRow returns the number of bytes one complete row of
// texel blocks occupies when copying copyWidth texels of format f.
// copyWidth must be a multiple of the format's block width.
func BytesInACompleteRow(copyWidth uint32, f Format) uint64 {
	info := f.Info()
	if copyWidth%uint32(info.BlockWidth) != 0 {
		panic(fmt.Sprintf("texel: copy width %d is not a multiple of %s's block width %d",
			copyWidth, f, info.BlockWidth))
	}
	if info.BytesPerBlock() == 0 {
		panic("texel: " + string(f) + " has no single block footprint; copy one aspect at a time")
	}
	return uint64(copyWidth) / uint64(info.BlockWidth) * uint64(info.BytesPerBlock())
}

// RequiredBytesInCopy returns the minimum buffer span (past the layout
// offset) a linear copy of the given extent needs. The last row of the
// last image is a short read: it contributes only its actual block bytes,
// not the full bytes-per-row stride, and interior images contribute
// rows-per-image full strides each.
//
// The extent must be aligned to the format's block footprint, and the
// layout must carry a bytes-per-row (and, for multi-image copies, a
// rows-per-image) large enough for the extent; violations panic.
func RequiredBytesInCopy(layout gputypes.TextureDataLayout, f Format, size gputypes.Extent3D) uint64 {
	info := f.Info()
	if size.Width%uint32(info.BlockWidth) != 0 || size.Height%uint32(info.BlockHeight) != 0 {
		panic(fmt.Sprintf("texel: copy extent %dx%d is not a multiple of %s's block size %dx%d",
			size.Width, size.Height, f, info.BlockWidth, info.BlockHeight))
	}
	if info.BytesPerBlock() == 0 {
		panic("texel: " + string(f) + " has no single block footprint; copy one aspect at a time")
	}
	widthBlocks := uint64(size.Width) / uint64(info.BlockWidth)
	heightBlocks := uint64(size.Height) / uint64(info.BlockHeight)
	if widthBlocks == 0 || heightBlocks == 0 || size.DepthOrArrayLayers == 0 {
		return 0
	}

	bytesInLastRow := widthBlocks * uint64(info.BytesPerBlock())
	bytesPerRow := uint64(layout.BytesPerRow)
	rowsPerImage := uint64(layout.RowsPerImage)
	if heightBlocks > 1 || size.DepthOrArrayLayers > 1 {
		if bytesPerRow < bytesInLastRow {
			panic(fmt.Sprintf("texel: bytes per row %d is below the row size %d", bytesPerRow, bytesInLastRow))
		}
	}
	if size.DepthOrArrayLayers > 1 && rowsPerImage < heightBlocks {
		panic(fmt.Sprintf("texel: rows per image %d is below the copy height %d blocks", rowsPerImage, heightBlocks))
	}

	total := uint64(size.DepthOrArrayLayers-1) * rowsPerImage * bytesPerRow
	total += (heightBlocks - 1) * bytesPerRow
	return total + bytesInLastRow
}
