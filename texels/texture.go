// SPDX-License-Identifier: MIT

package texels

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/katalvlaran/strided/containers"
)

// CopyRowAlignment is the byte alignment of BytesPerRow in buffer/texture copies.
const CopyRowAlignment = 256

// texelInfo describes one texel of a format.
type texelInfo struct {
	descriptor string // containers.FormatOf of the element type viewing one texel
	size       int    // bytes per texel
}

// texelFormats covers the uncompressed color formats whose texels map to an
// Element type. Normalized formats are viewed as their integer storage; BGRA
// formats keep their channel order.
var texelFormats = map[gputypes.TextureFormat]texelInfo{
	gputypes.TextureFormatR8Unorm:        {"B", 1},
	gputypes.TextureFormatR8Snorm:        {"b", 1},
	gputypes.TextureFormatR8Uint:         {"B", 1},
	gputypes.TextureFormatR8Sint:         {"b", 1},
	gputypes.TextureFormatR16Unorm:       {"H", 2},
	gputypes.TextureFormatR16Snorm:       {"h", 2},
	gputypes.TextureFormatR16Uint:        {"H", 2},
	gputypes.TextureFormatR16Sint:        {"h", 2},
	gputypes.TextureFormatRG8Unorm:       {"2B", 2},
	gputypes.TextureFormatRG8Snorm:       {"2b", 2},
	gputypes.TextureFormatRG8Uint:        {"2B", 2},
	gputypes.TextureFormatRG8Sint:        {"2b", 2},
	gputypes.TextureFormatR32Float:       {"f", 4},
	gputypes.TextureFormatR32Uint:        {"I", 4},
	gputypes.TextureFormatR32Sint:        {"i", 4},
	gputypes.TextureFormatRG16Unorm:      {"2H", 4},
	gputypes.TextureFormatRG16Snorm:      {"2h", 4},
	gputypes.TextureFormatRG16Uint:       {"2H", 4},
	gputypes.TextureFormatRG16Sint:       {"2h", 4},
	gputypes.TextureFormatRGBA8Unorm:     {"4B", 4},
	gputypes.TextureFormatRGBA8UnormSrgb: {"4B", 4},
	gputypes.TextureFormatRGBA8Snorm:     {"4b", 4},
	gputypes.TextureFormatRGBA8Uint:      {"4B", 4},
	gputypes.TextureFormatRGBA8Sint:      {"4b", 4},
	gputypes.TextureFormatBGRA8Unorm:     {"4B", 4},
	gputypes.TextureFormatBGRA8UnormSrgb: {"4B", 4},
	gputypes.TextureFormatRGB10A2Uint:    {"I", 4},
	gputypes.TextureFormatRGB10A2Unorm:   {"I", 4},
	gputypes.TextureFormatRG32Float:      {"2f", 8},
	gputypes.TextureFormatRG32Uint:       {"2I", 8},
	gputypes.TextureFormatRG32Sint:       {"2i", 8},
	gputypes.TextureFormatRGBA16Unorm:    {"4H", 8},
	gputypes.TextureFormatRGBA16Snorm:    {"4h", 8},
	gputypes.TextureFormatRGBA16Uint:     {"4H", 8},
	gputypes.TextureFormatRGBA16Sint:     {"4h", 8},
	gputypes.TextureFormatRGBA32Float:    {"4f", 16},
	gputypes.TextureFormatRGBA32Uint:     {"4I", 16},
	gputypes.TextureFormatRGBA32Sint:     {"4i", 16},
}

func lookup(format gputypes.TextureFormat) (texelInfo, error) {
	info, ok := texelFormats[format]
	if !ok {
		return texelInfo{}, fmt.Errorf("%v: %w", format, ErrUnsupportedFormat)
	}

	return info, nil
}

// TexelSize returns the byte size of one texel of format.
// Errors: ErrUnsupportedFormat.
func TexelSize(format gputypes.TextureFormat) (int, error) {
	info, err := lookup(format)
	if err != nil {
		return 0, fmt.Errorf("TexelSize: %w", err)
	}

	return info.size, nil
}

// PaddedLayout returns the data layout of a width × height image of format
// with every row padded to CopyRowAlignment bytes.
// Errors: ErrUnsupportedFormat, ErrBadLayout for negative extents.
func PaddedLayout(format gputypes.TextureFormat, width, height int) (gputypes.TextureDataLayout, error) {
	info, err := lookup(format)
	if err != nil {
		return gputypes.TextureDataLayout{}, fmt.Errorf("PaddedLayout: %w", err)
	}
	if width < 0 || height < 0 {
		return gputypes.TextureDataLayout{}, fmt.Errorf("PaddedLayout(%d,%d): %w", width, height, ErrBadLayout)
	}
	row := width * info.size
	row = (row + CopyRowAlignment - 1) / CopyRowAlignment * CopyRowAlignment

	return gputypes.TextureDataLayout{BytesPerRow: uint32(row), RowsPerImage: uint32(height)}, nil
}

// TextureView views data laid out per layout as depth × height × width
// texels of format. A zero RowsPerImage means tightly stacked images of
// height rows.
//
// Implementation:
//   - Stage 1: T must describe one texel of format.
//   - Stage 2: rows must hold width texels and images height rows.
//   - Stage 3: the view footprint must fit data (containers validation).
//
// Errors: ErrUnsupportedFormat, ErrFormatMismatch, ErrBadLayout.
func TextureView[T containers.Element](data []byte, layout gputypes.TextureDataLayout,
	format gputypes.TextureFormat, width, height, depth int,
) (containers.MutableView3D[T], error) {
	info, err := lookup(format)
	if err != nil {
		return containers.MutableView3D[T]{}, fmt.Errorf("TextureView: %w", err)
	}
	if got := containers.FormatOf[T](); got != info.descriptor {
		return containers.MutableView3D[T]{}, fmt.Errorf("TextureView: %v needs %q, got %q: %w",
			format, info.descriptor, got, ErrFormatMismatch)
	}

	bpr := int(layout.BytesPerRow)
	rows := int(layout.RowsPerImage)
	if rows == 0 {
		rows = height
	}
	if width < 0 || height < 0 || depth < 0 || bpr < width*info.size || rows < height {
		return containers.MutableView3D[T]{}, fmt.Errorf("TextureView(%dx%dx%d): bytes per row %d, rows per image %d: %w",
			width, height, depth, bpr, rows, ErrBadLayout)
	}
	if width == 0 || height == 0 || depth == 0 {
		return containers.MutableView3D[T]{}, nil
	}

	v, err := containers.NewMutableView3D[T](data,
		[]int{depth, height, width},
		[]int{bpr * rows, bpr, info.size},
		containers.WithOffset(int(layout.Offset)),
	)
	if err != nil {
		containers.Logger().Debug("texels: texture layout rejected",
			"format", format.String(), "width", width, "height", height, "depth", depth,
			"bytesPerRow", bpr, "rowsPerImage", rows, "len", len(data), "err", err)
		return containers.MutableView3D[T]{}, fmt.Errorf("TextureView: %w: %w", ErrBadLayout, err)
	}

	return v, nil
}

// Pack copies v into tightly packed bytes, dropping any row padding.
func Pack[T containers.Element](v containers.View3D[T]) []byte { return v.Bytes() }

// Pad copies v (depth × height × width texels of format) into a new buffer
// whose rows are padded to CopyRowAlignment, ready for a buffer-to-texture
// copy, and returns it with its layout.
// Errors: ErrUnsupportedFormat, ErrFormatMismatch.
func Pad[T containers.Element](v containers.View3D[T], format gputypes.TextureFormat) ([]byte, gputypes.TextureDataLayout, error) {
	size := v.Size()
	layout, err := PaddedLayout(format, size[2], size[1])
	if err != nil {
		return nil, gputypes.TextureDataLayout{}, fmt.Errorf("Pad: %w", err)
	}
	info, _ := lookup(format)
	if got := containers.FormatOf[T](); got != info.descriptor {
		return nil, gputypes.TextureDataLayout{}, fmt.Errorf("Pad: %v needs %q, got %q: %w",
			format, info.descriptor, got, ErrFormatMismatch)
	}

	// Word-backed so every supported texel type is aligned.
	bpr := int(layout.BytesPerRow)
	words := make([]uint32, bpr*size[1]*size[0]/4)
	data := containers.BytesOf(words)

	// Tight rows, in row-major order, land at the start of each padded row.
	tight := v.Bytes()
	row := size[2] * info.size
	for r := 0; r < size[0]*size[1]; r++ {
		copy(data[r*bpr:], tight[r*row:(r+1)*row])
	}

	return data, layout, nil
}
