// SPDX-License-Identifier: MIT

package vertex

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// strideAlign is the alignment of a vertex buffer's array stride.
const strideAlign = 4

// Interleave packs attrs, in order, into one vertex buffer layout. Each
// attribute starts at the next offset aligned to min(4, size) and the array
// stride is rounded up to 4 bytes.
//
// The layout of a position/coverage/color vertex:
//
//	Interleave(gputypes.VertexStepModeVertex,
//		Position2D,
//		Attribute{Name: "coverage", Location: 1, Format: gputypes.VertexFormatFloat32},
//		Attribute{Name: "color", Location: 2, Format: gputypes.VertexFormatFloat32x4},
//	)
//	// offsets 0, 8, 12; ArrayStride 28
func Interleave(step gputypes.VertexStepMode, attrs ...Attribute) gputypes.VertexBufferLayout {
	layout := gputypes.VertexBufferLayout{
		StepMode:   step,
		Attributes: make([]gputypes.VertexAttribute, 0, len(attrs)),
	}

	var off uint64
	for _, a := range attrs {
		size := a.Format.Size()
		off = alignUp(off, min(size, strideAlign))
		layout.Attributes = append(layout.Attributes, gputypes.VertexAttribute{
			Format:         a.Format,
			Offset:         off,
			ShaderLocation: a.Location,
		})
		off += size
	}
	layout.ArrayStride = alignUp(off, strideAlign)

	return layout
}

// ValidateLayout checks that layout describes addressable vertices:
//   - Stage 1: a positive array stride that is a multiple of 4.
//   - Stage 2: every attribute has a known format, starts aligned to
//     min(4, size) and ends within the stride.
//   - Stage 3: no two attributes share a shader location.
//
// Errors: ErrBadLayout.
func ValidateLayout(layout gputypes.VertexBufferLayout) error {
	if layout.ArrayStride == 0 || layout.ArrayStride%strideAlign != 0 {
		return fmt.Errorf("array stride %d: %w", layout.ArrayStride, ErrBadLayout)
	}

	seen := make(map[uint32]struct{}, len(layout.Attributes))
	for _, a := range layout.Attributes {
		size := a.Format.Size()
		if size == 0 {
			return fmt.Errorf("location %d: format %v: %w", a.ShaderLocation, a.Format, ErrBadLayout)
		}
		if a.Offset%min(size, strideAlign) != 0 {
			return fmt.Errorf("location %d: misaligned offset %d: %w", a.ShaderLocation, a.Offset, ErrBadLayout)
		}
		if a.Offset+size > layout.ArrayStride {
			return fmt.Errorf("location %d: [%d, %d) exceeds stride %d: %w",
				a.ShaderLocation, a.Offset, a.Offset+size, layout.ArrayStride, ErrBadLayout)
		}
		if _, dup := seen[a.ShaderLocation]; dup {
			return fmt.Errorf("location %d bound twice: %w", a.ShaderLocation, ErrBadLayout)
		}
		seen[a.ShaderLocation] = struct{}{}
	}

	return nil
}

// findAttribute returns the attribute bound to location.
func findAttribute(layout gputypes.VertexBufferLayout, location uint32) (gputypes.VertexAttribute, bool) {
	for _, a := range layout.Attributes {
		if a.ShaderLocation == location {
			return a, true
		}
	}

	return gputypes.VertexAttribute{}, false
}

func alignUp(v, a uint64) uint64 {
	if a <= 1 {
		return v
	}

	return (v + a - 1) / a * a
}
