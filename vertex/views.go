// SPDX-License-Identifier: MIT

package vertex

import (
	"fmt"

	"github.com/katalvlaran/strided/containers"
)

// AttributeView returns one element per vertex for the attribute at
// location. The element type must describe the attribute format: f32.Vec3 or
// [3]float32 for Float32x3, [4]uint8 for Unorm8x4, uint32 for Uint32.
// Writes through the view land in the buffer.
//
// Errors: ErrUnknownLocation, ErrUnsupportedType, ErrFormatMismatch, or a
// wrapped containers.ErrLayout when the memory is misaligned for T.
func AttributeView[T containers.Element](b *Buffer, location uint32) (containers.MutableView1D[T], error) {
	a, err := b.Attribute(location)
	if err != nil {
		return containers.MutableView1D[T]{}, fmt.Errorf("AttributeView: %w", err)
	}
	want, err := FormatDescriptor(a.Format)
	if err != nil {
		return containers.MutableView1D[T]{}, fmt.Errorf("AttributeView(%d): %w", location, err)
	}
	if got := containers.FormatOf[T](); got != want {
		return containers.MutableView1D[T]{}, fmt.Errorf("AttributeView(%d): %v needs %q, got %q: %w",
			location, a.Format, want, got, ErrFormatMismatch)
	}
	if b.count == 0 {
		return containers.MutableView1D[T]{}, nil
	}

	v, err := containers.NewMutableView1D[T](b.data,
		[]int{b.count},
		[]int{int(b.layout.ArrayStride)},
		containers.WithOffset(int(a.Offset)),
		containers.WithOwner(b),
	)
	if err != nil {
		return containers.MutableView1D[T]{}, fmt.Errorf("AttributeView(%d): %w", location, err)
	}

	return v, nil
}

// ComponentView returns the attribute at location as a vertices × components
// matrix of its scalar type S: float32 for the Float32 formats, uint8 for
// Unorm8x4, and so on.
//
// Errors: ErrUnknownLocation, ErrUnsupportedType, ErrFormatMismatch, or a
// wrapped containers.ErrLayout.
func ComponentView[S containers.Element](b *Buffer, location uint32) (containers.MutableView2D[S], error) {
	a, err := b.Attribute(location)
	if err != nil {
		return containers.MutableView2D[S]{}, fmt.Errorf("ComponentView: %w", err)
	}
	info, ok := vertexComponents[a.Format]
	if !ok {
		return containers.MutableView2D[S]{}, fmt.Errorf("ComponentView(%d): %v: %w", location, a.Format, ErrUnsupportedType)
	}
	if got := containers.FormatOf[S](); got != info.scalar {
		return containers.MutableView2D[S]{}, fmt.Errorf("ComponentView(%d): %v needs %q, got %q: %w",
			location, a.Format, info.scalar, got, ErrFormatMismatch)
	}
	if b.count == 0 {
		return containers.MutableView2D[S]{}, nil
	}

	v, err := containers.NewMutableView2D[S](b.data,
		[]int{b.count, info.components},
		[]int{int(b.layout.ArrayStride), info.size},
		containers.WithOffset(int(a.Offset)),
		containers.WithOwner(b),
	)
	if err != nil {
		return containers.MutableView2D[S]{}, fmt.Errorf("ComponentView(%d): %w", location, err)
	}

	return v, nil
}
