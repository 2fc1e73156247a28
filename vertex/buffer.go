// SPDX-License-Identifier: MIT

package vertex

import (
	"fmt"
	"slices"

	"github.com/gogpu/gputypes"
	"github.com/katalvlaran/strided/containers"
)

// Buffer is interleaved vertex storage described by one buffer layout.
// Attribute views alias its memory; Bytes hands the same memory to an upload.
type Buffer struct {
	layout gputypes.VertexBufferLayout
	data   []byte
	count  int
}

// NewBuffer allocates zeroed storage for count vertices of layout.
// Errors: ErrBadLayout.
func NewBuffer(layout gputypes.VertexBufferLayout, count int) (*Buffer, error) {
	if err := ValidateLayout(layout); err != nil {
		return nil, fmt.Errorf("NewBuffer: %w", err)
	}
	if count < 0 {
		return nil, fmt.Errorf("NewBuffer: negative vertex count %d: %w", count, ErrBadLayout)
	}

	// Word-backed so 4-byte components are naturally aligned.
	words := make([]uint32, int(layout.ArrayStride)/4*count)

	return &Buffer{layout: cloneLayout(layout), data: containers.BytesOf(words), count: count}, nil
}

// WrapBuffer interprets data as vertices of layout without copying. The
// length of data must be a whole number of vertices.
// Errors: ErrBadLayout.
func WrapBuffer(layout gputypes.VertexBufferLayout, data []byte) (*Buffer, error) {
	if err := ValidateLayout(layout); err != nil {
		return nil, fmt.Errorf("WrapBuffer: %w", err)
	}
	stride := int(layout.ArrayStride)
	if len(data)%stride != 0 {
		return nil, fmt.Errorf("WrapBuffer: %d bytes is not a multiple of stride %d: %w", len(data), stride, ErrBadLayout)
	}

	return &Buffer{layout: cloneLayout(layout), data: data, count: len(data) / stride}, nil
}

// Count returns the number of vertices.
func (b *Buffer) Count() int { return b.count }

// Layout returns a copy of the buffer layout.
func (b *Buffer) Layout() gputypes.VertexBufferLayout { return cloneLayout(b.layout) }

// Bytes returns the backing memory. It aliases every view of the buffer.
func (b *Buffer) Bytes() []byte { return b.data }

// Attribute returns the attribute bound to location.
// Errors: ErrUnknownLocation.
func (b *Buffer) Attribute(location uint32) (gputypes.VertexAttribute, error) {
	a, ok := findAttribute(b.layout, location)
	if !ok {
		return gputypes.VertexAttribute{}, fmt.Errorf("Buffer.Attribute(%d): %w", location, ErrUnknownLocation)
	}

	return a, nil
}

func cloneLayout(l gputypes.VertexBufferLayout) gputypes.VertexBufferLayout {
	l.Attributes = slices.Clone(l.Attributes)
	return l
}
