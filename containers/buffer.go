// SPDX-License-Identifier: MIT

// Package containers - buffer protocol exchange.
//
// A BufferInfo is the descriptor host-side array consumers hand over (and get
// back): the memory region, where the first element sits in it, the item
// size and format, and per-axis shape and byte strides. Views are built from
// it with FromBuffer{1,2,3}D / FromBufferArray and exported with Buffer().
//
// Strides may be negative, so the first element is not necessarily the lowest
// address; Data therefore always carries the whole region and Offset locates
// the first element inside it.

package containers

import (
	"fmt"
	"slices"
)

// BufferInfo describes a strided memory region.
type BufferInfo struct {
	Data     []byte // whole memory region
	Offset   int    // byte offset of the first element inside Data
	ItemSize int    // bytes per element
	Format   string // element format descriptor (see FormatOf); empty skips the check
	Shape    []int  // extent per axis
	Strides  []int  // signed byte stride per axis
	ReadOnly bool   // consumers must not write through the buffer
	Owner    any    // object owning the memory, carried along unchanged
}

// Dimensions returns the rank the buffer reports.
func (b BufferInfo) Dimensions() int { return len(b.Shape) }

// fromBuffer validates b for a rank-dimensional view of T.
//
// Implementation:
//   - Stage 1: reported rank must equal rank (ErrDimensionMismatch).
//   - Stage 2: mutable requests reject read-only buffers (ErrReadOnly).
//   - Stage 3: item size and, if given, format must describe T (ErrLayout).
//   - Stage 4: the geometry must fit Data (newStrided).
func fromBuffer[T Element](rank int, b BufferInfo, mutable bool) (strided[T], error) {
	s, err := checkBuffer[T](rank, b, mutable)
	if err != nil {
		Logger().Debug("containers: buffer rejected",
			"rank", rank, "shape", b.Shape, "strides", b.Strides, "itemsize", b.ItemSize, "err", err)
		return strided[T]{}, err
	}

	return s, nil
}

func checkBuffer[T Element](rank int, b BufferInfo, mutable bool) (strided[T], error) {
	if len(b.Shape) != rank {
		return strided[T]{}, fmt.Errorf("expected %d dimensions but got %d: %w", rank, len(b.Shape), ErrDimensionMismatch)
	}
	if mutable && b.ReadOnly {
		return strided[T]{}, ErrReadOnly
	}
	if b.ItemSize != sizeOf[T]() {
		return strided[T]{}, fmt.Errorf("expected item size %d but got %d: %w", sizeOf[T](), b.ItemSize, ErrLayout)
	}
	if b.Format != "" && b.Format != FormatOf[T]() {
		return strided[T]{}, fmt.Errorf("expected format %q but got %q: %w", FormatOf[T](), b.Format, ErrLayout)
	}
	if b.Offset < 0 {
		return strided[T]{}, fmt.Errorf("negative offset %d: %w", b.Offset, ErrLayout)
	}

	return newStrided[T](rank, b.Data, b.Shape, b.Strides, Options{owner: b.Owner, offset: b.Offset})
}

// buffer exports the first rank axes of s.
func (s strided[T]) buffer(rank int, readOnly bool) BufferInfo {
	return BufferInfo{
		Data:     s.mem,
		Offset:   s.off,
		ItemSize: sizeOf[T](),
		Format:   FormatOf[T](),
		Shape:    slices.Clone(s.size[:rank]),
		Strides:  slices.Clone(s.stride[:rank]),
		ReadOnly: readOnly,
		Owner:    s.owner,
	}
}

// describe renders "<kind>[<type>](size=[...], stride=[...])" for String methods.
func (s strided[T]) describe(kind string, rank int) string {
	var zero T
	return fmt.Sprintf("%s[%T](size=%v, stride=%v)", kind, zero, s.size[:rank], s.stride[:rank])
}
