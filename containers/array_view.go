// SPDX-License-Identifier: MIT

// Package containers - contiguous one-dimensional views.
//
// ArrayView and MutableArrayView are the non-strided siblings of View1D: the
// stride always equals the element size, so the elements form one contiguous
// run of memory. Slicing with a unit step keeps that property and returns an
// ArrayView again (Range); any other slice promotes to a strided View1D.

package containers

import (
	"fmt"
	"unsafe"
)

// ArrayView is a read-only contiguous run of elements.
type ArrayView[T Element] struct {
	s strided[T]
}

// MutableArrayView is a contiguous run of elements that allows assignment.
type MutableArrayView[T Element] struct {
	s strided[T]
}

// OfSlice views the backing array of s. Writes through the view are visible
// in s and vice versa.
func OfSlice[T Element](s []T) MutableArrayView[T] {
	if len(s) == 0 {
		return MutableArrayView[T]{}
	}
	esize := sizeOf[T]()

	return MutableArrayView[T]{s: strided[T]{
		mem:    BytesOf(s),
		size:   [maxDims]int{len(s)},
		stride: [maxDims]int{esize},
		owner:  s,
	}}
}

// FromBufferArray builds a contiguous view from a one-dimensional buffer
// descriptor whose stride equals its item size.
// Errors: ErrDimensionMismatch, ErrLayout.
func FromBufferArray[T Element](b BufferInfo) (ArrayView[T], error) {
	s, err := fromBufferArray[T](b, false)
	if err != nil {
		return ArrayView[T]{}, fmt.Errorf("FromBufferArray: %w", err)
	}

	return ArrayView[T]{s: s}, nil
}

// FromMutableBufferArray is FromBufferArray for a mutable view.
// Errors: ErrDimensionMismatch, ErrLayout, ErrReadOnly.
func FromMutableBufferArray[T Element](b BufferInfo) (MutableArrayView[T], error) {
	s, err := fromBufferArray[T](b, true)
	if err != nil {
		return MutableArrayView[T]{}, fmt.Errorf("FromMutableBufferArray: %w", err)
	}

	return MutableArrayView[T]{s: s}, nil
}

func fromBufferArray[T Element](b BufferInfo, mutable bool) (strided[T], error) {
	if len(b.Shape) != 1 {
		return strided[T]{}, fmt.Errorf("expected 1 dimension but got %d: %w", len(b.Shape), ErrDimensionMismatch)
	}
	if len(b.Strides) == 1 && b.Strides[0] != b.ItemSize {
		return strided[T]{}, fmt.Errorf("expected stride %d but got %d: %w", b.ItemSize, b.Strides[0], ErrLayout)
	}

	return fromBuffer[T](1, b, mutable)
}

// Len returns the number of elements.
func (v ArrayView[T]) Len() int { return v.s.size[0] }

// Owner returns the memory owner handle.
func (v ArrayView[T]) Owner() any { return v.s.owner }

// At returns the element at i.
// Errors: ErrIndexOutOfRange.
func (v ArrayView[T]) At(i int) (T, error) {
	o, err := v.s.locate("ArrayView", "At", 1, [maxDims]int{i})
	if err != nil {
		var zero T
		return zero, err
	}

	return v.s.load(o), nil
}

// Range returns the contiguous sub-range x[start:stop]. Bounds follow the
// slice rules: Omit for defaults, negatives count from the end, out-of-range
// values clamp.
func (v ArrayView[T]) Range(start, stop int) ArrayView[T] {
	// A unit step never fails to resolve.
	s, _ := v.s.sliceAxis(0, Range(start, stop))

	return ArrayView[T]{s: s}
}

// Slice returns the elements selected by sl as a strided view.
// Errors: ErrInvalidSlice.
func (v ArrayView[T]) Slice(sl Slice) (View1D[T], error) {
	s, err := v.s.sliceChecked("ArrayView", 1, 0, sl)
	return View1D[T]{s: s}, err
}

// Strided returns the same elements as a strided view.
func (v ArrayView[T]) Strided() View1D[T] { return View1D[T]{s: v.s} }

// Bytes copies the elements into a new buffer.
func (v ArrayView[T]) Bytes() []byte {
	n := v.s.size[0] * sizeOf[T]()
	out := make([]byte, n)
	copy(out, v.s.mem[v.s.off:v.s.off+n])

	return out
}

// Values copies the elements into a new slice.
func (v ArrayView[T]) Values() []T { return v.s.values(1) }

// Buffer exports the view as a read-only buffer descriptor.
func (v ArrayView[T]) Buffer() BufferInfo { return v.s.buffer(1, true) }

func (v ArrayView[T]) String() string { return v.s.describe("ArrayView", 1) }

// View returns a read-only view of the same elements.
func (v MutableArrayView[T]) View() ArrayView[T] { return ArrayView[T]{s: v.s} }

// Len returns the number of elements.
func (v MutableArrayView[T]) Len() int { return v.s.size[0] }

// Owner returns the memory owner handle.
func (v MutableArrayView[T]) Owner() any { return v.s.owner }

// At returns the element at i.
// Errors: ErrIndexOutOfRange.
func (v MutableArrayView[T]) At(i int) (T, error) {
	o, err := v.s.locate("MutableArrayView", "At", 1, [maxDims]int{i})
	if err != nil {
		var zero T
		return zero, err
	}

	return v.s.load(o), nil
}

// Set assigns val to the element at i.
// Errors: ErrIndexOutOfRange.
func (v MutableArrayView[T]) Set(i int, val T) error {
	o, err := v.s.locate("MutableArrayView", "Set", 1, [maxDims]int{i})
	if err != nil {
		return err
	}
	v.s.store(o, val)

	return nil
}

// Range returns the contiguous sub-range x[start:stop].
func (v MutableArrayView[T]) Range(start, stop int) MutableArrayView[T] {
	return MutableArrayView[T]{s: v.View().Range(start, stop).s}
}

// Slice returns the elements selected by sl as a mutable strided view.
func (v MutableArrayView[T]) Slice(sl Slice) (MutableView1D[T], error) {
	s, err := v.s.sliceChecked("MutableArrayView", 1, 0, sl)
	return MutableView1D[T]{s: s}, err
}

// Strided returns the same elements as a mutable strided view.
func (v MutableArrayView[T]) Strided() MutableView1D[T] { return MutableView1D[T]{s: v.s} }

// Elements returns a Go slice aliasing the viewed memory.
func (v MutableArrayView[T]) Elements() []T {
	if v.s.size[0] == 0 {
		return nil
	}

	return unsafe.Slice((*T)(unsafe.Pointer(&v.s.mem[v.s.off])), v.s.size[0])
}

// Bytes copies the elements into a new buffer.
func (v MutableArrayView[T]) Bytes() []byte { return v.View().Bytes() }

// Values copies the elements into a new slice.
func (v MutableArrayView[T]) Values() []T { return v.s.values(1) }

// Buffer exports the view as a writable buffer descriptor.
func (v MutableArrayView[T]) Buffer() BufferInfo { return v.s.buffer(1, false) }

func (v MutableArrayView[T]) String() string { return v.s.describe("MutableArrayView", 1) }
