// SPDX-License-Identifier: MIT

package containers

import "fmt"

// View3D is a read-only three-dimensional view with stride information.
// The zero value is a valid empty view.
type View3D[T Element] struct {
	s strided[T]
}

// MutableView3D is a three-dimensional view that also allows element assignment.
type MutableView3D[T Element] struct {
	s strided[T]
}

// NewView3D builds a view over mem from three sizes and three byte strides.
// Errors: ErrDimensionMismatch, ErrLayout.
func NewView3D[T Element](mem []byte, size, stride []int, opts ...Option) (View3D[T], error) {
	s, err := newStrided[T](3, mem, size, stride, gatherOptions(opts...))
	if err != nil {
		return View3D[T]{}, fmt.Errorf("NewView3D: %w", err)
	}

	return View3D[T]{s: s}, nil
}

// NewMutableView3D is NewView3D for a mutable view.
func NewMutableView3D[T Element](mem []byte, size, stride []int, opts ...Option) (MutableView3D[T], error) {
	s, err := newStrided[T](3, mem, size, stride, gatherOptions(opts...))
	if err != nil {
		return MutableView3D[T]{}, fmt.Errorf("NewMutableView3D: %w", err)
	}

	return MutableView3D[T]{s: s}, nil
}

// FromBuffer3D builds a view from a three-dimensional buffer descriptor.
// Errors: ErrDimensionMismatch, ErrLayout.
func FromBuffer3D[T Element](b BufferInfo) (View3D[T], error) {
	s, err := fromBuffer[T](3, b, false)
	if err != nil {
		return View3D[T]{}, fmt.Errorf("FromBuffer3D: %w", err)
	}

	return View3D[T]{s: s}, nil
}

// FromMutableBuffer3D is FromBuffer3D for a mutable view.
// Errors: ErrDimensionMismatch, ErrLayout, ErrReadOnly.
func FromMutableBuffer3D[T Element](b BufferInfo) (MutableView3D[T], error) {
	s, err := fromBuffer[T](3, b, true)
	if err != nil {
		return MutableView3D[T]{}, fmt.Errorf("FromMutableBuffer3D: %w", err)
	}

	return MutableView3D[T]{s: s}, nil
}

// Contiguous3D views s as a d0×d1×d2 row-major block.
// Errors: ErrLayout when d0*d1*d2 differs from len(s).
func Contiguous3D[T Element](s []T, d0, d1, d2 int) (MutableView3D[T], error) {
	if d0 < 0 || d1 < 0 || d2 < 0 || d0*d1*d2 != len(s) {
		return MutableView3D[T]{}, fmt.Errorf("Contiguous3D(%d,%d,%d): %d elements: %w", d0, d1, d2, len(s), ErrLayout)
	}
	shape := []int{d0, d1, d2}

	return NewMutableView3D[T](BytesOf(s), shape, ContiguousStrides(shape, sizeOf[T]()), WithOwner(s))
}

// Len returns the size of axis 0.
func (v View3D[T]) Len() int { return v.s.size[0] }

// Size returns the extent of every axis.
func (v View3D[T]) Size() [3]int { return v.s.size }

// Stride returns the byte stride of every axis.
func (v View3D[T]) Stride() [3]int { return v.s.stride }

// Dimensions returns 3.
func (v View3D[T]) Dimensions() int { return 3 }

// Owner returns the memory owner handle.
func (v View3D[T]) Owner() any { return v.s.owner }

// At returns the element at (i, j, k).
// Errors: ErrIndexOutOfRange.
func (v View3D[T]) At(i, j, k int) (T, error) {
	o, err := v.s.locate("View3D", "At", 3, [maxDims]int{i, j, k})
	if err != nil {
		var zero T
		return zero, err
	}

	return v.s.load(o), nil
}

// Index returns plane i as a two-dimensional view sharing memory.
// Errors: ErrIndexOutOfRange.
func (v View3D[T]) Index(i int) (View2D[T], error) {
	s, err := v.s.indexChecked("View3D", 3, i)
	return View2D[T]{s: s}, err
}

// Slice slices axis 0.
// Errors: ErrInvalidSlice.
func (v View3D[T]) Slice(sl Slice) (View3D[T], error) {
	return v.SliceAxis(0, sl)
}

// SliceAxis slices a single axis, leaving the others untouched.
// Errors: ErrInvalidAxis, ErrInvalidSlice.
func (v View3D[T]) SliceAxis(axis int, sl Slice) (View3D[T], error) {
	s, err := v.s.sliceChecked("View3D", 3, axis, sl)
	return View3D[T]{s: s}, err
}

// SliceAll slices every axis at once, like x[s0, s1, s2].
// Errors: ErrInvalidSlice.
func (v View3D[T]) SliceAll(s0, s1, s2 Slice) (View3D[T], error) {
	s, err := v.s.sliceEach("View3D", s0, s1, s2)
	return View3D[T]{s: s}, err
}

// Transpose swaps axes a and b. No data moves.
// Errors: ErrInvalidAxis.
func (v View3D[T]) Transpose(a, b int) (View3D[T], error) {
	s, err := v.s.transposeChecked("View3D", 3, a, b)
	return View3D[T]{s: s}, err
}

// Flip reverses axis.
// Errors: ErrInvalidAxis.
func (v View3D[T]) Flip(axis int) (View3D[T], error) {
	s, err := v.s.flipChecked("View3D", 3, axis)
	return View3D[T]{s: s}, err
}

// Broadcast repeats the single element of axis n times.
// Errors: ErrInvalidAxis, ErrNotBroadcastable.
func (v View3D[T]) Broadcast(axis, n int) (View3D[T], error) {
	s, err := v.s.broadcastChecked("View3D", 3, axis, n)
	return View3D[T]{s: s}, err
}

// Bytes copies the elements into a new contiguous buffer, row-major.
func (v View3D[T]) Bytes() []byte { return v.s.bytes(3) }

// Values copies the elements into a new slice, row-major.
func (v View3D[T]) Values() []T { return v.s.values(3) }

// Buffer exports the view as a read-only buffer descriptor.
func (v View3D[T]) Buffer() BufferInfo { return v.s.buffer(3, true) }

func (v View3D[T]) String() string { return v.s.describe("View3D", 3) }

// View returns a read-only view of the same elements.
func (v MutableView3D[T]) View() View3D[T] { return View3D[T]{s: v.s} }

func (v MutableView3D[T]) Len() int        { return v.s.size[0] }
func (v MutableView3D[T]) Size() [3]int    { return v.s.size }
func (v MutableView3D[T]) Stride() [3]int  { return v.s.stride }
func (v MutableView3D[T]) Dimensions() int { return 3 }
func (v MutableView3D[T]) Owner() any      { return v.s.owner }

func (v MutableView3D[T]) At(i, j, k int) (T, error) {
	o, err := v.s.locate("MutableView3D", "At", 3, [maxDims]int{i, j, k})
	if err != nil {
		var zero T
		return zero, err
	}

	return v.s.load(o), nil
}

// Set assigns val to the element at (i, j, k).
// Errors: ErrIndexOutOfRange.
func (v MutableView3D[T]) Set(i, j, k int, val T) error {
	o, err := v.s.locate("MutableView3D", "Set", 3, [maxDims]int{i, j, k})
	if err != nil {
		return err
	}
	v.s.store(o, val)

	return nil
}

// Index returns the plane at position i of axis 0 as a mutable view.
func (v MutableView3D[T]) Index(i int) (MutableView2D[T], error) {
	s, err := v.s.indexChecked("MutableView3D", 3, i)
	return MutableView2D[T]{s: s}, err
}

func (v MutableView3D[T]) Slice(sl Slice) (MutableView3D[T], error) {
	return v.SliceAxis(0, sl)
}

func (v MutableView3D[T]) SliceAxis(axis int, sl Slice) (MutableView3D[T], error) {
	s, err := v.s.sliceChecked("MutableView3D", 3, axis, sl)
	return MutableView3D[T]{s: s}, err
}

func (v MutableView3D[T]) SliceAll(s0, s1, s2 Slice) (MutableView3D[T], error) {
	s, err := v.s.sliceEach("MutableView3D", s0, s1, s2)
	return MutableView3D[T]{s: s}, err
}

func (v MutableView3D[T]) Transpose(a, b int) (MutableView3D[T], error) {
	s, err := v.s.transposeChecked("MutableView3D", 3, a, b)
	return MutableView3D[T]{s: s}, err
}

func (v MutableView3D[T]) Flip(axis int) (MutableView3D[T], error) {
	s, err := v.s.flipChecked("MutableView3D", 3, axis)
	return MutableView3D[T]{s: s}, err
}

func (v MutableView3D[T]) Broadcast(axis, n int) (MutableView3D[T], error) {
	s, err := v.s.broadcastChecked("MutableView3D", 3, axis, n)
	return MutableView3D[T]{s: s}, err
}

func (v MutableView3D[T]) Bytes() []byte { return v.s.bytes(3) }
func (v MutableView3D[T]) Values() []T   { return v.s.values(3) }

// Buffer exports the view as a writable buffer descriptor.
func (v MutableView3D[T]) Buffer() BufferInfo { return v.s.buffer(3, false) }

func (v MutableView3D[T]) String() string { return v.s.describe("MutableView3D", 3) }
