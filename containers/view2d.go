// SPDX-License-Identifier: MIT

package containers

import "fmt"

// View2D is a read-only two-dimensional view with stride information.
// Axis 0 is the outer (row) axis. The zero value is a valid empty view.
type View2D[T Element] struct {
	s strided[T]
}

// MutableView2D is a two-dimensional view that also allows element assignment.
type MutableView2D[T Element] struct {
	s strided[T]
}

// NewView2D builds a view over mem from two sizes and two byte strides.
// Errors: ErrDimensionMismatch, ErrLayout.
func NewView2D[T Element](mem []byte, size, stride []int, opts ...Option) (View2D[T], error) {
	s, err := newStrided[T](2, mem, size, stride, gatherOptions(opts...))
	if err != nil {
		return View2D[T]{}, fmt.Errorf("NewView2D: %w", err)
	}

	return View2D[T]{s: s}, nil
}

// NewMutableView2D is NewView2D for a mutable view.
func NewMutableView2D[T Element](mem []byte, size, stride []int, opts ...Option) (MutableView2D[T], error) {
	s, err := newStrided[T](2, mem, size, stride, gatherOptions(opts...))
	if err != nil {
		return MutableView2D[T]{}, fmt.Errorf("NewMutableView2D: %w", err)
	}

	return MutableView2D[T]{s: s}, nil
}

// FromBuffer2D builds a view from a two-dimensional buffer descriptor.
// Errors: ErrDimensionMismatch, ErrLayout.
func FromBuffer2D[T Element](b BufferInfo) (View2D[T], error) {
	s, err := fromBuffer[T](2, b, false)
	if err != nil {
		return View2D[T]{}, fmt.Errorf("FromBuffer2D: %w", err)
	}

	return View2D[T]{s: s}, nil
}

// FromMutableBuffer2D is FromBuffer2D for a mutable view.
// Errors: ErrDimensionMismatch, ErrLayout, ErrReadOnly.
func FromMutableBuffer2D[T Element](b BufferInfo) (MutableView2D[T], error) {
	s, err := fromBuffer[T](2, b, true)
	if err != nil {
		return MutableView2D[T]{}, fmt.Errorf("FromMutableBuffer2D: %w", err)
	}

	return MutableView2D[T]{s: s}, nil
}

// Contiguous2D views s as a rows×cols row-major matrix.
// Errors: ErrLayout when rows*cols differs from len(s).
func Contiguous2D[T Element](s []T, rows, cols int) (MutableView2D[T], error) {
	if rows < 0 || cols < 0 || rows*cols != len(s) {
		return MutableView2D[T]{}, fmt.Errorf("Contiguous2D(%d,%d): %d elements: %w", rows, cols, len(s), ErrLayout)
	}
	shape := []int{rows, cols}

	return NewMutableView2D[T](BytesOf(s), shape, ContiguousStrides(shape, sizeOf[T]()), WithOwner(s))
}

// Len returns the size of axis 0.
func (v View2D[T]) Len() int { return v.s.size[0] }

// Size returns the extent of both axes.
func (v View2D[T]) Size() [2]int { return [2]int{v.s.size[0], v.s.size[1]} }

// Stride returns the byte stride of both axes.
func (v View2D[T]) Stride() [2]int { return [2]int{v.s.stride[0], v.s.stride[1]} }

// Dimensions returns 2.
func (v View2D[T]) Dimensions() int { return 2 }

// Owner returns the memory owner handle.
func (v View2D[T]) Owner() any { return v.s.owner }

// At returns the element at (i, j).
// Errors: ErrIndexOutOfRange.
func (v View2D[T]) At(i, j int) (T, error) {
	o, err := v.s.locate("View2D", "At", 2, [maxDims]int{i, j})
	if err != nil {
		var zero T
		return zero, err
	}

	return v.s.load(o), nil
}

// Index returns row i as a one-dimensional view sharing memory.
// Errors: ErrIndexOutOfRange.
func (v View2D[T]) Index(i int) (View1D[T], error) {
	s, err := v.s.indexChecked("View2D", 2, i)
	return View1D[T]{s: s}, err
}

// Slice slices axis 0.
// Errors: ErrInvalidSlice.
func (v View2D[T]) Slice(sl Slice) (View2D[T], error) {
	return v.SliceAxis(0, sl)
}

// SliceAxis slices a single axis, leaving the others untouched.
// Errors: ErrInvalidAxis, ErrInvalidSlice.
func (v View2D[T]) SliceAxis(axis int, sl Slice) (View2D[T], error) {
	s, err := v.s.sliceChecked("View2D", 2, axis, sl)
	return View2D[T]{s: s}, err
}

// SliceAll slices every axis at once, like x[s0, s1].
// Errors: ErrInvalidSlice.
func (v View2D[T]) SliceAll(s0, s1 Slice) (View2D[T], error) {
	s, err := v.s.sliceEach("View2D", s0, s1)
	return View2D[T]{s: s}, err
}

// Transpose swaps axes a and b. No data moves.
// Errors: ErrInvalidAxis.
func (v View2D[T]) Transpose(a, b int) (View2D[T], error) {
	s, err := v.s.transposeChecked("View2D", 2, a, b)
	return View2D[T]{s: s}, err
}

// Flip reverses axis.
// Errors: ErrInvalidAxis.
func (v View2D[T]) Flip(axis int) (View2D[T], error) {
	s, err := v.s.flipChecked("View2D", 2, axis)
	return View2D[T]{s: s}, err
}

// Broadcast repeats the single element of axis n times.
// Errors: ErrInvalidAxis, ErrNotBroadcastable.
func (v View2D[T]) Broadcast(axis, n int) (View2D[T], error) {
	s, err := v.s.broadcastChecked("View2D", 2, axis, n)
	return View2D[T]{s: s}, err
}

// Bytes copies the elements into a new contiguous buffer, row-major.
func (v View2D[T]) Bytes() []byte { return v.s.bytes(2) }

// Values copies the elements into a new slice, row-major.
func (v View2D[T]) Values() []T { return v.s.values(2) }

// Buffer exports the view as a read-only buffer descriptor.
func (v View2D[T]) Buffer() BufferInfo { return v.s.buffer(2, true) }

func (v View2D[T]) String() string { return v.s.describe("View2D", 2) }

// View returns a read-only view of the same elements.
func (v MutableView2D[T]) View() View2D[T] { return View2D[T]{s: v.s} }

// Len returns the size of axis 0.
func (v MutableView2D[T]) Len() int { return v.s.size[0] }

// Size returns the extent of both axes.
func (v MutableView2D[T]) Size() [2]int { return v.View().Size() }

// Stride returns the byte stride of both axes.
func (v MutableView2D[T]) Stride() [2]int { return v.View().Stride() }

// Dimensions returns 2.
func (v MutableView2D[T]) Dimensions() int { return 2 }

// Owner returns the memory owner handle.
func (v MutableView2D[T]) Owner() any { return v.s.owner }

// At returns the element at (i, j).
// Errors: ErrIndexOutOfRange.
func (v MutableView2D[T]) At(i, j int) (T, error) {
	o, err := v.s.locate("MutableView2D", "At", 2, [maxDims]int{i, j})
	if err != nil {
		var zero T
		return zero, err
	}

	return v.s.load(o), nil
}

// Set assigns val to the element at (i, j).
// Errors: ErrIndexOutOfRange.
func (v MutableView2D[T]) Set(i, j int, val T) error {
	o, err := v.s.locate("MutableView2D", "Set", 2, [maxDims]int{i, j})
	if err != nil {
		return err
	}
	v.s.store(o, val)

	return nil
}

// Index returns row i as a one-dimensional view sharing memory.
// Errors: ErrIndexOutOfRange.
func (v MutableView2D[T]) Index(i int) (MutableView1D[T], error) {
	s, err := v.s.indexChecked("MutableView2D", 2, i)
	return MutableView1D[T]{s: s}, err
}

// Slice slices axis 0.
// Errors: ErrInvalidSlice.
func (v MutableView2D[T]) Slice(sl Slice) (MutableView2D[T], error) {
	return v.SliceAxis(0, sl)
}

// SliceAxis slices a single axis, leaving the others untouched.
// Errors: ErrInvalidAxis, ErrInvalidSlice.
func (v MutableView2D[T]) SliceAxis(axis int, sl Slice) (MutableView2D[T], error) {
	s, err := v.s.sliceChecked("MutableView2D", 2, axis, sl)
	return MutableView2D[T]{s: s}, err
}

// SliceAll slices every axis at once, like x[s0, s1].
// Errors: ErrInvalidSlice.
func (v MutableView2D[T]) SliceAll(s0, s1 Slice) (MutableView2D[T], error) {
	s, err := v.s.sliceEach("MutableView2D", s0, s1)
	return MutableView2D[T]{s: s}, err
}

// Transpose swaps axes a and b. No data moves.
// Errors: ErrInvalidAxis.
func (v MutableView2D[T]) Transpose(a, b int) (MutableView2D[T], error) {
	s, err := v.s.transposeChecked("MutableView2D", 2, a, b)
	return MutableView2D[T]{s: s}, err
}

// Flip reverses axis.
// Errors: ErrInvalidAxis.
func (v MutableView2D[T]) Flip(axis int) (MutableView2D[T], error) {
	s, err := v.s.flipChecked("MutableView2D", 2, axis)
	return MutableView2D[T]{s: s}, err
}

// Broadcast repeats the single element of axis n times.
// Errors: ErrInvalidAxis, ErrNotBroadcastable.
func (v MutableView2D[T]) Broadcast(axis, n int) (MutableView2D[T], error) {
	s, err := v.s.broadcastChecked("MutableView2D", 2, axis, n)
	return MutableView2D[T]{s: s}, err
}

// Bytes copies the elements into a new contiguous buffer, row-major.
func (v MutableView2D[T]) Bytes() []byte { return v.s.bytes(2) }

// Values copies the elements into a new slice, row-major.
func (v MutableView2D[T]) Values() []T { return v.s.values(2) }

// Buffer exports the view as a writable buffer descriptor.
func (v MutableView2D[T]) Buffer() BufferInfo { return v.s.buffer(2, false) }

func (v MutableView2D[T]) String() string { return v.s.describe("MutableView2D", 2) }
