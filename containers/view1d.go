// SPDX-License-Identifier: MIT

package containers

import "fmt"

// View1D is a read-only one-dimensional view with stride information.
// The zero value is a valid empty view.
type View1D[T Element] struct {
	s strided[T]
}

// MutableView1D is a one-dimensional view with stride information that also
// allows element assignment. The zero value is a valid empty view.
type MutableView1D[T Element] struct {
	s strided[T]
}

// NewView1D builds a view over mem from a size and a byte stride, each given
// as a one-element slice.
// Errors: ErrDimensionMismatch, ErrLayout.
func NewView1D[T Element](mem []byte, size, stride []int, opts ...Option) (View1D[T], error) {
	s, err := newStrided[T](1, mem, size, stride, gatherOptions(opts...))
	if err != nil {
		return View1D[T]{}, fmt.Errorf("NewView1D: %w", err)
	}

	return View1D[T]{s: s}, nil
}

// NewMutableView1D is NewView1D for a mutable view.
func NewMutableView1D[T Element](mem []byte, size, stride []int, opts ...Option) (MutableView1D[T], error) {
	s, err := newStrided[T](1, mem, size, stride, gatherOptions(opts...))
	if err != nil {
		return MutableView1D[T]{}, fmt.Errorf("NewMutableView1D: %w", err)
	}

	return MutableView1D[T]{s: s}, nil
}

// FromBuffer1D builds a view from a one-dimensional buffer descriptor.
// Errors: ErrDimensionMismatch, ErrLayout.
func FromBuffer1D[T Element](b BufferInfo) (View1D[T], error) {
	s, err := fromBuffer[T](1, b, false)
	if err != nil {
		return View1D[T]{}, fmt.Errorf("FromBuffer1D: %w", err)
	}

	return View1D[T]{s: s}, nil
}

// FromMutableBuffer1D is FromBuffer1D for a mutable view.
// Errors: ErrDimensionMismatch, ErrLayout, ErrReadOnly.
func FromMutableBuffer1D[T Element](b BufferInfo) (MutableView1D[T], error) {
	s, err := fromBuffer[T](1, b, true)
	if err != nil {
		return MutableView1D[T]{}, fmt.Errorf("FromMutableBuffer1D: %w", err)
	}

	return MutableView1D[T]{s: s}, nil
}

// Len returns the number of elements.
func (v View1D[T]) Len() int { return v.s.size[0] }

// Size returns the number of elements.
func (v View1D[T]) Size() int { return v.s.size[0] }

// Stride returns the byte distance between neighbouring elements.
func (v View1D[T]) Stride() int { return v.s.stride[0] }

// Dimensions returns 1.
func (v View1D[T]) Dimensions() int { return 1 }

// Owner returns the memory owner handle.
func (v View1D[T]) Owner() any { return v.s.owner }

// At returns the element at i.
// Errors: ErrIndexOutOfRange.
func (v View1D[T]) At(i int) (T, error) {
	o, err := v.s.locate("View1D", "At", 1, [maxDims]int{i})
	if err != nil {
		var zero T
		return zero, err
	}

	return v.s.load(o), nil
}

// Slice returns the elements selected by sl.
// Errors: ErrInvalidSlice.
func (v View1D[T]) Slice(sl Slice) (View1D[T], error) {
	s, err := v.s.sliceChecked("View1D", 1, 0, sl)
	return View1D[T]{s: s}, err
}

// Flip reverses the view along axis, which must be 0.
// Errors: ErrInvalidAxis.
func (v View1D[T]) Flip(axis int) (View1D[T], error) {
	s, err := v.s.flipChecked("View1D", 1, axis)
	return View1D[T]{s: s}, err
}

// Broadcast repeats the single element of axis n times.
// Errors: ErrInvalidAxis, ErrNotBroadcastable.
func (v View1D[T]) Broadcast(axis, n int) (View1D[T], error) {
	s, err := v.s.broadcastChecked("View1D", 1, axis, n)
	return View1D[T]{s: s}, err
}

// Bytes copies the elements into a new contiguous buffer.
func (v View1D[T]) Bytes() []byte { return v.s.bytes(1) }

// Values copies the elements into a new slice.
func (v View1D[T]) Values() []T { return v.s.values(1) }

// Buffer exports the view as a read-only buffer descriptor.
func (v View1D[T]) Buffer() BufferInfo { return v.s.buffer(1, true) }

func (v View1D[T]) String() string { return v.s.describe("View1D", 1) }

// View returns a read-only view of the same elements.
func (v MutableView1D[T]) View() View1D[T] { return View1D[T]{s: v.s} }

// Len returns the number of elements.
func (v MutableView1D[T]) Len() int { return v.s.size[0] }

// Size returns the number of elements.
func (v MutableView1D[T]) Size() int { return v.s.size[0] }

// Stride returns the byte distance between neighbouring elements.
func (v MutableView1D[T]) Stride() int { return v.s.stride[0] }

// Dimensions returns 1.
func (v MutableView1D[T]) Dimensions() int { return 1 }

// Owner returns the memory owner handle.
func (v MutableView1D[T]) Owner() any { return v.s.owner }

// At returns the element at i.
// Errors: ErrIndexOutOfRange.
func (v MutableView1D[T]) At(i int) (T, error) {
	o, err := v.s.locate("MutableView1D", "At", 1, [maxDims]int{i})
	if err != nil {
		var zero T
		return zero, err
	}

	return v.s.load(o), nil
}

// Set assigns val to the element at i. On a broadcast view the write is
// visible at every index of the broadcast axis.
// Errors: ErrIndexOutOfRange.
func (v MutableView1D[T]) Set(i int, val T) error {
	o, err := v.s.locate("MutableView1D", "Set", 1, [maxDims]int{i})
	if err != nil {
		return err
	}
	v.s.store(o, val)

	return nil
}

// Slice returns the elements selected by sl.
// Errors: ErrInvalidSlice.
func (v MutableView1D[T]) Slice(sl Slice) (MutableView1D[T], error) {
	s, err := v.s.sliceChecked("MutableView1D", 1, 0, sl)
	return MutableView1D[T]{s: s}, err
}

// Flip reverses the view along axis 0.
// Errors: ErrInvalidAxis.
func (v MutableView1D[T]) Flip(axis int) (MutableView1D[T], error) {
	s, err := v.s.flipChecked("MutableView1D", 1, axis)
	return MutableView1D[T]{s: s}, err
}

// Broadcast repeats the single element of axis n times.
// Errors: ErrInvalidAxis, ErrNotBroadcastable.
func (v MutableView1D[T]) Broadcast(axis, n int) (MutableView1D[T], error) {
	s, err := v.s.broadcastChecked("MutableView1D", 1, axis, n)
	return MutableView1D[T]{s: s}, err
}

// Bytes copies the elements into a new contiguous buffer.
func (v MutableView1D[T]) Bytes() []byte { return v.s.bytes(1) }

// Values copies the elements into a new slice.
func (v MutableView1D[T]) Values() []T { return v.s.values(1) }

// Buffer exports the view as a writable buffer descriptor.
func (v MutableView1D[T]) Buffer() BufferInfo { return v.s.buffer(1, false) }

func (v MutableView1D[T]) String() string { return v.s.describe("MutableView1D", 1) }
