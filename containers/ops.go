// SPDX-License-Identifier: MIT

// Package containers - checked view operations.
//
// Purpose:
//   - Run the argument checks and the core transform for every fixed-rank
//     wrapper in one place.
//   - Tag errors with the calling type (View2D, MutableView2D, ...) so the
//     mutable variants report under their own name.
//
// Formatting happens only on the error path.

package containers

import (
	"fmt"
	"strconv"
	"strings"
)

// locate bounds-checks idx and returns the byte offset of the element.
// Errors: ErrIndexOutOfRange.
func (s strided[T]) locate(name, op string, rank int, idx [maxDims]int) (int, error) {
	o, ok := s.offsetOf(rank, idx)
	if !ok {
		return 0, fmt.Errorf("%s.%s(%s): size %v: %w", name, op, joinInts(idx[:rank]), s.size[:rank], ErrIndexOutOfRange)
	}

	return o, nil
}

// indexChecked returns the sub-view at position i of axis 0.
// Errors: ErrIndexOutOfRange.
func (s strided[T]) indexChecked(name string, rank, i int) (strided[T], error) {
	r, ok := s.index(rank, i)
	if !ok {
		return strided[T]{}, fmt.Errorf("%s.Index(%d): size %d: %w", name, i, s.size[0], ErrIndexOutOfRange)
	}

	return r, nil
}

// sliceChecked slices one axis.
// Errors: ErrInvalidAxis, ErrInvalidSlice.
func (s strided[T]) sliceChecked(name string, rank, axis int, sl Slice) (strided[T], error) {
	if err := validateAxis(axis, rank); err != nil {
		return strided[T]{}, fmt.Errorf("%s.SliceAxis: %w", name, err)
	}
	r, err := s.sliceAxis(axis, sl)
	if err != nil {
		if rank == 1 {
			return strided[T]{}, fmt.Errorf("%s.Slice(%v): %w", name, sl, err)
		}
		return strided[T]{}, fmt.Errorf("%s.SliceAxis(%d,%v): %w", name, axis, sl, err)
	}

	return r, nil
}

// sliceEach slices axis k with sls[k], like x[s0, s1, ...].
// Errors: ErrInvalidSlice.
func (s strided[T]) sliceEach(name string, sls ...Slice) (strided[T], error) {
	r := s
	var err error
	for axis, sl := range sls {
		if r, err = r.sliceAxis(axis, sl); err != nil {
			parts := make([]string, len(sls))
			for k := range sls {
				parts[k] = sls[k].String()
			}
			return strided[T]{}, fmt.Errorf("%s.SliceAll(%s): %w", name, strings.Join(parts, ","), err)
		}
	}

	return r, nil
}

// transposeChecked swaps axes a and b.
// Errors: ErrInvalidAxis.
func (s strided[T]) transposeChecked(name string, rank, a, b int) (strided[T], error) {
	if err := validateAxisPair(a, b, rank); err != nil {
		return strided[T]{}, fmt.Errorf("%s.Transpose: %w", name, err)
	}

	return s.transpose(a, b), nil
}

// flipChecked reverses axis.
// Errors: ErrInvalidAxis.
func (s strided[T]) flipChecked(name string, rank, axis int) (strided[T], error) {
	if err := validateAxis(axis, rank); err != nil {
		return strided[T]{}, fmt.Errorf("%s.Flip: %w", name, err)
	}

	return s.flip(axis), nil
}

// broadcastChecked repeats the single element of axis n times.
// Errors: ErrInvalidAxis, ErrNotBroadcastable.
func (s strided[T]) broadcastChecked(name string, rank, axis, n int) (strided[T], error) {
	if err := validateAxis(axis, rank); err != nil {
		return strided[T]{}, fmt.Errorf("%s.Broadcast: %w", name, err)
	}
	r, ok := s.broadcast(axis, n)
	if !ok {
		return strided[T]{}, fmt.Errorf("%s.Broadcast(%d,%d): size %d: %w", name, axis, n, s.size[axis], ErrNotBroadcastable)
	}

	return r, nil
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for k, n := range v {
		parts[k] = strconv.Itoa(n)
	}

	return strings.Join(parts, ",")
}
