// SPDX-License-Identifier: MIT

// Package containers - rank-generic strided view core.
//
// Purpose:
//   - Hold the geometry of a view: memory region, byte offset of the first
//     element, per-axis sizes and signed byte strides.
//   - Implement every algorithm once (indexing, slicing, transpose, flip,
//     broadcast, row-major flatten); View1D/2D/3D and their mutable variants
//     are thin fixed-rank wrappers passing their rank in.
//
// Invariants:
//   - Values are never mutated after construction; transforms return copies.
//   - Every reachable element lies inside mem (checked once by
//     validateFootprint, preserved by all transforms: they only select
//     sub-ranges, permute axes, or set a stride to zero).
//   - Indices are bounds-checked before the address is computed.
//
// Complexity quicksheet:
//   - at/index/slice/transpose/flip/broadcast: O(D); flatten: O(Π size).

package containers

import "unsafe"

// maxDims is the highest rank a view can have.
const maxDims = 3

// strided is the shared geometry of every view type. Axes at or beyond the
// wrapper's rank are unused and stay zero.
type strided[T Element] struct {
	mem    []byte       // owner's memory region; keeps it alive and bounds every access
	off    int          // byte offset of element (0, 0, 0) inside mem
	size   [maxDims]int // extent per axis
	stride [maxDims]int // signed byte distance between neighbours per axis
	owner  any          // memory owner handle; never used for addressing
}

// newStrided builds a rank-dimensional core after validating the geometry.
// Errors: ErrDimensionMismatch, ErrLayout.
func newStrided[T Element](rank int, mem []byte, size, stride []int, o Options) (strided[T], error) {
	if err := validateRank(rank, size, stride); err != nil {
		return strided[T]{}, err
	}
	if err := validateFootprint(mem, o.offset, size, stride, sizeOf[T](), alignOf[T]()); err != nil {
		Logger().Debug("containers: layout rejected",
			"rank", rank, "size", size, "stride", stride, "offset", o.offset, "err", err)
		return strided[T]{}, err
	}

	s := strided[T]{mem: mem, off: o.offset, owner: o.owner}
	copy(s.size[:], size)
	copy(s.stride[:], stride)

	return s, nil
}

// total returns the element count over the first rank axes.
func (s strided[T]) total(rank int) int {
	n := 1
	for k := 0; k < rank; k++ {
		n *= s.size[k]
	}

	return n
}

// offsetOf bounds-checks idx against the first rank axes and returns the byte
// offset of the addressed element. The address is computed only after every
// index passed the check.
func (s strided[T]) offsetOf(rank int, idx [maxDims]int) (int, bool) {
	for k := 0; k < rank; k++ {
		if idx[k] < 0 || idx[k] >= s.size[k] {
			return 0, false
		}
	}
	o := s.off
	for k := 0; k < rank; k++ {
		o += idx[k] * s.stride[k]
	}

	return o, true
}

// load reads the element at byte offset o.
func (s strided[T]) load(o int) T {
	return *(*T)(unsafe.Pointer(&s.mem[o]))
}

// store writes the element at byte offset o.
func (s strided[T]) store(o int, v T) {
	*(*T)(unsafe.Pointer(&s.mem[o])) = v
}

// index returns the (rank-1)-dimensional sub-view at position i of axis 0.
func (s strided[T]) index(rank, i int) (strided[T], bool) {
	if rank < 2 || i < 0 || i >= s.size[0] {
		return strided[T]{}, false
	}
	out := strided[T]{mem: s.mem, off: s.off + i*s.stride[0], owner: s.owner}
	copy(out.size[:], s.size[1:rank])
	copy(out.stride[:], s.stride[1:rank])

	return out, true
}

// sliceAxis restricts axis to the range selected by sl.
//
// Implementation:
//   - Stage 1: resolve sl against the axis extent (see slice.go).
//   - Stage 2: narrow the axis to [start, stop).
//   - Stage 3: walk every |step|-th element; a negative step first moves the
//     origin to the last element of the range and negates the stride.
//
// Errors: ErrInvalidSlice.
func (s strided[T]) sliceAxis(axis int, sl Slice) (strided[T], error) {
	sp, err := sl.resolve(s.size[axis])
	if err != nil {
		return strided[T]{}, err
	}

	out := s
	n := sp.stop - sp.start
	out.off += sp.start * s.stride[axis]
	out.size[axis] = sp.length()

	step := sp.step
	if step < 0 {
		if n > 0 {
			out.off += (n - 1) * out.stride[axis]
		}
		out.stride[axis] = -out.stride[axis]
		step = -step
	}
	// With fewer than two elements the step never moves the address, and
	// stride*step may not be representable.
	if out.size[axis] > 1 {
		out.stride[axis] *= step
	}

	return out, nil
}

// transpose swaps axes a and b. Callers validate the pair.
func (s strided[T]) transpose(a, b int) strided[T] {
	out := s
	out.size[a], out.size[b] = s.size[b], s.size[a]
	out.stride[a], out.stride[b] = s.stride[b], s.stride[a]

	return out
}

// flip reverses axis: the origin moves to the last element along it and the
// stride is negated. An empty axis keeps its origin.
func (s strided[T]) flip(axis int) strided[T] {
	out := s
	if s.size[axis] > 0 {
		out.off += (s.size[axis] - 1) * s.stride[axis]
	}
	out.stride[axis] = -s.stride[axis]

	return out
}

// broadcast repeats the single element of axis n times.
// Returns false when the axis extent is not 1.
func (s strided[T]) broadcast(axis, n int) (strided[T], bool) {
	if s.size[axis] != 1 || n < 0 {
		return strided[T]{}, false
	}
	out := s
	out.size[axis] = n
	out.stride[axis] = 0

	return out, true
}

// each calls fn with the byte offset of every element over the first rank
// axes, in row-major order (last axis fastest). Exactly total(rank) calls.
func (s strided[T]) each(rank int, fn func(o int)) {
	if rank == 0 || s.total(rank) == 0 {
		return
	}

	var idx [maxDims]int
	o := s.off
	for {
		fn(o)
		k := rank - 1
		for ; k >= 0; k-- {
			idx[k]++
			o += s.stride[k]
			if idx[k] < s.size[k] {
				break
			}
			o -= idx[k] * s.stride[k]
			idx[k] = 0
		}
		if k < 0 {
			return
		}
	}
}

// bytes copies the elements into a new contiguous buffer of exactly
// total(rank)*sizeof(T) bytes, row-major.
func (s strided[T]) bytes(rank int) []byte {
	esize := sizeOf[T]()
	out := make([]byte, s.total(rank)*esize)
	pos := 0
	s.each(rank, func(o int) {
		pos += copy(out[pos:], s.mem[o:o+esize])
	})

	return out
}

// values copies the elements into a new slice, row-major.
func (s strided[T]) values(rank int) []T {
	out := make([]T, 0, s.total(rank))
	s.each(rank, func(o int) {
		out = append(out, s.load(o))
	})

	return out
}
