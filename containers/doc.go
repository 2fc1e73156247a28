// SPDX-License-Identifier: MIT

// Package containers provides typed, strided, multi-dimensional views over
// externally owned memory.
//
// A view never owns the elements it reaches. It stores the owner's byte
// region, the byte offset of its first element, and per-axis sizes and signed
// byte strides. Reindexing operations (slicing, transposing, flipping,
// broadcasting) produce new views over the same memory without copying:
//
//	data := []float32{0, 1, 2, 3, 4, 5}
//	m, _ := containers.Contiguous2D(data, 2, 3)   // [[0 1 2] [3 4 5]]
//	t, _ := m.Transpose(0, 1)                      // [[0 3] [1 4] [2 5]]
//	_ = t.Set(2, 0, 42)                            // data[2] == 42
//
// Views come in three fixed ranks (View1D, View2D, View3D), each with a
// Mutable variant that adds Set, plus the contiguous ArrayView pair. The
// zero value of every view type is a valid empty view.
//
// Slicing follows the familiar x[start:stop:step] rules, including omitted
// bounds (Omit), negative indices and negative steps:
//
//	v := containers.OfSlice([]int32{0, 1, 2, 3, 4, 5}).Strided()
//	r, _ := v.Slice(containers.S(5, 1, -2))        // [5 3]
//
// Bytes copies the elements out in row-major order; Buffer and the
// FromBuffer constructors exchange views through the BufferInfo descriptor.
//
// Errors:
//
//	ErrDimensionMismatch  - rank of the input disagrees with the view type
//	ErrLayout             - geometry cannot be served by the memory region
//	ErrIndexOutOfRange    - element or sub-view index outside its axis
//	ErrInvalidSlice       - zero slice step
//	ErrInvalidAxis        - axis argument outside [0, D) or a repeated pair
//	ErrNotBroadcastable   - broadcast on an axis whose size is not 1
//	ErrReadOnly           - mutable view requested over a read-only buffer
//
// Views are plain values and safe to copy. Concurrent reads are safe;
// concurrent writes to overlapping elements need external synchronisation,
// exactly as for the underlying memory.
//
// Construction failures are logged at Debug level through the logger set
// with SetLogger; by default nothing is logged.
package containers
