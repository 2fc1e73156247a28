// SPDX-License-Identifier: MIT

// Package strided is a toolkit for looking at typed memory through strided,
// multi-dimensional views, without copying it.
//
// What is in the box?
//
//	containers/ - View1D/2D/3D (read-only and mutable), ArrayView, Python-style
//	              slicing, transpose, flip, broadcast and the buffer protocol
//	vertex/     - interleaved vertex buffers: layouts, attribute views and
//	              layouts reflected from WGSL vertex shaders
//	texels/     - pixel views over image.RGBA/NRGBA/Gray and over padded
//	              GPU texture upload rows
//	cmd/        - stridetool, an image flipper/rotator/cropper built on views
//
// A view never owns memory: it records a base offset plus a size and a byte
// stride per dimension, and keeps the originating buffer reachable through
// Owner(). Slicing, transposing and flipping only rewrite that metadata.
//
// Quick example:
//
//	pix := []int32{0, 1, 2, 3, 4, 5}
//	m, _ := containers.Contiguous2D(pix, 2, 3) // [[0 1 2] [3 4 5]]
//	t, _ := m.View().Transpose(0, 1)            // [[0 3] [1 4] [2 5]]
//	r, _ := t.Slice(containers.S(containers.Omit, containers.Omit, -1))
//	fmt.Println(r.Values())                     // [2 5 1 4 0 3]
//
// Every fallible operation returns an error wrapping one of the sentinels in
// containers/errors.go, so callers match with errors.Is.
//
//	go get github.com/katalvlaran/strided
package strided
