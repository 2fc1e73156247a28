// SPDX-License-Identifier: MIT
// Package: containers
//
// Purpose:
//   - Provide a single source of truth for the geometry checks every view
//     constructor and transform relies on.
//   - Return sentinel errors wrapped with the offending values; call sites
//     add their own method tag.
//
// Determinism & Performance:
//   - All checks are pure and allocate only on failure.
//   - validateFootprint runs in O(D).

package containers

import (
	"fmt"
	"math"
	"unsafe"
)

// validateRank ensures both geometry slices carry exactly rank entries.
// Errors: ErrDimensionMismatch.
func validateRank(rank int, size, stride []int) error {
	if len(size) != rank {
		return fmt.Errorf("expected %d dimensions but got %d: %w", rank, len(size), ErrDimensionMismatch)
	}
	if len(stride) != rank {
		return fmt.Errorf("expected %d strides but got %d: %w", rank, len(stride), ErrDimensionMismatch)
	}

	return nil
}

// validateAxis ensures 0 ≤ axis < rank.
// Errors: ErrInvalidAxis.
func validateAxis(axis, rank int) error {
	if axis < 0 || axis >= rank {
		return fmt.Errorf("dimension %d out of range for a %dD view: %w", axis, rank, ErrInvalidAxis)
	}

	return nil
}

// validateAxisPair ensures a and b are distinct valid axes.
// Errors: ErrInvalidAxis.
func validateAxisPair(a, b, rank int) error {
	if a < 0 || b < 0 || a >= rank || b >= rank || a == b {
		return fmt.Errorf("dimensions %d, %d can't be transposed in a %dD view: %w", a, b, rank, ErrInvalidAxis)
	}

	return nil
}

// validateFootprint ensures a geometry can be served by mem for elements of
// esize bytes aligned to align:
//   - Stage 1: sizes non-negative, element count representable, offset
//     inside the region.
//   - Stage 2: empty views stop here; they never dereference memory.
//   - Stage 3: first element address and every stride are multiples of align.
//   - Stage 4: lowest and highest reachable byte lie inside mem. Extents are
//     checked against the remaining room before they are added, so no
//     intermediate value can wrap.
//
// Errors: ErrLayout.
func validateFootprint(mem []byte, off int, size, stride []int, esize, align int) error {
	empty := false
	for k, n := range size {
		if n < 0 {
			return fmt.Errorf("negative size %d in dimension %d: %w", n, k, ErrLayout)
		}
		if n == 0 {
			empty = true
		}
	}
	if !empty {
		total := 1
		for _, n := range size {
			if total > math.MaxInt/n {
				return fmt.Errorf("element count of size %v overflows: %w", size, ErrLayout)
			}
			total *= n
		}
	}
	if off < 0 || off > len(mem) {
		return fmt.Errorf("offset %d outside a region of %d bytes: %w", off, len(mem), ErrLayout)
	}
	if empty {
		return nil
	}

	if align > 1 {
		addr := uintptr(unsafe.Pointer(unsafe.SliceData(mem))) + uintptr(off)
		if addr%uintptr(align) != 0 {
			return fmt.Errorf("first element not aligned to %d bytes: %w", align, ErrLayout)
		}
		for k, s := range stride {
			if s%align != 0 {
				return fmt.Errorf("stride %d in dimension %d not a multiple of %d: %w", s, k, align, ErrLayout)
			}
		}
	}

	// Invariant: 0 <= lo <= off <= hi <= len(mem)-esize.
	if off > len(mem)-esize {
		return fmt.Errorf("footprint [%d, %d) outside a region of %d bytes: %w", off, off+esize, len(mem), ErrLayout)
	}
	lo, hi := off, off
	for k, n := range size {
		s := stride[k]
		if n < 2 || s == 0 {
			continue
		}
		if s == math.MinInt || n-1 > math.MaxInt/abs(s) {
			return fmt.Errorf("extent of dimension %d (size %d, stride %d) overflows: %w", k, n, s, ErrLayout)
		}
		d := (n - 1) * abs(s)
		if s < 0 {
			if d > lo {
				return fmt.Errorf("dimension %d reaches %d bytes before the region: %w", k, d-lo, ErrLayout)
			}
			lo -= d
		} else {
			if d > len(mem)-esize-hi {
				return fmt.Errorf("dimension %d reaches past a region of %d bytes: %w", k, len(mem), ErrLayout)
			}
			hi += d
		}
	}

	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
