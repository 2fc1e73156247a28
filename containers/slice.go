// SPDX-License-Identifier: MIT

// Package containers - slice descriptors and their resolution against an axis.
//
// Purpose:
//   - Describe x[start:stop:step] with the usual defaults and negative indices.
//   - Resolve a descriptor against an axis extent into a half-open byte-free
//     range plus step, which the view core turns into new geometry.
//
// Resolution rules (fixed, do not "simplify"):
//   - Stage 1: resolve start/stop like slice.indices(n): omitted bounds take
//     the direction-dependent default, negatives count from the end, results
//     are clamped to [0, n] (or [-1, n-1] when step < 0).
//   - Stage 2: when step < 0 the resolved pair runs backwards, so it is
//     swapped and both ends are incremented by one. The result is the
//     half-open range [start, stop) that the reverse traversal visits.
//   - Stage 3: empty results collapse to [0, 0).
//
// Complexity: O(1).

package containers

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Omit marks a slice bound (or step) as absent, like an empty slot in x[a:b:c].
const Omit = math.MinInt

// Slice is a (start, stop, step) descriptor for one axis.
// Use Omit for absent values. A zero Step is invalid.
type Slice struct {
	Start, Stop, Step int
}

// S builds a slice descriptor; any argument may be Omit.
func S(start, stop, step int) Slice { return Slice{Start: start, Stop: stop, Step: step} }

// Range is x[start:stop].
func Range(start, stop int) Slice { return Slice{Start: start, Stop: stop, Step: 1} }

// All is x[:].
func All() Slice { return Slice{Start: Omit, Stop: Omit, Step: 1} }

// Every is x[::step].
func Every(step int) Slice { return Slice{Start: Omit, Stop: Omit, Step: step} }

// String renders the descriptor in start:stop:step form, leaving omitted parts empty.
func (s Slice) String() string {
	var b strings.Builder
	part := func(v int) {
		if v != Omit {
			b.WriteString(strconv.Itoa(v))
		}
	}
	part(s.Start)
	b.WriteByte(':')
	part(s.Stop)
	b.WriteByte(':')
	part(s.Step)

	return b.String()
}

// ParseSlice parses the start:stop:step form produced by String. Empty parts
// are omitted; "3" alone selects the single element at 3, like x[3:4].
// Errors: ErrInvalidSlice.
func ParseSlice(text string) (Slice, error) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) > 3 {
		return Slice{}, fmt.Errorf("ParseSlice(%q): too many parts: %w", text, ErrInvalidSlice)
	}

	vals := [3]int{Omit, Omit, Omit}
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil || v == Omit {
			return Slice{}, fmt.Errorf("ParseSlice(%q): part %d: %w", text, i, ErrInvalidSlice)
		}
		vals[i] = v
	}

	if len(parts) == 1 {
		if vals[0] == Omit {
			return All(), nil
		}
		if vals[0] == -1 {
			return S(-1, Omit, 1), nil
		}
		return Range(vals[0], vals[0]+1), nil
	}
	if vals[2] == 0 {
		return Slice{}, fmt.Errorf("ParseSlice(%q): zero step: %w", text, ErrInvalidSlice)
	}

	return Slice{Start: vals[0], Stop: vals[1], Step: vals[2]}, nil
}

// span is a resolved slice: the half-open element range [start, stop) of the
// parent axis plus the step to walk it with (negative walks it backwards).
type span struct {
	start, stop, step int
}

// length returns the number of elements the span selects.
func (sp span) length() int {
	n := sp.stop - sp.start
	if n <= 0 {
		return 0
	}
	step := sp.step
	if step < 0 {
		step = -step
	}

	return (n-1)/step + 1
}

// resolve turns s into a span over an axis of extent n.
// Returns ErrInvalidSlice for a zero step.
func (s Slice) resolve(n int) (span, error) {
	step := s.Step
	if step == Omit {
		step = 1
	}
	if step == 0 {
		return span{}, ErrInvalidSlice
	}

	// Stage 1: slice.indices(n).
	var start, stop int
	if step > 0 {
		start = adjustBound(s.Start, n, 0, 0, n)
		stop = adjustBound(s.Stop, n, n, 0, n)
	} else {
		start = adjustBound(s.Start, n, n-1, -1, n-1)
		stop = adjustBound(s.Stop, n, -1, -1, n-1)
	}

	// Stage 2: reverse traversal becomes a forward half-open range.
	if step < 0 {
		start, stop = stop, start
		start++
		stop++
	}

	// Stage 3: nothing selected.
	sp := span{start: start, stop: stop, step: step}
	if sp.length() == 0 {
		return span{start: 0, stop: 0, step: step}, nil
	}

	return sp, nil
}

// adjustBound resolves one bound: Omit takes def, negatives count from the
// end, and the result is clamped into [lo, hi].
func adjustBound(v, n, def, lo, hi int) int {
	if v == Omit {
		return def
	}
	if v < 0 {
		v += n
		if v < 0 {
			return lo
		}

		return v
	}
	if v > hi {
		return hi
	}

	return v
}
