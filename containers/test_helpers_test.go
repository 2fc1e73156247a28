// SPDX-License-Identifier: MIT
// Package containers_test contains test helpers.
//
// Purpose:
//   - Provide small deterministic fixtures (iota buffers) shared by the view tests.
//   - Keep call sites short: must(f())(t) turns (value, error) pairs into values.

package containers_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// iotaInt32 returns [0, 1, ..., n-1].
func iotaInt32(n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(i)
	}

	return out
}

// iotaFloat32 returns [0, 1, ..., n-1] as float32.
func iotaFloat32(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i)
	}

	return out
}

// must takes a (value, error) pair and returns a check that fails tb on err
// and yields the value otherwise: must(f())(t).
func must[V any](v V, err error) func(tb testing.TB) V {
	return func(tb testing.TB) V {
		tb.Helper()
		require.NoError(tb, err)

		return v
	}
}

// pyIndices enumerates range(*slice(start, stop, step).indices(n)) the way
// the reference interpreter does, with Omit standing for None.
func pyIndices(n, start, stop, step int) []int32 {
	lower, upper := 0, n
	if step < 0 {
		lower, upper = -1, n-1
	}
	bound := func(v, def int) int {
		switch {
		case v == omit:
			return def
		case v < 0:
			v += n
			if v < lower {
				return lower
			}
			return v
		case v > upper:
			return upper
		}
		return v
	}
	var b, e int
	if step > 0 {
		b, e = bound(start, lower), bound(stop, upper)
	} else {
		b, e = bound(start, upper), bound(stop, lower)
	}

	out := []int32{}
	for i := b; (step > 0 && i < e) || (step < 0 && i > e); i += step {
		out = append(out, int32(i))
	}

	return out
}
