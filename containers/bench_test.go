// SPDX-License-Identifier: MIT
// Package containers_test provides benchmarks for view traversal,
// using a square float32 matrix in its natural and transposed layout.
package containers_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/strided/containers"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 256, 1024}

// sinks to defeat dead-code elimination
var (
	sinkBytes []byte
	sinkF     float32
)

func BenchmarkBytes(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		m := must(containers.Contiguous2D(iotaFloat32(n*n), n, n))(b)
		t := must(m.View().Transpose(0, 1))(b)
		b.Run(fmt.Sprintf("n=%d/contiguous", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkBytes = m.Bytes()
			}
		})
		b.Run(fmt.Sprintf("n=%d/transposed", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkBytes = t.Bytes()
			}
		})
	}
}

func BenchmarkAt(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		m := must(containers.Contiguous2D(iotaFloat32(n*n), n, n))(b)
		v := m.View()
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				x, err := v.At(i%n, (i/n)%n)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = x
			}
		})
	}
}

func BenchmarkSlice(b *testing.B) {
	b.ReportAllocs()
	a := containers.OfSlice(iotaFloat32(1024)).Strided()
	for i := 0; i < b.N; i++ {
		r, err := a.Slice(containers.S(1000, 3, -7))
		if err != nil {
			b.Fatal(err)
		}
		sinkBytes = r.Bytes()
	}
}
