// SPDX-License-Identifier: MIT

package containers_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/strided/containers"
)

func ExampleView2D_Transpose() {
	m, _ := containers.Contiguous2D([]float32{0, 1, 2, 3, 4, 5}, 2, 3)
	t, _ := m.View().Transpose(0, 1)
	fmt.Println(t)
	fmt.Println(t.Values())
	// Output:
	// View2D[float32](size=[3 2], stride=[4 12])
	// [0 3 1 4 2 5]
}

func ExampleView1D_Slice() {
	v := containers.OfSlice([]int32{0, 1, 2, 3, 4, 5}).View().Strided()

	every, _ := v.Slice(containers.S(1, 5, 2))
	back, _ := v.Slice(containers.S(5, 1, -2))
	rev, _ := v.Slice(containers.Every(-1))
	fmt.Println(every.Values(), back.Values(), rev.Values())

	_, err := v.Slice(containers.S(0, 6, 0))
	fmt.Println(errors.Is(err, containers.ErrInvalidSlice))
	// Output:
	// [1 3] [5 3] [5 4 3 2 1 0]
	// true
}

func ExampleMutableView2D_Broadcast() {
	row := []uint8{10, 20, 30}
	m, _ := containers.Contiguous2D(row, 1, 3)
	b, _ := m.Broadcast(0, 2)
	_ = b.Set(1, 2, 99)
	fmt.Println(b.Values(), row)
	// Output:
	// [10 20 99 10 20 99] [10 20 99]
}

func ExampleFromBuffer2D() {
	data := []int32{1, 2, 3, 4}
	m, _ := containers.Contiguous2D(data, 2, 2)
	f, _ := m.View().Flip(0)

	info := f.Buffer()
	fmt.Println(info.Shape, info.Strides, info.Offset, info.Format)

	v, _ := containers.FromBuffer2D[int32](info)
	fmt.Println(v.Values())
	// Output:
	// [2 2] [-8 4] 8 i
	// [3 4 1 2]
}
