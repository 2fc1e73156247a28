// SPDX-License-Identifier: MIT

package containers_test

import (
	"testing"

	"github.com/katalvlaran/strided/containers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"
)

func TestBuffer_ExportDescribesView(t *testing.T) {
	m := must(containers.Contiguous2D(iotaFloat32(6), 2, 3))(t)
	f := must(m.Flip(1))(t)

	b := f.View().Buffer()
	assert.Equal(t, 2, b.Dimensions())
	assert.Equal(t, []int{2, 3}, b.Shape)
	assert.Equal(t, []int{12, -4}, b.Strides)
	assert.Equal(t, 8, b.Offset)
	assert.Equal(t, 4, b.ItemSize)
	assert.Equal(t, "f", b.Format)
	assert.True(t, b.ReadOnly)
	assert.False(t, f.Buffer().ReadOnly)
}

func TestBuffer_RoundTrip(t *testing.T) {
	m := must(containers.Contiguous3D(iotaInt32(24), 2, 3, 4))(t)
	src := must(m.SliceAll(containers.Every(-1), containers.Range(0, 2), containers.S(3, 0, -2)))(t)

	back := must(containers.FromBuffer3D[int32](src.View().Buffer()))(t)
	assert.Equal(t, src.Size(), back.Size())
	assert.Equal(t, src.Stride(), back.Stride())
	assert.Equal(t, src.Values(), back.Values())

	mb := must(containers.FromMutableBuffer3D[int32](src.Buffer()))(t)
	require.NoError(t, mb.Set(0, 0, 0, 100))
	got, err := src.At(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(100), got)
}

func TestBuffer_Rejections(t *testing.T) {
	base := containers.OfSlice(iotaInt32(6)).Buffer()

	t.Run("rank", func(t *testing.T) {
		_, err := containers.FromBuffer2D[int32](base)
		assert.ErrorIs(t, err, containers.ErrDimensionMismatch)
	})
	t.Run("item size", func(t *testing.T) {
		_, err := containers.FromBuffer1D[int64](base)
		assert.ErrorIs(t, err, containers.ErrLayout)
	})
	t.Run("format", func(t *testing.T) {
		_, err := containers.FromBuffer1D[float32](base)
		assert.ErrorIs(t, err, containers.ErrLayout)

		anyFormat := base
		anyFormat.Format = ""
		v, err := containers.FromBuffer1D[float32](anyFormat)
		require.NoError(t, err)
		assert.Equal(t, 6, v.Len())
	})
	t.Run("read-only", func(t *testing.T) {
		ro := base
		ro.ReadOnly = true
		_, err := containers.FromMutableBuffer1D[int32](ro)
		assert.ErrorIs(t, err, containers.ErrReadOnly)
		_, err = containers.FromBuffer1D[int32](ro)
		assert.NoError(t, err)
	})
	t.Run("offset", func(t *testing.T) {
		neg := base
		neg.Offset = -4
		_, err := containers.FromBuffer1D[int32](neg)
		assert.ErrorIs(t, err, containers.ErrLayout)
	})
	t.Run("footprint", func(t *testing.T) {
		big := base
		big.Shape = []int{7}
		_, err := containers.FromBuffer1D[int32](big)
		assert.ErrorIs(t, err, containers.ErrLayout)
	})
}

func TestBuffer_VectorElements(t *testing.T) {
	verts := []f32.Vec3{{1, 2, 3}, {4, 5, 6}}
	b := containers.OfSlice(verts).Buffer()
	assert.Equal(t, "3f", b.Format)
	assert.Equal(t, 12, b.ItemSize)

	v := must(containers.FromBuffer1D[f32.Vec3](b))(t)
	got, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, f32.Vec3{4, 5, 6}, got)

	_, err = containers.FromBuffer1D[[3]int32](b)
	assert.ErrorIs(t, err, containers.ErrLayout)
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, "b", containers.FormatOf[int8]())
	assert.Equal(t, "B", containers.FormatOf[uint8]())
	assert.Equal(t, "h", containers.FormatOf[int16]())
	assert.Equal(t, "H", containers.FormatOf[uint16]())
	assert.Equal(t, "i", containers.FormatOf[int32]())
	assert.Equal(t, "I", containers.FormatOf[uint32]())
	assert.Equal(t, "q", containers.FormatOf[int64]())
	assert.Equal(t, "Q", containers.FormatOf[uint64]())
	assert.Equal(t, "f", containers.FormatOf[float32]())
	assert.Equal(t, "d", containers.FormatOf[float64]())
	assert.Equal(t, "2f", containers.FormatOf[f32.Vec2]())
	assert.Equal(t, "4B", containers.FormatOf[[4]uint8]())
	assert.Equal(t, "2h", containers.FormatOf[[2]int16]())
}

func TestContiguousStrides(t *testing.T) {
	assert.Equal(t, []int{48, 16, 4}, containers.ContiguousStrides([]int{2, 3, 4}, 4))
	assert.Equal(t, []int{1}, containers.ContiguousStrides([]int{9}, 1))
	assert.Nil(t, containers.ContiguousStrides(nil, 4))
}

func TestBytesOf(t *testing.T) {
	assert.Nil(t, containers.BytesOf[int32](nil))
	s := []uint16{1, 2, 3}
	b := containers.BytesOf(s)
	assert.Len(t, b, 6)
	b[0], b[1] = 0, 0
	assert.Equal(t, uint16(0), s[0])
}
