// SPDX-License-Identifier: MIT

package texels_test

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/katalvlaran/strided/containers"
	"github.com/katalvlaran/strided/texels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"
)

func TestPaddedLayout(t *testing.T) {
	l, err := texels.PaddedLayout(gputypes.TextureFormatRGBA8Unorm, 100, 7)
	require.NoError(t, err)
	assert.Equal(t, uint32(512), l.BytesPerRow)
	assert.Equal(t, uint32(7), l.RowsPerImage)

	l, err = texels.PaddedLayout(gputypes.TextureFormatR8Unorm, 256, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(256), l.BytesPerRow)

	l, err = texels.PaddedLayout(gputypes.TextureFormatRGBA32Float, 17, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(512), l.BytesPerRow)

	_, err = texels.PaddedLayout(gputypes.TextureFormatDepth32Float, 4, 4)
	assert.ErrorIs(t, err, texels.ErrUnsupportedFormat)
	_, err = texels.PaddedLayout(gputypes.TextureFormatRGBA8Unorm, -1, 4)
	assert.ErrorIs(t, err, texels.ErrBadLayout)
}

func TestTexelSize(t *testing.T) {
	n, err := texels.TexelSize(gputypes.TextureFormatRG16Float)
	assert.ErrorIs(t, err, texels.ErrUnsupportedFormat)
	assert.Zero(t, n)

	n, err = texels.TexelSize(gputypes.TextureFormatRGBA16Uint)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
}

func TestTextureView_PaddedRows(t *testing.T) {
	const w, h = 3, 2
	l, err := texels.PaddedLayout(gputypes.TextureFormatR32Float, w, h)
	require.NoError(t, err)

	data := containers.BytesOf(make([]float32, 256/4*h))
	v, err := texels.TextureView[float32](data, l, gputypes.TextureFormatR32Float, w, h, 1)
	require.NoError(t, err)
	assert.Equal(t, [3]int{1, 2, 3}, v.Size())
	assert.Equal(t, [3]int{512, 256, 4}, v.Stride())

	require.NoError(t, v.Set(0, 1, 2, 1.5))
	assert.Len(t, texels.Pack(v.View()), w*h*4)

	row, err := v.Index(0)
	require.NoError(t, err)
	last, err := row.Index(1)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 1.5}, last.Values())
}

func TestTextureView_Vectors(t *testing.T) {
	data := containers.BytesOf(make([]f32.Vec4, 4))
	layout := gputypes.TextureDataLayout{BytesPerRow: 32}

	v, err := texels.TextureView[f32.Vec4](data, layout, gputypes.TextureFormatRGBA32Float, 2, 2, 1)
	require.NoError(t, err)
	require.NoError(t, v.Set(0, 1, 0, f32.Vec4{1, 2, 3, 4}))

	px, err := v.At(0, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, f32.Vec4{1, 2, 3, 4}, px)
}

func TestTextureView_Errors(t *testing.T) {
	data := containers.BytesOf(make([]uint32, 64))
	tight := gputypes.TextureDataLayout{BytesPerRow: 16}

	_, err := texels.TextureView[float32](data, tight, gputypes.TextureFormatRGBA8Unorm, 4, 4, 1)
	assert.ErrorIs(t, err, texels.ErrFormatMismatch)

	_, err = texels.TextureView[[4]uint8](data, tight, gputypes.TextureFormatBC1RGBAUnorm, 4, 4, 1)
	assert.ErrorIs(t, err, texels.ErrUnsupportedFormat)

	_, err = texels.TextureView[[4]uint8](data, tight, gputypes.TextureFormatRGBA8Unorm, 5, 4, 1)
	assert.ErrorIs(t, err, texels.ErrBadLayout)

	short := gputypes.TextureDataLayout{BytesPerRow: 16, RowsPerImage: 2}
	_, err = texels.TextureView[[4]uint8](data, short, gputypes.TextureFormatRGBA8Unorm, 4, 4, 1)
	assert.ErrorIs(t, err, texels.ErrBadLayout)

	// 5 images of 4 rows need 320 bytes; data has 256.
	_, err = texels.TextureView[[4]uint8](data, tight, gputypes.TextureFormatRGBA8Unorm, 4, 4, 5)
	assert.ErrorIs(t, err, texels.ErrBadLayout)
	assert.ErrorIs(t, err, containers.ErrLayout)

	v, err := texels.TextureView[[4]uint8](data, tight, gputypes.TextureFormatRGBA8Unorm, 4, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, [3]int{4, 4, 4}, v.Size())

	empty, err := texels.TextureView[[4]uint8](nil, tight, gputypes.TextureFormatRGBA8Unorm, 0, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestTextureView_Offset(t *testing.T) {
	words := []uint32{0xdead, 1, 2, 3, 4}
	layout := gputypes.TextureDataLayout{Offset: 4, BytesPerRow: 8}

	v, err := texels.TextureView[uint32](containers.BytesOf(words), layout, gputypes.TextureFormatR32Uint, 2, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 2, 3, 4}, v.Values())
}

func TestPad(t *testing.T) {
	img := gradient(3, 2)
	v, err := texels.FromRGBA(img)
	require.NoError(t, err)

	// Reinterpret the channel axis as one [4]uint8 texel per pixel.
	px, err := texels.TextureView[[4]uint8](img.Pix, gputypes.TextureDataLayout{BytesPerRow: uint32(img.Stride)},
		gputypes.TextureFormatRGBA8Unorm, 3, 2, 1)
	require.NoError(t, err)

	data, layout, err := texels.Pad(px.View(), gputypes.TextureFormatRGBA8Unorm)
	require.NoError(t, err)
	assert.Equal(t, uint32(256), layout.BytesPerRow)
	assert.Len(t, data, 512)
	assert.Equal(t, img.Pix[12:24], data[256:268])

	back, err := texels.TextureView[[4]uint8](data, layout, gputypes.TextureFormatRGBA8Unorm, 3, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, texels.Pack(px.View()), texels.Pack(back.View()))
	assert.Equal(t, v.Bytes(), texels.Pack(back.View()))
}

func TestPad_StridedSource(t *testing.T) {
	// Two 2×3 images of R32Float, read through a flipped view.
	src := make([]float32, 12)
	for i := range src {
		src[i] = float32(i)
	}
	m, err := containers.Contiguous3D(src, 2, 2, 3)
	require.NoError(t, err)
	flipped, err := m.View().Flip(2)
	require.NoError(t, err)

	data, layout, err := texels.Pad(flipped, gputypes.TextureFormatR32Float)
	require.NoError(t, err)
	assert.Equal(t, uint32(256), layout.BytesPerRow)
	assert.Equal(t, uint32(2), layout.RowsPerImage)
	assert.Len(t, data, 4*256)

	back, err := texels.TextureView[float32](data, layout, gputypes.TextureFormatR32Float, 3, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, flipped.Values(), back.View().Values())
	got, err := back.At(1, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(11), got)

	_, _, err = texels.Pad(flipped, gputypes.TextureFormatR32Uint)
	assert.ErrorIs(t, err, texels.ErrFormatMismatch)
	_, _, err = texels.Pad(flipped, gputypes.TextureFormatDepth32Float)
	assert.ErrorIs(t, err, texels.ErrUnsupportedFormat)
}
