// SPDX-License-Identifier: MIT

package texels

import (
	"fmt"
	"image"
	"image/color"

	"github.com/katalvlaran/strided/containers"
	"golang.org/x/image/draw"
)

// channels is the byte count of one RGBA/NRGBA pixel.
const channels = 4

// FromRGBA views the pixels of img as rows × columns × channels. The view
// honors img.Stride and img.Rect, so sub-images work; writes land in img.
func FromRGBA(img *image.RGBA) (containers.MutableView3D[uint8], error) {
	v, err := pixelView(img.Pix, img.Stride, img.Rect, img)
	if err != nil {
		return v, fmt.Errorf("FromRGBA: %w", err)
	}

	return v, nil
}

// FromNRGBA is FromRGBA for non-premultiplied images.
func FromNRGBA(img *image.NRGBA) (containers.MutableView3D[uint8], error) {
	v, err := pixelView(img.Pix, img.Stride, img.Rect, img)
	if err != nil {
		return v, fmt.Errorf("FromNRGBA: %w", err)
	}

	return v, nil
}

// FromGray views the pixels of img as rows × columns.
func FromGray(img *image.Gray) (containers.MutableView2D[uint8], error) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w <= 0 || h <= 0 {
		return containers.MutableView2D[uint8]{}, nil
	}
	v, err := containers.NewMutableView2D[uint8](img.Pix, []int{h, w}, []int{img.Stride, 1}, containers.WithOwner(img))
	if err != nil {
		return v, fmt.Errorf("FromGray: %w", err)
	}

	return v, nil
}

func pixelView(pix []uint8, stride int, r image.Rectangle, owner any) (containers.MutableView3D[uint8], error) {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return containers.MutableView3D[uint8]{}, nil
	}

	return containers.NewMutableView3D[uint8](pix,
		[]int{h, w, channels},
		[]int{stride, channels, 1},
		containers.WithOwner(owner),
	)
}

// FromImage copies src into a new *image.RGBA anchored at the origin and
// returns it together with its view.
func FromImage(src image.Image) (*image.RGBA, containers.MutableView3D[uint8], error) {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	if lossy(src.ColorModel()) {
		containers.Logger().Warn("texels: lossy conversion to RGBA",
			"from", fmt.Sprintf("%T", src), "width", b.Dx(), "height", b.Dy())
	}

	v, err := FromRGBA(dst)
	if err != nil {
		return nil, containers.MutableView3D[uint8]{}, fmt.Errorf("FromImage: %w", err)
	}

	return dst, v, nil
}

// lossy reports whether converting from m to 8-bit premultiplied RGBA can
// change color values.
func lossy(m color.Model) bool {
	switch m {
	case color.RGBAModel, color.GrayModel, color.AlphaModel:
		return false
	}

	return true
}

// Resample scales src to width × height with nearest-neighbour sampling and
// returns the result with its view.
func Resample(src image.Image, width, height int) (*image.RGBA, containers.MutableView3D[uint8], error) {
	if width < 0 || height < 0 {
		return nil, containers.MutableView3D[uint8]{}, fmt.Errorf("Resample(%d,%d): %w", width, height, ErrBadLayout)
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	v, err := FromRGBA(dst)
	if err != nil {
		return nil, containers.MutableView3D[uint8]{}, fmt.Errorf("Resample: %w", err)
	}

	return dst, v, nil
}

// ToRGBA copies a rows × columns × 4 view into a new image in row-major
// order. The view may be sliced, flipped or transposed.
// Errors: ErrFormatMismatch when the last axis does not hold 4 channels.
func ToRGBA(v containers.View3D[uint8]) (*image.RGBA, error) {
	size := v.Size()
	if size[2] != channels && v.Len() > 0 {
		return nil, fmt.Errorf("ToRGBA: %d channels: %w", size[2], ErrFormatMismatch)
	}
	dst := image.NewRGBA(image.Rect(0, 0, size[1], size[0]))
	copy(dst.Pix, v.Bytes())

	return dst, nil
}
