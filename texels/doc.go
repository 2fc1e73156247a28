// SPDX-License-Identifier: MIT

// Package texels views image pixels and texture upload/readback data as
// strided containers.
//
// Images from the standard library are viewed in place: FromRGBA and
// FromNRGBA return rows × columns × channels views honoring Stride and Rect,
// FromGray a rows × columns view. Flipping, cropping or transposing an image
// is then a view operation followed by ToRGBA:
//
//	v, _ := texels.FromRGBA(img)
//	mirrored, _ := v.View().Flip(1)
//	out, _ := texels.ToRGBA(mirrored)
//
// Texture data uses the WebGPU layout vocabulary: PaddedLayout computes a
// layout with 256-byte row alignment, TextureView addresses texels of a given
// format through such a layout, and Pack / Pad convert between padded and
// tightly packed rows.
package texels
