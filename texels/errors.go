// SPDX-License-Identifier: MIT
// Package texels: sentinel error set.
// Texture view failures caused by the memory region wrap both ErrBadLayout
// and the underlying containers error.

package texels

import "errors"

var (
	// ErrFormatMismatch indicates that an element type or channel count does
	// not describe the texel format.
	ErrFormatMismatch = errors.New("texels: element type does not match texel format")

	// ErrBadLayout signals a texture data layout that cannot serve the
	// requested extent: rows narrower than a texel row, too few rows per
	// image, or a footprint outside the data.
	ErrBadLayout = errors.New("texels: invalid texture data layout")

	// ErrUnsupportedFormat is returned for texel formats without an
	// addressable element representation (packed, compressed, depth, half float).
	ErrUnsupportedFormat = errors.New("texels: unsupported texel format")
)
