// SPDX-License-Identifier: MIT
// Package vertex: sentinel error set.
// Every public operation returns one of these wrapped with call-site context
// via %w; view construction failures additionally wrap the containers errors.

package vertex

import "errors"

var (
	// ErrUnknownLocation is returned when no attribute of a layout is bound
	// to the requested shader location.
	ErrUnknownLocation = errors.New("vertex: no attribute at location")

	// ErrFormatMismatch indicates that the element type requested for a view
	// does not describe the attribute's vertex format.
	ErrFormatMismatch = errors.New("vertex: element type does not match attribute format")

	// ErrBadLayout signals an inconsistent vertex buffer layout or a data
	// region that is not a whole number of vertices.
	ErrBadLayout = errors.New("vertex: invalid buffer layout")

	// ErrNoEntryPoint is returned when a shader has no matching vertex entry point.
	ErrNoEntryPoint = errors.New("vertex: vertex entry point not found")

	// ErrUnsupportedType indicates a shader input or vertex format that has no
	// addressable element representation.
	ErrUnsupportedType = errors.New("vertex: unsupported attribute type")
)
