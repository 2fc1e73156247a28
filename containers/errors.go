// SPDX-License-Identifier: MIT
// Package containers: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every public operation
// returns one of these (wrapped with call-site context via %w) and tests match
// them with errors.Is. No operation panics on caller input; panics are reserved
// for nonsensical Option values (programmer error).

package containers

import "errors"

// Every message is prefixed with "containers: ..." so log lines are greppable.
// Methods wrap the sentinel with their own tag and arguments, for example
// "View2D.At(2,0): containers: index out of range".

var (
	// ErrDimensionMismatch is returned when the rank supplied by the caller
	// (size/stride slice lengths, buffer Shape length) differs from the fixed
	// dimension count of the view being built.
	ErrDimensionMismatch = errors.New("containers: dimension mismatch")

	// ErrLayout signals that a memory layout cannot back the requested view:
	// misaligned offset or stride, item size or format disagreeing with the
	// element type, a non-unit stride for a contiguous view, or a footprint
	// reaching outside the memory region.
	ErrLayout = errors.New("containers: incompatible memory layout")

	// ErrIndexOutOfRange indicates that an index is negative or not smaller
	// than the extent of its axis. Checked before any address computation.
	ErrIndexOutOfRange = errors.New("containers: index out of range")

	// ErrInvalidSlice indicates a slice descriptor that cannot be resolved
	// against an axis extent (zero step).
	ErrInvalidSlice = errors.New("containers: invalid slice")

	// ErrInvalidAxis indicates an axis argument outside [0, D) or, for
	// Transpose, a pair naming the same axis twice.
	ErrInvalidAxis = errors.New("containers: invalid axis")

	// ErrNotBroadcastable is returned by Broadcast on an axis whose extent is not 1.
	ErrNotBroadcastable = errors.New("containers: axis is not broadcastable")

	// ErrReadOnly is returned when a mutable view is requested over a buffer
	// exported as read-only.
	ErrReadOnly = errors.New("containers: buffer is read-only")
)
