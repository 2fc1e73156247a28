// SPDX-License-Identifier: MIT

// Package containers: functional configuration for view constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values,
//   - gatherOptions helper (internal).
//
// Notes:
//   - The owner handle is never consulted for address computation; it only
//     travels with the view (and every view derived from it) so callers can
//     recover the object that keeps the memory meaningful.
//   - Offset is a byte offset of the first element inside the memory region.
//     Views with negative strides usually need a non-zero offset.
package containers

// DefaultOffset is the byte offset of the first element when WithOffset is not given.
const DefaultOffset = 0

const panicOffsetNegative = "containers: WithOffset: offset must be non-negative"

// Option mutates internal options. Safe to apply repeatedly (last one wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; constructors accept `...Option`.
type Options struct {
	owner  any // memory owner handle, carried but never dereferenced
	offset int // byte offset of the first element; DefaultOffset
}

// WithOwner attaches the object that owns the viewed memory.
// Derived views (slices, transposes, sub-views) inherit it.
func WithOwner(owner any) Option {
	return func(o *Options) {
		o.owner = owner
	}
}

// WithOffset sets the byte offset of the first element within the memory region.
// Panics if offset < 0.
func WithOffset(offset int) Option {
	if offset < 0 {
		panic(panicOffsetNegative)
	}

	return func(o *Options) {
		o.offset = offset
	}
}

// gatherOptions resolves opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{offset: DefaultOffset}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
