// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package arraycore

import (
	"sync/atomic"
	"unsafe"
)

// Impl is the runtime-owned array record.
//
// Size is at most Capacity, and Data addresses Capacity contiguous elements
// of Tag.Size() bytes whenever Capacity is non-zero. Containers read the
// exported fields; only a Runtime writes them.
type Impl struct {
	refs atomic.Int64

	Tag      Tag
	Static   bool // sentinel: never mutated, never freed
	Size     int
	Capacity int
	Data     unsafe.Pointer
}

// NewImpl returns a record with one reference and no elements.
func NewImpl(tag Tag, capacity int, data unsafe.Pointer) *Impl {
	impl := &Impl{Tag: tag, Capacity: capacity, Data: data}
	impl.refs.Store(1)
	return impl
}

// NewStatic returns an immutable zero-length record for tag.
func NewStatic(tag Tag) *Impl {
	return &Impl{Tag: tag, Static: true}
}

// Retain adds a reference and returns impl. Static records are not counted.
func (impl *Impl) Retain() *Impl {
	if impl != nil && !impl.Static {
		impl.refs.Add(1)
	}
	return impl
}

// Release drops a reference and reports whether it was the last one.
func (impl *Impl) Release() bool {
	if impl == nil || impl.Static {
		return false
	}
	return impl.refs.Add(-1) == 0
}

// RefCount returns the current number of references.
func (impl *Impl) RefCount() int64 {
	return impl.refs.Load()
}

// Mutable reports whether the caller's reference is the only one, so the
// record may be written in place.
func (impl *Impl) Mutable() bool {
	return !impl.Static && impl.refs.Load() == 1
}

// Core is the handle a container holds. A nil Impl stands for the empty
// sentinel of the container's tag.
type Core struct {
	Impl *Impl
}

// Size returns the element count, 0 for a nil handle.
func (c *Core) Size() int {
	if c.Impl == nil {
		return 0
	}
	return c.Impl.Size
}

// Range is a half-open element range [Start, End).
type Range struct {
	Start, End int
}

// Len returns End - Start.
func (r Range) Len() int { return r.End - r.Start }

// Within reports whether r is a valid sub-range of [0, size).
func (r Range) Within(size int) bool {
	return r.Start >= 0 && r.Start <= r.End && r.End <= size
}
