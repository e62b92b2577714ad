// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package arraycore

import "unsafe"

// Runtime is the set of entry points a container needs from the library
// that owns array storage.
//
// Mutating entry points detach shared or sentinel storage into a private
// copy before writing. They leave the handle untouched when they fail.
// View entry points read n elements at data, laid out with the width of
// the handle's tag. Item entry points take one managed element and retain
// it; scalar entry points copy one value of the named width.
type Runtime interface {
	// None returns a handle to the shared empty sentinel of tag.
	None(tag Tag) Core
	// InitWeak makes dst share src's record.
	InitWeak(dst, src *Core)
	// Reset releases c's reference and rebinds it to its tag's sentinel.
	Reset(c *Core) Status

	Clear(c *Core) Status
	Shrink(c *Core) Status
	Reserve(c *Core, n int) Status
	// Resize sets the length to n. New slots are zeroed; when fill is not
	// nil every slot is assigned from the n elements at fill.
	Resize(c *Core, n int, fill unsafe.Pointer) Status
	RemoveIndex(c *Core, index int) Status
	RemoveRange(c *Core, r Range) Status
	AppendView(c *Core, data unsafe.Pointer, n int) Status
	InsertView(c *Core, index int, data unsafe.Pointer, n int) Status
	ReplaceView(c *Core, r Range, data unsafe.Pointer, n int) Status

	AppendItem(c *Core, item *Object) Status
	InsertItem(c *Core, index int, item *Object) Status
	ReplaceItem(c *Core, index int, item *Object) Status

	AppendU8(c *Core, v uint8) Status
	InsertU8(c *Core, index int, v uint8) Status
	ReplaceU8(c *Core, index int, v uint8) Status
	AppendU16(c *Core, v uint16) Status
	InsertU16(c *Core, index int, v uint16) Status
	ReplaceU16(c *Core, index int, v uint16) Status
	AppendU32(c *Core, v uint32) Status
	InsertU32(c *Core, index int, v uint32) Status
	ReplaceU32(c *Core, index int, v uint32) Status
	AppendU64(c *Core, v uint64) Status
	InsertU64(c *Core, index int, v uint64) Status
	ReplaceU64(c *Core, index int, v uint64) Status
	AppendF32(c *Core, v float32) Status
	InsertF32(c *Core, index int, v float32) Status
	ReplaceF32(c *Core, index int, v float32) Status
	AppendF64(c *Core, v float64) Status
	InsertF64(c *Core, index int, v float64) Status
	ReplaceF64(c *Core, index int, v float64) Status

	// Equals compares contents element by element.
	Equals(a, b *Core) bool
}

// Stats is a snapshot of runtime counters.
type Stats struct {
	Allocations    uint64 // storage blocks allocated
	Releases       uint64 // records freed by their last release
	Detaches       uint64 // copy-on-write detachments
	AllocFailures  uint64 // allocations refused
	BytesAllocated uint64 // total bytes of storage allocated
}

// StatsSource is implemented by runtimes that keep Stats.
type StatsSource interface {
	Stats() Stats
}
