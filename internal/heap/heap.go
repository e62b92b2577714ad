// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package heap is the in-process array runtime behind blend's containers.
//
// Records are reference counted and copied on write: a mutating entry point
// that finds its record shared (or finds the empty sentinel) first moves
// the contents into a private record, then writes. Scalar storage is a
// zeroed []uint64 block reinterpreted at the tag's width; managed storage
// is a []arraycore.Object block so the collector keeps tracing the
// elements' records.
package heap

import (
	"log/slog"
	"math"
	"sync"
	"sync/atomic"

	"github.com/gogpu/blend/arraycore"
	"github.com/gogpu/blend/internal/sysmem"
)

const (
	// fallbackLimit caps single allocations when physical memory is unknown.
	fallbackLimit = 4 << 30

	// minBlockBytes is the smallest block handed out on growth.
	minBlockBytes = 64

	// growThreshold is the block size above which growth slows to 1.5x.
	growThreshold = 1 << 20
)

// Option configures a Heap.
type Option func(*Heap)

// WithLimit caps the byte size of any single storage block.
// Non-positive values keep the default.
func WithLimit(bytes int64) Option {
	return func(h *Heap) {
		if bytes > 0 {
			h.limit = min(bytes, int64(math.MaxInt))
		}
	}
}

// WithLogger sets the heap's logger. nil keeps the heap silent.
func WithLogger(l *slog.Logger) Option {
	return func(h *Heap) {
		h.SetLogger(l)
	}
}

// Heap implements arraycore.Runtime on Go-allocated memory.
// All methods are safe for concurrent use on distinct handles.
type Heap struct {
	limit     int64
	logger    atomic.Pointer[slog.Logger]
	sentinels [arraycore.TagCount]sentinel

	allocations atomic.Uint64
	releases    atomic.Uint64
	detaches    atomic.Uint64
	failures    atomic.Uint64
	bytes       atomic.Uint64
}

// sentinel is the lazily created empty record of one tag.
type sentinel struct {
	once sync.Once
	impl *arraycore.Impl
}

var (
	_ arraycore.Runtime     = (*Heap)(nil)
	_ arraycore.StatsSource = (*Heap)(nil)
)

var discard = slog.New(slog.DiscardHandler)

// New creates a heap. Without WithLimit the allocation ceiling is
// DefaultLimit().
func New(opts ...Option) *Heap {
	h := &Heap{limit: DefaultLimit()}
	h.logger.Store(discard)
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// DefaultLimit returns the physical memory of the machine, or 4 GiB when
// it cannot be determined, clamped to the largest int.
func DefaultLimit() int64 {
	limit := uint64(fallbackLimit)
	if total := sysmem.Total(); total > 0 {
		limit = total
	}
	return int64(min(limit, uint64(math.MaxInt)))
}

// Limit returns the allocation ceiling in bytes.
func (h *Heap) Limit() int64 { return h.limit }

// SetLogger replaces the heap's logger. Passing nil silences it.
func (h *Heap) SetLogger(l *slog.Logger) {
	if l == nil {
		l = discard
	}
	h.logger.Store(l)
}

func (h *Heap) log() *slog.Logger { return h.logger.Load() }

// Stats returns a snapshot of the heap counters.
func (h *Heap) Stats() arraycore.Stats {
	return arraycore.Stats{
		Allocations:    h.allocations.Load(),
		Releases:       h.releases.Load(),
		Detaches:       h.detaches.Load(),
		AllocFailures:  h.failures.Load(),
		BytesAllocated: h.bytes.Load(),
	}
}

// None implements arraycore.Runtime.
func (h *Heap) None(tag arraycore.Tag) arraycore.Core {
	if int(tag) >= arraycore.TagCount {
		panic("heap: unknown tag " + tag.String())
	}
	s := &h.sentinels[tag]
	s.once.Do(func() {
		s.impl = arraycore.NewStatic(tag)
	})
	return arraycore.Core{Impl: s.impl}
}

// InitWeak implements arraycore.Runtime.
func (h *Heap) InitWeak(dst, src *arraycore.Core) {
	dst.Impl = src.Impl.Retain()
}

// Reset implements arraycore.Runtime.
func (h *Heap) Reset(c *arraycore.Core) arraycore.Status {
	impl := c.Impl
	if impl == nil {
		return arraycore.StatusSuccess
	}
	h.release(impl)
	*c = h.None(impl.Tag)
	return arraycore.StatusSuccess
}

// release drops one reference and frees the record on the last one.
func (h *Heap) release(impl *arraycore.Impl) {
	if !impl.Release() {
		return
	}
	if impl.Tag.IsObject() {
		slots := objectView(impl)[:impl.Size]
		for i := range slots {
			slots[i].Release()
		}
	}
	impl.Size, impl.Capacity, impl.Data = 0, 0, nil
	h.releases.Add(1)
}

// refuse records an allocation failure.
func (h *Heap) refuse(tag arraycore.Tag, capacity int) arraycore.Status {
	h.failures.Add(1)
	h.log().Warn("heap: allocation refused",
		"tag", tag,
		"capacity", capacity,
		"width", tag.Size(),
		"limit", h.limit)
	return arraycore.StatusOutOfMemory
}

// grow picks the capacity for a block that must hold need elements.
func grow(width, capacity, need int) int {
	next := capacity * 2
	if capacity*width >= growThreshold {
		next = capacity + capacity/2
	}
	if next < capacity {
		next = need
	}
	return max(next, need, max(minBlockBytes/width, 1))
}

// makeMutable ensures c holds an exclusive record with room for need
// elements, detaching or growing as required.
func (h *Heap) makeMutable(c *arraycore.Core, need int) arraycore.Status {
	impl := c.Impl
	if impl.Mutable() && need <= impl.Capacity {
		return arraycore.StatusSuccess
	}
	exact := max(need, impl.Size)
	target := exact
	if need > impl.Capacity {
		target = grow(impl.Tag.Size(), impl.Capacity, need)
	}
	if h.relocate(c, target) || (target != exact && h.relocate(c, exact)) {
		return arraycore.StatusSuccess
	}
	return h.refuse(impl.Tag, exact)
}

// relocate moves c's elements into a fresh record of the given capacity.
// Elements are moved out of an exclusive record and copied (retained) out
// of a shared one.
func (h *Heap) relocate(c *arraycore.Core, capacity int) bool {
	return h.relocateFirst(c, capacity, c.Impl.Size)
}

// relocateFirst is relocate keeping only the first n elements. Elements
// past n are released from an exclusive record and never copied out of a
// shared one.
func (h *Heap) relocateFirst(c *arraycore.Core, capacity, n int) bool {
	old := c.Impl
	n = min(n, old.Size)
	fresh, ok := h.allocate(old.Tag, max(capacity, n))
	if !ok {
		return false
	}
	exclusive := old.Mutable()
	if exclusive && n < old.Size {
		truncate(old, n)
	}
	if old.Tag.IsObject() {
		src := objectView(old)[:n]
		dst := objectView(fresh)[:n]
		copy(dst, src)
		if exclusive {
			clear(src)
		} else {
			for i := range dst {
				dst[i].Retain()
			}
		}
	} else if n > 0 {
		w := old.Tag.Size()
		copy(byteView(fresh), byteView(old)[:n*w])
	}
	fresh.Size = n

	if !exclusive && !old.Static {
		h.detaches.Add(1)
		h.log().Debug("heap: detached shared array",
			"tag", old.Tag,
			"size", n,
			"refs", old.RefCount())
	}
	if exclusive {
		old.Size = 0
	}
	h.release(old)
	c.Impl = fresh
	return true
}
