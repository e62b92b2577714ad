// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package heap

import (
	"bytes"
	"slices"
	"unsafe"

	"github.com/gogpu/blend/arraycore"
)

// allocate returns an exclusive, zeroed record with room for capacity
// elements. It refuses blocks above the heap limit.
func (h *Heap) allocate(tag arraycore.Tag, capacity int) (*arraycore.Impl, bool) {
	width := tag.Size()
	if width == 0 || capacity < 0 {
		return nil, false
	}
	if int64(capacity) > h.limit/int64(width) {
		return nil, false
	}
	nbytes := capacity * width

	var data unsafe.Pointer
	if capacity > 0 {
		if tag.IsObject() {
			slots := make([]arraycore.Object, capacity)
			data = unsafe.Pointer(unsafe.SliceData(slots))
		} else {
			words := make([]uint64, (nbytes+7)/8)
			data = unsafe.Pointer(unsafe.SliceData(words))
		}
	}
	h.allocations.Add(1)
	h.bytes.Add(uint64(nbytes))
	h.log().Debug("heap: allocated block", "tag", tag, "capacity", capacity, "bytes", nbytes)
	return arraycore.NewImpl(tag, capacity, data), true
}

// byteView returns the whole scalar block of impl.
func byteView(impl *arraycore.Impl) []byte {
	if impl.Data == nil {
		return nil
	}
	return unsafe.Slice((*byte)(impl.Data), impl.Capacity*impl.Tag.Size())
}

// objectView returns the whole managed block of impl.
func objectView(impl *arraycore.Impl) []arraycore.Object {
	if impl.Data == nil {
		return nil
	}
	return unsafe.Slice((*arraycore.Object)(impl.Data), impl.Capacity)
}

// overlaps reports whether nbytes at data intersect impl's block.
func overlaps(impl *arraycore.Impl, data unsafe.Pointer, nbytes int) bool {
	if impl.Data == nil || data == nil || nbytes == 0 {
		return false
	}
	base := uintptr(impl.Data)
	end := base + uintptr(impl.Capacity*impl.Tag.Size())
	p := uintptr(data)
	return p < end && base < p+uintptr(nbytes)
}

// source holds the input elements of a view operation. Scalar input is
// copied out of the destination block when the caller passed a view of the
// array itself. Managed input is always copied and holds its own
// references until written.
type source struct {
	bytes   []byte
	objects []arraycore.Object
}

func sourceOf(impl *arraycore.Impl, data unsafe.Pointer, n int) source {
	if data == nil || n == 0 {
		return source{}
	}
	tag := impl.Tag
	if tag.IsObject() {
		objs := slices.Clone(unsafe.Slice((*arraycore.Object)(data), n))
		for i := range objs {
			objs[i].Retain()
		}
		return source{objects: objs}
	}
	b := unsafe.Slice((*byte)(data), n*tag.Size())
	if overlaps(impl, data, len(b)) {
		b = bytes.Clone(b)
	}
	return source{bytes: b}
}

// write stores src at element index of impl, handing over the references
// src holds. Managed slots in the target range must already be empty or
// moved out.
func (src source) write(impl *arraycore.Impl, index int) {
	if impl.Tag.IsObject() {
		copy(objectView(impl)[index:], src.objects)
		return
	}
	copy(byteView(impl)[index*impl.Tag.Size():], src.bytes)
}

// release drops the references of a source that was never written.
func (src source) release() {
	for i := range src.objects {
		src.objects[i].Release()
	}
}

// truncate drops the elements past n.
func truncate(impl *arraycore.Impl, n int) {
	if impl.Tag.IsObject() {
		slots := objectView(impl)[n:impl.Size]
		for i := range slots {
			slots[i].Release()
		}
	} else {
		w := impl.Tag.Size()
		clear(byteView(impl)[n*w : impl.Size*w])
	}
	impl.Size = n
}

// shift moves the elements [from, size) to start at to, zeroing the slots
// vacated at the end when shifting left.
func shift(impl *arraycore.Impl, from, to int) {
	size := impl.Size
	moved := size - from
	if impl.Tag.IsObject() {
		slots := objectView(impl)
		copy(slots[to:to+moved], slots[from:size])
		if to < from {
			clear(slots[to+moved : size])
		}
		return
	}
	w := impl.Tag.Size()
	b := byteView(impl)
	copy(b[to*w:(to+moved)*w], b[from*w:size*w])
	if to < from {
		clear(b[(to+moved)*w : size*w])
	}
}
