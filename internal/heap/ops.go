// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package heap

import (
	"bytes"
	"math"
	"unsafe"

	"github.com/gogpu/blend/arraycore"
)

const (
	success      = arraycore.StatusSuccess
	invalidValue = arraycore.StatusInvalidValue
	invalidState = arraycore.StatusInvalidState
)

// Clear implements arraycore.Runtime. Exclusive storage keeps its
// capacity; shared storage is dropped in favor of the sentinel.
func (h *Heap) Clear(c *arraycore.Core) arraycore.Status {
	impl := c.Impl
	if impl == nil || impl.Size == 0 {
		return success
	}
	if impl.Mutable() {
		truncate(impl, 0)
		return success
	}
	h.release(impl)
	*c = h.None(impl.Tag)
	return success
}

// Shrink implements arraycore.Runtime. A failed reallocation leaves the
// storage as it is.
func (h *Heap) Shrink(c *arraycore.Core) arraycore.Status {
	impl := c.Impl
	if impl == nil || impl.Static {
		return success
	}
	if impl.Size == 0 {
		h.release(impl)
		*c = h.None(impl.Tag)
		return success
	}
	if impl.Size == impl.Capacity {
		return success
	}
	if !h.relocate(c, impl.Size) {
		h.log().Debug("heap: shrink skipped", "tag", impl.Tag, "size", impl.Size)
	}
	return success
}

// Reserve implements arraycore.Runtime.
func (h *Heap) Reserve(c *arraycore.Core, n int) arraycore.Status {
	impl := c.Impl
	if impl == nil {
		return invalidState
	}
	if n < 0 {
		return invalidValue
	}
	if n <= impl.Capacity {
		return success
	}
	if !h.relocate(c, n) {
		return h.refuse(impl.Tag, n)
	}
	return success
}

// Resize implements arraycore.Runtime.
func (h *Heap) Resize(c *arraycore.Core, n int, fill unsafe.Pointer) arraycore.Status {
	impl := c.Impl
	if impl == nil {
		return invalidState
	}
	if n < 0 {
		return invalidValue
	}
	if n == 0 {
		return h.Clear(c)
	}
	if n == impl.Size && fill == nil {
		return success
	}
	src := sourceOf(impl, fill, n)
	if st := h.resizeMutable(c, n); st != success {
		src.release()
		return st
	}
	impl = c.Impl
	if n < impl.Size {
		truncate(impl, n)
	}
	impl.Size = n
	if fill == nil {
		return success
	}
	if impl.Tag.IsObject() {
		slots := objectView(impl)[:n]
		for i := range slots {
			slots[i].Release()
		}
	}
	src.write(impl, 0)
	return success
}

// resizeMutable makes c exclusive with room for n elements. A shared
// record that is shrinking detaches only the elements that survive.
func (h *Heap) resizeMutable(c *arraycore.Core, n int) arraycore.Status {
	impl := c.Impl
	if n >= impl.Size || impl.Mutable() {
		return h.makeMutable(c, n)
	}
	if h.relocateFirst(c, n, n) {
		return success
	}
	return h.refuse(impl.Tag, n)
}

// RemoveIndex implements arraycore.Runtime.
func (h *Heap) RemoveIndex(c *arraycore.Core, index int) arraycore.Status {
	if c.Impl == nil {
		return invalidState
	}
	if index < 0 || index >= c.Impl.Size {
		return invalidValue
	}
	return h.RemoveRange(c, arraycore.Range{Start: index, End: index + 1})
}

// RemoveRange implements arraycore.Runtime.
func (h *Heap) RemoveRange(c *arraycore.Core, r arraycore.Range) arraycore.Status {
	impl := c.Impl
	if impl == nil {
		return invalidState
	}
	if !r.Within(impl.Size) {
		return invalidValue
	}
	if r.Len() == 0 {
		return success
	}
	if st := h.makeMutable(c, impl.Size); st != success {
		return st
	}
	impl = c.Impl
	if impl.Tag.IsObject() {
		slots := objectView(impl)[r.Start:r.End]
		for i := range slots {
			slots[i].Release()
		}
	}
	shift(impl, r.End, r.Start)
	impl.Size -= r.Len()
	return success
}

// AppendView implements arraycore.Runtime.
func (h *Heap) AppendView(c *arraycore.Core, data unsafe.Pointer, n int) arraycore.Status {
	return h.InsertView(c, c.Size(), data, n)
}

// InsertView implements arraycore.Runtime.
func (h *Heap) InsertView(c *arraycore.Core, index int, data unsafe.Pointer, n int) arraycore.Status {
	impl := c.Impl
	if impl == nil {
		return invalidState
	}
	size := impl.Size
	if index < 0 || index > size || n < 0 || (n > 0 && data == nil) {
		return invalidValue
	}
	if n == 0 {
		return success
	}
	if n > math.MaxInt-size {
		return h.refuse(impl.Tag, size)
	}
	src := sourceOf(impl, data, n)
	if st := h.makeMutable(c, size+n); st != success {
		src.release()
		return st
	}
	impl = c.Impl
	shift(impl, index, index+n)
	impl.Size = size + n
	src.write(impl, index)
	return success
}

// ReplaceView implements arraycore.Runtime.
func (h *Heap) ReplaceView(c *arraycore.Core, r arraycore.Range, data unsafe.Pointer, n int) arraycore.Status {
	impl := c.Impl
	if impl == nil {
		return invalidState
	}
	size := impl.Size
	if !r.Within(size) || n < 0 || (n > 0 && data == nil) {
		return invalidValue
	}
	if r.Len() == 0 && n == 0 {
		return success
	}
	kept := size - r.Len()
	if n > math.MaxInt-kept {
		return h.refuse(impl.Tag, size)
	}
	newSize := kept + n
	src := sourceOf(impl, data, n)
	if st := h.makeMutable(c, max(newSize, size)); st != success {
		src.release()
		return st
	}
	impl = c.Impl
	if impl.Tag.IsObject() {
		slots := objectView(impl)[r.Start:r.End]
		for i := range slots {
			slots[i].Release()
		}
	}
	shift(impl, r.End, r.Start+n)
	impl.Size = newSize
	src.write(impl, r.Start)
	return success
}

// AppendItem implements arraycore.Runtime.
func (h *Heap) AppendItem(c *arraycore.Core, item *arraycore.Object) arraycore.Status {
	return h.InsertItem(c, c.Size(), item)
}

// InsertItem implements arraycore.Runtime.
func (h *Heap) InsertItem(c *arraycore.Core, index int, item *arraycore.Object) arraycore.Status {
	impl := c.Impl
	if impl == nil {
		return invalidState
	}
	size := impl.Size
	if item == nil || index < 0 || index > size {
		return invalidValue
	}
	// Take the reference before growing: item may point into this array.
	obj := item.Retain()
	if st := h.makeMutable(c, size+1); st != success {
		obj.Release()
		return st
	}
	impl = c.Impl
	shift(impl, index, index+1)
	impl.Size = size + 1
	objectView(impl)[index] = obj
	return success
}

// ReplaceItem implements arraycore.Runtime.
func (h *Heap) ReplaceItem(c *arraycore.Core, index int, item *arraycore.Object) arraycore.Status {
	impl := c.Impl
	if impl == nil {
		return invalidState
	}
	if item == nil || index < 0 || index >= impl.Size {
		return invalidValue
	}
	obj := item.Retain()
	if st := h.makeMutable(c, impl.Size); st != success {
		obj.Release()
		return st
	}
	slot := &objectView(c.Impl)[index]
	slot.Release()
	*slot = obj
	return success
}

// Equals implements arraycore.Runtime. Scalar contents compare bitwise.
func (h *Heap) Equals(a, b *arraycore.Core) bool {
	ai, bi := a.Impl, b.Impl
	if ai == bi {
		return true
	}
	n := a.Size()
	if n != b.Size() {
		return false
	}
	if n == 0 {
		return true
	}
	if ai.Tag != bi.Tag {
		return false
	}
	if ai.Tag.IsObject() {
		sa, sb := objectView(ai)[:n], objectView(bi)[:n]
		for i := range sa {
			if !sa[i].Equal(sb[i]) {
				return false
			}
		}
		return true
	}
	w := ai.Tag.Size()
	return bytes.Equal(byteView(ai)[:n*w], byteView(bi)[:n*w])
}
