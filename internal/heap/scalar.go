// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package heap

import (
	"unsafe"

	"github.com/gogpu/blend/arraycore"
)

// word is the set of register-width values the scalar entry points copy.
type word interface {
	uint8 | uint16 | uint32 | uint64 | float32 | float64
}

func insertWord[V word](h *Heap, c *arraycore.Core, index int, v V) arraycore.Status {
	return h.InsertView(c, index, unsafe.Pointer(&v), 1)
}

func replaceWord[V word](h *Heap, c *arraycore.Core, index int, v V) arraycore.Status {
	if index < 0 || index >= c.Size() {
		return invalidValue
	}
	return h.ReplaceView(c, arraycore.Range{Start: index, End: index + 1}, unsafe.Pointer(&v), 1)
}

func (h *Heap) AppendU8(c *arraycore.Core, v uint8) arraycore.Status {
	return insertWord(h, c, c.Size(), v)
}

func (h *Heap) InsertU8(c *arraycore.Core, index int, v uint8) arraycore.Status {
	return insertWord(h, c, index, v)
}

func (h *Heap) ReplaceU8(c *arraycore.Core, index int, v uint8) arraycore.Status {
	return replaceWord(h, c, index, v)
}

func (h *Heap) AppendU16(c *arraycore.Core, v uint16) arraycore.Status {
	return insertWord(h, c, c.Size(), v)
}

func (h *Heap) InsertU16(c *arraycore.Core, index int, v uint16) arraycore.Status {
	return insertWord(h, c, index, v)
}

func (h *Heap) ReplaceU16(c *arraycore.Core, index int, v uint16) arraycore.Status {
	return replaceWord(h, c, index, v)
}

func (h *Heap) AppendU32(c *arraycore.Core, v uint32) arraycore.Status {
	return insertWord(h, c, c.Size(), v)
}

func (h *Heap) InsertU32(c *arraycore.Core, index int, v uint32) arraycore.Status {
	return insertWord(h, c, index, v)
}

func (h *Heap) ReplaceU32(c *arraycore.Core, index int, v uint32) arraycore.Status {
	return replaceWord(h, c, index, v)
}

func (h *Heap) AppendU64(c *arraycore.Core, v uint64) arraycore.Status {
	return insertWord(h, c, c.Size(), v)
}

func (h *Heap) InsertU64(c *arraycore.Core, index int, v uint64) arraycore.Status {
	return insertWord(h, c, index, v)
}

func (h *Heap) ReplaceU64(c *arraycore.Core, index int, v uint64) arraycore.Status {
	return replaceWord(h, c, index, v)
}

func (h *Heap) AppendF32(c *arraycore.Core, v float32) arraycore.Status {
	return insertWord(h, c, c.Size(), v)
}

func (h *Heap) InsertF32(c *arraycore.Core, index int, v float32) arraycore.Status {
	return insertWord(h, c, index, v)
}

func (h *Heap) ReplaceF32(c *arraycore.Core, index int, v float32) arraycore.Status {
	return replaceWord(h, c, index, v)
}

func (h *Heap) AppendF64(c *arraycore.Core, v float64) arraycore.Status {
	return insertWord(h, c, c.Size(), v)
}

func (h *Heap) InsertF64(c *arraycore.Core, index int, v float64) arraycore.Status {
	return insertWord(h, c, index, v)
}

func (h *Heap) ReplaceF64(c *arraycore.Core, index int, v float64) arraycore.Status {
	return replaceWord(h, c, index, v)
}
