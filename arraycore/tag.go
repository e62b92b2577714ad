// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package arraycore

import (
	"fmt"
	"unsafe"
)

// Tag identifies the element representation stored in an Impl.
type Tag uint32

// Tag values. The object tags at the end mark managed element types.
const (
	TagNone Tag = iota
	TagI8
	TagU8
	TagI16
	TagU16
	TagI32
	TagU32
	TagI64
	TagU64
	TagF32
	TagF64
	TagIntPtr  // pointer-width signed integer
	TagUintPtr // pointer-width unsigned integer
	TagStruct4
	TagPath
	TagImage
	TagImageCodec
	TagContext

	tagCount
)

// TagCount is the number of defined tags, TagNone included.
const TagCount = int(tagCount)

// ObjectSize is the byte width of one managed element slot.
const ObjectSize = int(unsafe.Sizeof(Object{}))

var tagNames = [TagCount]string{
	TagNone:       "none",
	TagI8:         "i8",
	TagU8:         "u8",
	TagI16:        "i16",
	TagU16:        "u16",
	TagI32:        "i32",
	TagU32:        "u32",
	TagI64:        "i64",
	TagU64:        "u64",
	TagF32:        "f32",
	TagF64:        "f64",
	TagIntPtr:     "isize",
	TagUintPtr:    "usize",
	TagStruct4:    "struct4",
	TagPath:       "path",
	TagImage:      "image",
	TagImageCodec: "image-codec",
	TagContext:    "context",
}

// String returns the short tag name used in logs.
func (t Tag) String() string {
	if int(t) < TagCount {
		return tagNames[t]
	}
	return fmt.Sprintf("tag(%d)", uint32(t))
}

// Valid reports whether t is a defined element tag.
func (t Tag) Valid() bool {
	return t > TagNone && t < tagCount
}

// IsObject reports whether elements of this tag are managed objects.
func (t Tag) IsObject() bool {
	return t >= TagPath && t < tagCount
}

// Size returns the byte width of one element. It returns 0 for TagNone
// and unknown tags.
func (t Tag) Size() int {
	switch t {
	case TagI8, TagU8:
		return 1
	case TagI16, TagU16:
		return 2
	case TagI32, TagU32, TagF32, TagStruct4:
		return 4
	case TagI64, TagU64, TagF64:
		return 8
	case TagIntPtr, TagUintPtr:
		return int(unsafe.Sizeof(uintptr(0)))
	}
	if t.IsObject() {
		return ObjectSize
	}
	return 0
}
