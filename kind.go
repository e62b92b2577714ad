package blend

import (
	"unsafe"

	"github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/blend/arraycore"
)

// Kind resolves an element type T to the tag its storage is kept under.
//
// The interface is sealed: its methods are unexported, so only the kinds
// declared in this package satisfy it and an array over an unregistered
// element type does not compile. Every kind is a zero-size struct; the
// resolution happens entirely at compile time.
type Kind[T any] interface {
	tag() arraycore.Tag
	elem(*T)
}

// ScalarKind is a Kind whose elements are copied by value through one of
// the width-specific runtime entry points.
type ScalarKind[T any] interface {
	Kind[T]
	append(rt arraycore.Runtime, c *arraycore.Core, v T) arraycore.Status
	insert(rt arraycore.Runtime, c *arraycore.Core, index int, v T) arraycore.Status
	replace(rt arraycore.Runtime, c *arraycore.Core, index int, v T) arraycore.Status
}

// ObjectKind is a Kind whose elements are reference-counted records.
// Their in-memory layout is exactly one arraycore.Object.
type ObjectKind[T any] interface {
	Kind[T]
	object(*T) *arraycore.Object
}

// Registered element kinds.
type (
	KindInt8    struct{}
	KindUint8   struct{}
	KindInt16   struct{}
	KindUint16  struct{}
	KindInt32   struct{}
	KindUint32  struct{}
	KindInt64   struct{}
	KindUint64  struct{}
	KindFloat32 struct{}
	KindFloat64 struct{}

	// KindInt, KindUint and KindUintptr resolve to the 32- or 64-bit tag
	// of the build target.
	KindInt     struct{}
	KindUint    struct{}
	KindUintptr struct{}

	// KindFontTag stores OpenType tags as four-byte plain records.
	KindFontTag struct{}

	KindPath       struct{}
	KindImage      struct{}
	KindImageCodec struct{}
	KindContext    struct{}
)

// Plain records must have the byte width of their tag, and managed
// records must be exactly one object handle wide.
const (
	_ = unsafe.Sizeof(opentype.Tag(0)) - 4
	_ = 4 - unsafe.Sizeof(opentype.Tag(0))

	_ = unsafe.Sizeof(Path{}) - unsafe.Sizeof(arraycore.Object{})
	_ = unsafe.Sizeof(arraycore.Object{}) - unsafe.Sizeof(Path{})
	_ = unsafe.Sizeof(Image{}) - unsafe.Sizeof(arraycore.Object{})
	_ = unsafe.Sizeof(arraycore.Object{}) - unsafe.Sizeof(Image{})
	_ = unsafe.Sizeof(ImageCodec{}) - unsafe.Sizeof(arraycore.Object{})
	_ = unsafe.Sizeof(arraycore.Object{}) - unsafe.Sizeof(ImageCodec{})
	_ = unsafe.Sizeof(Context{}) - unsafe.Sizeof(arraycore.Object{})
	_ = unsafe.Sizeof(arraycore.Object{}) - unsafe.Sizeof(Context{})
)

func (KindFontTag) tag() arraycore.Tag { return arraycore.TagStruct4 }
func (KindFontTag) elem(*opentype.Tag) {}

func (KindPath) tag() arraycore.Tag { return arraycore.TagPath }
func (KindPath) elem(*Path) {}
func (KindPath) object(p *Path) *arraycore.Object { return &p.obj }

func (KindImage) tag() arraycore.Tag { return arraycore.TagImage }
func (KindImage) elem(*Image) {}
func (KindImage) object(img *Image) *arraycore.Object { return &img.obj }

func (KindImageCodec) tag() arraycore.Tag { return arraycore.TagImageCodec }
func (KindImageCodec) elem(*ImageCodec) {}
func (KindImageCodec) object(c *ImageCodec) *arraycore.Object { return &c.obj }

func (KindContext) tag() arraycore.Tag { return arraycore.TagContext }
func (KindContext) elem(*Context) {}
func (KindContext) object(ctx *Context) *arraycore.Object { return &ctx.obj }
