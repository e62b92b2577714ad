package blend

import "github.com/go-text/typesetting/font/opentype"

// Arrays of plain values.
type (
	Int8Array    = Values[int8, KindInt8]
	Uint8Array   = Values[uint8, KindUint8]
	Int16Array   = Values[int16, KindInt16]
	Uint16Array  = Values[uint16, KindUint16]
	Int32Array   = Values[int32, KindInt32]
	Uint32Array  = Values[uint32, KindUint32]
	Int64Array   = Values[int64, KindInt64]
	Uint64Array  = Values[uint64, KindUint64]
	Float32Array = Values[float32, KindFloat32]
	Float64Array = Values[float64, KindFloat64]
	IntArray     = Values[int, KindInt]
	UintArray    = Values[uint, KindUint]
	UintptrArray = Values[uintptr, KindUintptr]
)

// FontTagArray holds OpenType feature and table tags.
type FontTagArray = Array[opentype.Tag, KindFontTag]

// Arrays of managed elements.
type (
	PathArray       = Objects[Path, KindPath]
	ImageArray      = Objects[Image, KindImage]
	ImageCodecArray = Objects[ImageCodec, KindImageCodec]
	ContextArray    = Objects[Context, KindContext]
)
