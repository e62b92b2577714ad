package blend

// SharedClone is implemented by types whose Clone returns a second handle
// to the same reference-counted record. Writes through either handle
// detach it first, so the two never observe each other's changes.
type SharedClone[S any] interface {
	Clone() S
	sharedClone()
}

// DeepClone is implemented by plain value types whose DeepCopy duplicates
// every field, taking new references to any records they hold.
type DeepClone[S any] interface {
	DeepCopy() S
}

var (
	_ SharedClone[Array[float64, KindFloat64]] = (*Array[float64, KindFloat64])(nil)
	_ SharedClone[Uint32Array]                 = (*Uint32Array)(nil)
	_ SharedClone[FontTagArray]                = (*FontTagArray)(nil)
	_ SharedClone[PathArray]                   = (*PathArray)(nil)
	_ SharedClone[Path]                        = (*Path)(nil)
	_ SharedClone[Image]                       = (*Image)(nil)
	_ SharedClone[ImageCodec]                  = (*ImageCodec)(nil)
	_ SharedClone[Context]                     = (*Context)(nil)
	_ DeepClone[Pattern]                       = (*Pattern)(nil)
)
