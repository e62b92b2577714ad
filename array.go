package blend

import (
	"fmt"
	"unsafe"

	"github.com/gogpu/blend/arraycore"
)

// noCopy may be embedded into structs which must not be copied after first
// use. go vet's copylocks checker reports copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Array is a typed view of a runtime-managed, reference-counted array whose
// element type T is resolved to a storage tag by its kind K.
//
// The zero value is an empty array ready to use. An Array must not be
// copied; Clone returns a second array sharing the same storage, and the
// first mutation of either side detaches it into a private copy.
//
// Array is not safe for concurrent mutation. Distinct arrays sharing
// storage may be used from different goroutines.
type Array[T any, K Kind[T]] struct {
	_    noCopy
	core arraycore.Core
}

func (a *Array[T, K]) tag() arraycore.Tag {
	var k K
	return k.tag()
}

// mut returns the runtime and the handle to mutate, binding a zero-value
// array to the empty sentinel of its tag first.
func (a *Array[T, K]) mut() (arraycore.Runtime, *arraycore.Core) {
	rt := CurrentRuntime()
	if a.core.Impl == nil {
		a.core = rt.None(a.tag())
	}
	return rt, &a.core
}

// Len returns the number of elements.
func (a *Array[T, K]) Len() int { return a.core.Size() }

// Cap returns the number of elements the storage can hold without growing.
func (a *Array[T, K]) Cap() int {
	if a.core.Impl == nil {
		return 0
	}
	return a.core.Impl.Capacity
}

// IsEmpty reports whether the array has no elements.
func (a *Array[T, K]) IsEmpty() bool { return a.Len() == 0 }

// Slice returns the elements without copying them. The slice is valid
// until the next mutation of the array and must not be written to.
func (a *Array[T, K]) Slice() []T {
	impl := a.core.Impl
	if impl == nil || impl.Size == 0 {
		return nil
	}
	return unsafe.Slice((*T)(impl.Data), impl.Size)
}

// At returns element i. It panics if i is out of range.
func (a *Array[T, K]) At(i int) T {
	return a.Slice()[i]
}

// Clear removes all elements. Exclusively owned storage keeps its capacity.
// Storage shared with a clone is dropped instead, leaving Cap at 0.
func (a *Array[T, K]) Clear() {
	if a.core.Impl == nil {
		return
	}
	mustSucceed("Clear", CurrentRuntime().Clear(&a.core))
}

// ShrinkToFit reduces the capacity to the length.
func (a *Array[T, K]) ShrinkToFit() {
	if a.core.Impl == nil {
		return
	}
	mustSucceed("ShrinkToFit", CurrentRuntime().Shrink(&a.core))
}

// Reserve ensures room for at least n elements. It panics if the storage
// cannot grow; use TryReserve to handle that case.
func (a *Array[T, K]) Reserve(n int) {
	if err := a.TryReserve(n); err != nil {
		Logger().Error("blend: reserve failed",
			"tag", a.tag(),
			"n", n,
			"err", err)
		panic(err)
	}
}

// TryReserve ensures room for at least n elements. It returns
// ErrAllocationFailure if the storage cannot grow.
func (a *Array[T, K]) TryReserve(n int) error {
	if n < 0 {
		return ErrInvalidArgument
	}
	if n <= a.Cap() {
		return nil
	}
	rt, c := a.mut()
	return errFromStatus(rt.Reserve(c, n))
}

// Truncate shortens the array to n elements. It never grows the array;
// n at or above the length, or negative, leaves it unchanged.
func (a *Array[T, K]) Truncate(n int) {
	if n < 0 || n >= a.Len() {
		return
	}
	mustSucceed("Truncate", CurrentRuntime().Resize(&a.core, n, nil))
}

// Resize replaces the contents with a copy of values.
func (a *Array[T, K]) Resize(values []T) error {
	rt, c := a.mut()
	return errFromStatus(rt.Resize(c, len(values), dataOf(values)))
}

// Remove deletes element i.
func (a *Array[T, K]) Remove(i int) error {
	rt, c := a.mut()
	return errFromStatus(rt.RemoveIndex(c, i))
}

// RemoveRange deletes the elements in [start, end).
func (a *Array[T, K]) RemoveRange(start, end int) error {
	rt, c := a.mut()
	return errFromStatus(rt.RemoveRange(c, arraycore.Range{Start: start, End: end}))
}

// AppendSlice appends a copy of data. data may be a view of a itself.
func (a *Array[T, K]) AppendSlice(data []T) error {
	rt, c := a.mut()
	return errFromStatus(rt.AppendView(c, dataOf(data), len(data)))
}

// InsertSlice inserts a copy of data before element i. i may equal Len.
func (a *Array[T, K]) InsertSlice(i int, data []T) error {
	rt, c := a.mut()
	return errFromStatus(rt.InsertView(c, i, dataOf(data), len(data)))
}

// ReplaceSlice replaces the elements in [start, end) with a copy of data.
// The array grows or shrinks when len(data) differs from end-start.
func (a *Array[T, K]) ReplaceSlice(start, end int, data []T) error {
	rt, c := a.mut()
	r := arraycore.Range{Start: start, End: end}
	return errFromStatus(rt.ReplaceView(c, r, dataOf(data), len(data)))
}

// Equal reports whether both arrays hold equal elements. Scalars compare
// by bit pattern, so a NaN equals itself and -0 differs from +0.
func (a *Array[T, K]) Equal(other *Array[T, K]) bool {
	rt := CurrentRuntime()
	return rt.Equals(a.handle(rt), other.handle(rt))
}

// handle returns the handle to read, the sentinel for a zero-value array.
func (a *Array[T, K]) handle(rt arraycore.Runtime) *arraycore.Core {
	if a.core.Impl == nil {
		c := rt.None(a.tag())
		return &c
	}
	return &a.core
}

// Clone returns an array sharing a's storage.
func (a *Array[T, K]) Clone() Array[T, K] {
	var c arraycore.Core
	if a.core.Impl != nil {
		CurrentRuntime().InitWeak(&c, &a.core)
	}
	return Array[T, K]{core: c}
}

func (a *Array[T, K]) sharedClone() {}

// Reset drops a's reference to its storage and leaves it empty.
func (a *Array[T, K]) Reset() {
	if a.core.Impl == nil {
		return
	}
	mustSucceed("Reset", CurrentRuntime().Reset(&a.core))
}

// String formats the elements like a slice.
func (a *Array[T, K]) String() string {
	return fmt.Sprint(a.Slice())
}

// dataOf returns the address of the first element, nil for an empty slice.
func dataOf[T any](s []T) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(s))
}
