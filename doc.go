// Package blend provides typed, copy-on-write containers over a
// reference-counted array runtime, together with the managed records
// (images, paths, codecs, rendering contexts) they can hold.
//
// # Overview
//
// Every container is an Array[T, K]: a single handle to storage owned by
// the runtime, plus a compile-time kind K that names the storage tag of the
// element type T. Only the kinds declared in this package exist, so an
// array over an unsupported element type does not compile. The aliases
// (Uint32Array, Float64Array, PathArray, ...) name every valid pairing.
//
// # Quick Start
//
//	import "github.com/gogpu/blend"
//
//	var a blend.Uint32Array
//	_ = a.Push(5)
//	_ = a.Push(7)
//	_ = a.Insert(1, 6)
//	fmt.Println(a.String()) // [5 6 7]
//
//	b := a.Clone()  // shares storage with a
//	_ = b.Push(8)   // b detaches; a is unchanged
//
// # Element Categories
//
// Plain values (integers, floats, fixed-size records such as font tags)
// live in Values arrays and are copied by value. Managed records (Path,
// Image, ImageCodec, Context) live in Objects arrays; the array holds one
// reference to each element and releases it when the element is removed
// or the array's storage is freed.
//
// # Sharing
//
// Clone never copies elements. The first mutation of a shared array, or of
// a shared managed record, detaches it into a private copy. Distinct
// handles to the same storage may be used from different goroutines; a
// single handle may not be mutated concurrently.
//
// # Errors
//
// Fallible operations return ErrAllocationFailure or ErrInvalidArgument.
// Reserve panics where TryReserve returns an error. Operations that cannot
// fail on a well-formed array panic with a *ContractError if the runtime
// reports a failure anyway.
//
// # Runtime
//
// Containers call into the process-wide runtime returned by
// CurrentRuntime. NewRuntime creates one with options such as
// WithAllocLimit; SetRuntime installs it.
package blend

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
