// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package arraycore defines the boundary between blend's typed containers
// and the runtime that owns array storage.
//
// # Overview
//
// Every container value holds a [Core], a one-word handle pointing at an
// [Impl] record. The Impl carries the element count, the capacity, a data
// pointer and an atomic reference count. The record and the memory behind
// its data pointer belong to the runtime: containers only read Size,
// Capacity and Data, and route every mutation through a [Runtime] entry
// point so that copy-on-write detachment happens before shared state is
// altered.
//
// # Type tags
//
// A [Tag] tells the runtime how to interpret the bytes of an Impl. Tags are
// never inspected at runtime to validate element types: the typed layer
// resolves them from static types and the runtime trusts them.
//
// # Managed elements
//
// Elements that own further runtime resources are stored as [Object]
// handles. Appending such an element retains it, removing it releases it,
// and the last release runs the payload's [Releaser] hook.
//
// # Thread safety
//
// Reference counts are atomic, so handles that share one Impl may be
// cloned and released from different goroutines. Everything else follows
// the usual Go rule: one writer or many readers per handle.
package arraycore
