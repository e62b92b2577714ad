// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sysmem reports the physical memory of the machine the binary
// runs on.
package sysmem

// Total returns the installed physical memory in bytes, or 0 when the
// platform does not expose it.
func Total() uint64 {
	return total()
}
