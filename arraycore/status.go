// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package arraycore

import "fmt"

// Status is the result code returned by runtime entry points.
// Codes other than the ones declared here are opaque to callers.
type Status uint32

const (
	StatusSuccess Status = iota
	StatusOutOfMemory
	StatusInvalidValue
	StatusInvalidState
	StatusNotImplemented
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusOutOfMemory:
		return "out of memory"
	case StatusInvalidValue:
		return "invalid value"
	case StatusInvalidState:
		return "invalid state"
	case StatusNotImplemented:
		return "not implemented"
	}
	return fmt.Sprintf("status(%d)", uint32(s))
}
