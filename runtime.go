package blend

import (
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/blend/arraycore"
	"github.com/gogpu/blend/internal/heap"
)

// RuntimeOption configures a runtime created by NewRuntime.
//
// Example:
//
//	// Refuse any single block above 64 MiB
//	rt := blend.NewRuntime(blend.WithAllocLimit(64 << 20))
//	blend.SetRuntime(rt)
type RuntimeOption func(*runtimeOptions)

// runtimeOptions holds optional configuration for runtime creation.
type runtimeOptions struct {
	allocLimit int64
	logger     *slog.Logger
}

// WithAllocLimit caps the byte size of any single storage block. Growth
// beyond the cap fails with ErrAllocationFailure. Non-positive values keep
// the default, the physical memory of the machine.
func WithAllocLimit(bytes int64) RuntimeOption {
	return func(o *runtimeOptions) {
		o.allocLimit = bytes
	}
}

// WithRuntimeLogger sets the logger of the new runtime. Without it the
// runtime logs through the logger configured by SetLogger.
func WithRuntimeLogger(l *slog.Logger) RuntimeOption {
	return func(o *runtimeOptions) {
		o.logger = l
	}
}

// NewRuntime creates an in-process array runtime.
func NewRuntime(opts ...RuntimeOption) arraycore.Runtime {
	o := runtimeOptions{logger: Logger()}
	for _, opt := range opts {
		opt(&o)
	}
	return heap.New(heap.WithLimit(o.allocLimit), heap.WithLogger(o.logger))
}

// runtimeHolder wraps the interface value so it can live in an atomic.Pointer.
type runtimeHolder struct {
	rt arraycore.Runtime
}

var runtimePtr atomic.Pointer[runtimeHolder]

func init() {
	runtimePtr.Store(&runtimeHolder{rt: heap.New()})
}

// SetRuntime replaces the process-wide runtime used by every container
// operation. Pass nil to restore a default runtime.
//
// A logger installed with SetLogger is handed to rt as well, replacing
// any logger given with WithRuntimeLogger. Without one, rt keeps its own.
//
// Containers keep handles minted by the runtime that created them, so the
// runtime should be chosen before any container is populated. SetRuntime
// is safe for concurrent use, but a container must not be used with two
// different runtimes.
func SetRuntime(rt arraycore.Runtime) {
	l := Logger()
	if rt == nil {
		rt = heap.New(heap.WithLogger(l))
	} else if l != nopLogger {
		propagateLogger(rt, l)
	}
	runtimePtr.Store(&runtimeHolder{rt: rt})
}

// CurrentRuntime returns the process-wide runtime.
func CurrentRuntime() arraycore.Runtime {
	return runtimePtr.Load().rt
}

// RuntimeStats returns the counters of the current runtime, if it keeps any.
func RuntimeStats() (arraycore.Stats, bool) {
	if src, ok := CurrentRuntime().(arraycore.StatsSource); ok {
		return src.Stats(), true
	}
	return arraycore.Stats{}, false
}
