package blend

import (
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/blend/arraycore"
)

// newNopLogger creates a logger that silently discards all output.
// Its handler reports every level as disabled, so callers skip formatting.
func newNopLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

// nopLogger is the logger in effect until SetLogger installs another.
var nopLogger = newNopLogger()

func init() {
	loggerPtr.Store(nopLogger)
}

// SetLogger configures the logger for blend and the active runtime.
// By default, blend produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore silence.
//
// Log levels used by blend:
//   - [slog.LevelDebug]: storage allocation and copy-on-write detachment
//   - [slog.LevelWarn]: refused allocations
//   - [slog.LevelError]: a Reserve about to panic, runtime contract violations
//
// Example:
//
//	blend.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = nopLogger
	}
	loggerPtr.Store(l)
	propagateLogger(CurrentRuntime(), l)
}

// Logger returns the current logger used by blend.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// loggerSetter is implemented by runtimes that accept a logger.
type loggerSetter interface {
	SetLogger(*slog.Logger)
}

// propagateLogger passes the logger to a runtime that accepts one.
func propagateLogger(rt arraycore.Runtime, l *slog.Logger) {
	if ls, ok := rt.(loggerSetter); ok {
		ls.SetLogger(l)
	}
}
