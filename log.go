package diag

import (
	"fmt"
	"os"
)

// Per-level gate constants. Like Threshold these are compile-time constants,
// so an `if diag.NoiseEnabled { ... }` block disappears from builds that
// exclude Noise. Use them to guard argument construction with side effects
// or nontrivial cost.
const (
	ErrorEnabled = Threshold >= LevelError
	WarnEnabled  = Threshold >= LevelWarn
	InfoEnabled  = Threshold >= LevelInfo
	DebugEnabled = Threshold >= LevelDebug
	NoiseEnabled = Threshold >= LevelNoise
)

// Enabled reports whether messages at level l reach the sink in this build.
func Enabled(l Level) bool {
	return enabledAt(Threshold, l)
}

func enabledAt(threshold, l Level) bool {
	return l != LevelNone && l <= threshold
}

// Lazy defers a string computation until a line is actually emitted. Passed
// as a format argument, the function runs only if the level is enabled:
//
//	diag.Debugf("queue: %s", diag.Lazy(q.dump))
type Lazy func() string

func (f Lazy) String() string {
	return f()
}

// Errorf logs a formatted line at Error level.
func Errorf(format string, args ...any) {
	if ErrorEnabled {
		emit(LevelError, fmt.Sprintf(format, args...))
	}
}

// Warnf logs a formatted line at Warn level.
func Warnf(format string, args ...any) {
	if WarnEnabled {
		emit(LevelWarn, fmt.Sprintf(format, args...))
	}
}

// Infof logs a formatted line at Info level.
func Infof(format string, args ...any) {
	if InfoEnabled {
		emit(LevelInfo, fmt.Sprintf(format, args...))
	}
}

// Debugf logs a formatted line at Debug level.
func Debugf(format string, args ...any) {
	if DebugEnabled {
		emit(LevelDebug, fmt.Sprintf(format, args...))
	}
}

// Noisef logs a formatted line at Noise level.
func Noisef(format string, args ...any) {
	if NoiseEnabled {
		emit(LevelNoise, fmt.Sprintf(format, args...))
	}
}

// exitFunc is swapped out by tests; in the running server a fatal diagnostic
// always terminates the process.
var exitFunc func(int) = os.Exit

// fatalf reports an unrecoverable programmer error and terminates the
// process. It bypasses the threshold: a contract violation must never be
// silent, whatever the build logs.
func fatalf(format string, args ...any) {
	emit(LevelError, fmt.Sprintf(format, args...))
	exitFunc(1)
}
