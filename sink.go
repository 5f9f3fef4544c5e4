package diag

import (
	"fmt"
	"io"
	"os"
)

// Sink is a line-oriented destination for finished diagnostic records. A
// record is usually one line but may span several (hex dumps, dump sessions);
// it always arrives as a single Emit call. Implementations must not return
// errors to the diagnostics layer and must not retain msg.
type Sink interface {
	Emit(level Level, msg string)
}

// The process-wide sink. Set once at startup, before any goroutine logs;
// there is no locking around it.
var sink Sink = WriterSink{W: os.Stderr}

// SetSink replaces the process-wide sink. Passing nil silences all output.
func SetSink(s Sink) {
	if s == nil {
		s = NopSink{}
	}
	sink = s
}

func emit(level Level, msg string) {
	sink.Emit(level, msg)
}

// WriterSink writes "[LEVEL] message" lines to W. Write errors are dropped.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Emit(level Level, msg string) {
	fmt.Fprintf(s.W, "[%s] %s\n", level, msg)
}

// NopSink discards everything.
type NopSink struct{}

func (NopSink) Emit(Level, string) {}

// fileSink writes all records to a log file and mirrors errors to errw, so
// fatal problems stay visible on the console while a log file is active.
type fileSink struct {
	f    *os.File
	errw io.Writer
}

// NewFileSink opens (truncating) a log file sink. Error-level records are
// additionally mirrored to stderr.
func NewFileSink(path string) (Sink, error) {
	return newFileSink(path, os.Stderr)
}

func newFileSink(path string, errw io.Writer) (Sink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return &fileSink{f: f, errw: errw}, nil
}

func (s *fileSink) Emit(level Level, msg string) {
	fmt.Fprintf(s.f, "[%s] %s\n", level, msg)
	if level == LevelError {
		fmt.Fprintf(s.errw, "ERROR: %s (check the log for details)\n", msg)
	}
}
