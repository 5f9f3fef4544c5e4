package diag

import (
	"fmt"
	"strings"
	"testing"
)

// recordSink captures emitted records for inspection.
type recordSink struct {
	levels []Level
	msgs   []string
}

func (r *recordSink) Emit(level Level, msg string) {
	r.levels = append(r.levels, level)
	r.msgs = append(r.msgs, msg)
}

// withRecordSink swaps the process sink for a recorder for one test.
func withRecordSink(t *testing.T) *recordSink {
	t.Helper()
	rec := &recordSink{}
	old := sink
	sink = rec
	t.Cleanup(func() { sink = old })
	return rec
}

// exitCalled marks a fatal path taken under a stubbed exit.
type exitCalled struct{ code int }

// stubExit makes fatalf panic instead of killing the test process. Combine
// with wantFatal.
func stubExit(t *testing.T) {
	t.Helper()
	old := exitFunc
	exitFunc = func(code int) { panic(exitCalled{code}) }
	t.Cleanup(func() { exitFunc = old })
}

// wantFatal runs fn and fails the test unless fn hit the fatal path.
func wantFatal(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected a fatal diagnostic, got normal return")
		} else if _, ok := r.(exitCalled); !ok {
			panic(r)
		}
	}()
	fn()
}

func TestLogEmitsEnabledLevels(t *testing.T) {
	if !WarnEnabled {
		t.Skip("warn disabled in this build")
	}
	rec := withRecordSink(t)

	Warnf("client %s sent %d stale frames", "n900", 3)

	if len(rec.msgs) != 1 {
		t.Fatalf("got %d records, want 1", len(rec.msgs))
	}
	if rec.levels[0] != LevelWarn {
		t.Errorf("level = %v, want WARN", rec.levels[0])
	}
	if rec.msgs[0] != "client n900 sent 3 stale frames" {
		t.Errorf("msg = %q", rec.msgs[0])
	}
}

func TestLogDisabledLevelIsSilent(t *testing.T) {
	if NoiseEnabled {
		t.Skip("noise enabled in this build")
	}
	rec := withRecordSink(t)

	calls := 0
	Noisef("state: %s", Lazy(func() string {
		calls++
		return "expensive"
	}))

	if len(rec.msgs) != 0 {
		t.Errorf("disabled level produced %d records, want 0", len(rec.msgs))
	}
	if calls != 0 {
		t.Errorf("lazy argument evaluated %d times on a disabled path", calls)
	}
}

func TestLazyRunsOnlyOnEmit(t *testing.T) {
	if !ErrorEnabled {
		t.Skip("error disabled in this build")
	}
	rec := withRecordSink(t)

	calls := 0
	Errorf("detail: %s", Lazy(func() string {
		calls++
		return "rendered"
	}))

	if calls != 1 {
		t.Errorf("lazy argument evaluated %d times, want 1", calls)
	}
	if len(rec.msgs) != 1 || rec.msgs[0] != "detail: rendered" {
		t.Errorf("records = %v", rec.msgs)
	}
}

// A sink whose writer always fails must not disturb the caller.
type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, fmt.Errorf("sink unavailable")
}

func TestEmissionFailureIsSwallowed(t *testing.T) {
	if !ErrorEnabled {
		t.Skip("error disabled in this build")
	}
	old := sink
	sink = WriterSink{W: failWriter{}}
	t.Cleanup(func() { sink = old })

	// Must neither panic nor report anything upward.
	Errorf("lost line %d", 1)
}

func TestFatalBypassesThreshold(t *testing.T) {
	rec := withRecordSink(t)
	stubExit(t)

	wantFatal(t, func() { fatalf("broken invariant in %s", "handler") })

	if len(rec.msgs) != 1 || !strings.Contains(rec.msgs[0], "broken invariant in handler") {
		t.Errorf("records = %v", rec.msgs)
	}
	if rec.levels[0] != LevelError {
		t.Errorf("fatal emitted at %v, want ERROR", rec.levels[0])
	}
}
