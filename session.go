package diag

import (
	"fmt"
	"strings"
)

type sessionState int

const (
	sessionUnopened sessionState = iota
	sessionOpen
	sessionClosed
)

// DumpSession accumulates a multi-field diagnostic record for one logical
// object and flushes it as a single Debug-level sink write. Sessions move
// Unopened → Open (BeginDump) → Closed (End); Closed is terminal. Using a
// session outside the Open state is a fatal usage error in every build —
// the record either flushes exactly once or the process dies pointing at
// the call site that broke the contract.
//
// End should be deferred immediately after BeginDump so that early returns
// in the enclosing function cannot leak the record.
type DumpSession struct {
	state sessionState
	buf   strings.Builder
}

// BeginDump opens a session. label tags the kind of object being dumped and
// id is an address or correlation id, recorded in the header so log lines
// about the same object can be cross-referenced.
func BeginDump(label string, id uintptr) *DumpSession {
	s := &DumpSession{state: sessionOpen}
	s.buf.Grow(500)
	fmt.Fprintf(&s.buf, "DUMP(%s@%#x):\n", label, id)
	return s
}

// Appendf appends formatted text to the record. Callable any number of
// times while the session is open.
func (s *DumpSession) Appendf(format string, args ...any) {
	if s.state != sessionOpen {
		fatalf("dump session: Appendf outside open session (state %d)", s.state)
		return
	}
	fmt.Fprintf(&s.buf, format, args...)
}

// End flushes the record as one Debug-level write and closes the session.
// Calling End twice is a fatal usage error.
func (s *DumpSession) End() {
	if s.state != sessionOpen {
		fatalf("dump session: End on a session that is not open (state %d)", s.state)
		return
	}
	s.state = sessionClosed
	if DebugEnabled {
		emit(LevelDebug, s.buf.String())
	}
	s.buf.Reset()
}
