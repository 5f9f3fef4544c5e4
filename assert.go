//go:build diag_debug || diag_noise

package diag

// DebugBuild is true when assertions are compiled in, matching builds whose
// threshold includes Debug. Guard assertion conditions that are expensive or
// have side effects:
//
//	if diag.DebugBuild {
//	    diag.Assert(queueSorted(q), "playlist out of order")
//	}
const DebugBuild = true

// Assert terminates the process with msg if cond is false. Use only for
// programmer-error invariants, never for conditions a correct peer or user
// can trigger.
func Assert(cond bool, msg string) {
	if !cond {
		fatalf("assertion failed: %s", msg)
	}
}

// Unreachable marks a code path that must never execute. Reaching it is
// always fatal.
func Unreachable() {
	fatalf("reached code marked unreachable")
}
