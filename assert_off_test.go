//go:build !diag_debug && !diag_noise

package diag

import "testing"

func TestAssertElidedInReleaseBuilds(t *testing.T) {
	rec := withRecordSink(t)

	// Must return normally and touch nothing.
	Assert(false, "never evaluated")
	Unreachable()

	if len(rec.msgs) != 0 {
		t.Errorf("elided assertions emitted %v", rec.msgs)
	}
	if DebugBuild {
		t.Error("DebugBuild must be false without diag_debug/diag_noise")
	}
}
