// Package diag provides build-time-gated diagnostics for the Remuco server:
// leveled logging, debug-only assertions, and hex dumps of wire payloads.
//
// # Levels and the compile-time threshold
//
// Messages carry one of five levels (Error, Warn, Info, Debug, Noise) with
// Noise being the lowest-priority, highest-volume level. The threshold is a
// constant fixed per build via a diag_* build tag:
//
//	go build -tags diag_noise ./...   # everything, including payload dumps
//	go build -tags diag_debug ./...   # debug logging and assertions
//	go build ./...                    # default: Info
//	go build -tags diag_none ./...    # fully silent
//
// Because Threshold is a constant, disabled call paths are dead code and the
// compiler removes them. Direct calls such as
//
//	diag.Noisef("got frame op=%d", op)
//
// still evaluate their arguments before the gate; guard anything
// side-effecting or expensive with the per-level constants, or defer it:
//
//	if diag.NoiseEnabled {
//	    diag.Noisef("state: %s", expensiveRender(s))
//	}
//	diag.Debugf("state: %s", diag.Lazy(func() string { return expensiveRender(s) }))
//
// # Assertions
//
// Assert and Unreachable are compiled in only when the threshold includes
// Debug (diag_debug or diag_noise). They are for programmer-error invariants,
// never for recoverable runtime conditions: a failed assertion writes its
// message to the sink and terminates the process. In other builds both are
// empty functions; guard costly conditions with diag.DebugBuild.
//
// # Sinks
//
// Finished lines go to a process-wide Sink, set once at startup and never
// again. The default writes "[LEVEL] message" lines to stderr. ZapSink
// forwards to a zap logger, ConsoleSink renders styled level tags on a
// terminal, and NewFileSink writes to a log file while mirroring errors to
// stderr. Emission failures are swallowed; diagnostics never become a source
// of application failure.
//
// # Dump sessions
//
// A DumpSession accumulates a multi-field record for one logical object and
// flushes it as a single Debug-level write:
//
//	s := diag.BeginDump("Track", id)
//	defer s.End()
//	s.Appendf("title=%s\n", t.Title)
//	s.Appendf("len=%d\n", t.Len)
//
// End must run exactly once per BeginDump; defer it so early returns cannot
// leak the record. Using a session outside its open state is a fatal usage
// error in every build.
//
// # Concurrency
//
// The package does no locking of its own. Concurrent callers sharing a sink
// may interleave lines; serialize externally if ordering matters.
package diag
