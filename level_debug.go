//go:build diag_debug

package diag

const Threshold = LevelDebug
