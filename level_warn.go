//go:build diag_warn

package diag

const Threshold = LevelWarn
