//go:build diag_none

package diag

const Threshold = LevelNone
