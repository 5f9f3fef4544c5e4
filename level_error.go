//go:build diag_error

package diag

const Threshold = LevelError
