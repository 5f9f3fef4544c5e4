//go:build diag_info

package diag

const Threshold = LevelInfo
