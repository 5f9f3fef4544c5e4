//go:build !diag_none && !diag_error && !diag_warn && !diag_info && !diag_debug && !diag_noise

package diag

// Threshold is the compiled-in severity threshold. Exactly one level_*.go
// file is selected per build by the diag_* tags; without a tag the build
// logs at Info and below.
const Threshold = LevelInfo
