//go:build diag_noise

package diag

const Threshold = LevelNoise
