package diag

import (
	"fmt"
	"strings"
)

// Level is the severity of a diagnostic message. Levels are totally ordered:
// LevelNone < LevelError < LevelWarn < LevelInfo < LevelDebug < LevelNoise,
// where Noise is the lowest-priority, highest-volume level.
type Level int

const (
	// LevelNone is a threshold value only; no message carries it.
	LevelNone Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
	LevelNoise
)

var levelNames = [...]string{
	LevelNone:  "NONE",
	LevelError: "ERROR",
	LevelWarn:  "WARN",
	LevelInfo:  "INFO",
	LevelDebug: "DEBUG",
	LevelNoise: "NOISE",
}

// String returns the level's tag as it appears in emitted lines.
func (l Level) String() string {
	if l >= LevelNone && l <= LevelNoise {
		return levelNames[l]
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel parses a level name, case-insensitively.
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for l, n := range levelNames {
		if name == n {
			return Level(l), nil
		}
	}
	return LevelNone, fmt.Errorf("unknown log level %q", s)
}
