package diag

import (
	"fmt"
	"strings"
)

// dumpWidth is the number of byte groups per dump line.
const dumpWidth = 16

// Dump renders data as grouped hex and emits it at Noise level as a single
// record. In builds without Noise the formatting is skipped entirely, not
// computed and discarded. The buffer is only read and not retained.
func Dump(data []byte) {
	if NoiseEnabled {
		emit(LevelNoise, DumpString(data))
	}
}

// DumpString formats data for Dump: a header with the buffer's base address
// and length, then lines of up to 16 space-separated two-digit hex groups.
// The last line is short when len(data) is not a multiple of 16; an empty
// buffer yields only the header.
func DumpString(data []byte) string {
	var b strings.Builder
	b.Grow(len(data)*3 + 48)
	fmt.Fprintf(&b, "binary data: %p (%d bytes)", data, len(data))
	for i, v := range data {
		if i%dumpWidth == 0 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02X", v)
	}
	return b.String()
}
