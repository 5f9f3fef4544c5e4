package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestColorizeLineKeepsMessage(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"error line", "[ERROR] adapter gone"},
		{"warn line", "[WARN] slow client"},
		{"info line", "[INFO] client connected"},
		{"debug line", "[DEBUG] DUMP(Track@0x1000):"},
		{"noise line", "[NOISE] binary data: 0xc000010000 (4 bytes)"},
		{"untagged line", "00 01 02 03"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := colorizeLine(tt.line)
			// Styling may add escape sequences but never lose content.
			idx := strings.Index(tt.line, "] ")
			msg := tt.line
			if idx >= 0 {
				msg = tt.line[idx+2:]
			}
			if !strings.Contains(got, msg) {
				t.Errorf("colorizeLine(%q) = %q, lost message", tt.line, got)
			}
		})
	}
}

func TestReadLinesIncremental(t *testing.T) {
	path := filepath.Join(t.TempDir(), "remuco.log")
	if err := os.WriteFile(path, []byte("[INFO] one\n[INFO] two\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	msg := readLines(path, 0)()
	got, ok := msg.(newLinesMsg)
	if !ok {
		t.Fatalf("got %T, want newLinesMsg", msg)
	}
	if len(got.lines) != 2 {
		t.Fatalf("lines = %v, want 2", got.lines)
	}

	// Append and read only the new tail.
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("[WARN] three\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	msg = readLines(path, got.offset)()
	next, ok := msg.(newLinesMsg)
	if !ok {
		t.Fatalf("got %T, want newLinesMsg", msg)
	}
	if len(next.lines) != 1 || next.lines[0] != "[WARN] three" {
		t.Errorf("new lines = %v, want only the appended line", next.lines)
	}
}

func TestReadLinesNoNewData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "remuco.log")
	if err := os.WriteFile(path, []byte("[INFO] one\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	first := readLines(path, 0)().(newLinesMsg)
	again, ok := readLines(path, first.offset)().(newLinesMsg)
	if !ok {
		t.Fatal("expected newLinesMsg")
	}
	if len(again.lines) != 0 {
		t.Errorf("re-read produced %v, want nothing", again.lines)
	}
	if again.offset != first.offset {
		t.Errorf("offset moved from %d to %d without new data", first.offset, again.offset)
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	msg := readLines(filepath.Join(t.TempDir(), "gone.log"), 0)()
	if _, ok := msg.(readErrMsg); !ok {
		t.Errorf("got %T, want readErrMsg", msg)
	}
}
