package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/remuco/diag"
	"github.com/remuco/diag/internal/ui"
	"github.com/remuco/diag/internal/version"
)

var dumpLimit int

func init() {
	dumpCmd.Flags().IntVar(&dumpLimit, "limit", 0, "Dump at most this many bytes (0 = whole file)")
}

var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "Render a captured payload file as a grouped hex dump",
	Long: `Render a binary file in the same format the server uses for wire
payload dumps at NOISE level: a header with the byte length, then lines of
sixteen two-digit hex groups.`,
	Example: `  # Dump a captured payload
  remdiag dump payload.bin

  # Only the first 64 bytes
  remdiag dump payload.bin --limit 64`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func runDump(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	if dumpLimit > 0 && len(data) > dumpLimit {
		data = data[:dumpLimit]
	}
	fmt.Println(diag.DumpString(data))
	return nil
}

var tailCmd = &cobra.Command{
	Use:   "tail FILE",
	Short: "Follow a diagnostics log file in a scrollable viewer",
	Long: `Open a diagnostics log file in an interactive viewer. Lines are
colorized by their [LEVEL] tag and new lines are picked up while follow
mode is on.

Keys: arrows/j/k scroll, g/G jump to top/bottom, f toggles follow, q quits.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return ui.RunTail(args[0])
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("remdiag %s\n", version.Full())
	},
}
