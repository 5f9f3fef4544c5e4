// Remdiag is a developer utility for working with Remuco server diagnostics.
//
// It renders captured wire payloads as grouped hex dumps and provides a
// live, level-colored viewer over a diagnostics log file.
//
// Usage:
//
//	remdiag dump payload.bin
//	remdiag tail /var/log/remuco.log
//
// See 'remdiag --help' for available options.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/remuco/diag/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "remdiag",
	Short: "Remuco diagnostics utilities",
	Long: `Developer utilities for Remuco server diagnostics.

The server itself emits diagnostics through the diag package, gated by the
compile-time diag_* build tags. This tool covers the reading side: inspect
captured binary payloads as hex dumps and follow diagnostics log files with
level highlighting.`,
	Version: version.Version,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(tailCmd)
	rootCmd.AddCommand(versionCmd)
}
