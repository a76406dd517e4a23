package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"bitsym/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "bitsym",
	Short: "Symbolic bitmask registry and inspector",
	Long:  `bitsym registers symbolic (enum/flags) types from TOML manifests and converts, decomposes, formats and parses their combined values`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(decomposeCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("manifest-dir", "", "directory with symbolic type manifests (*.toml)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("inline", "", "inline member list (Name=value,...) defining the type ad hoc")
	rootCmd.PersistentFlags().Int("width", 32, "underlying width in bits for --inline types")
	rootCmd.PersistentFlags().Bool("signed", false, "treat the --inline underlying type as signed")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
