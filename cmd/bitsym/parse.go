package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bitsym/internal/codec"
	"bitsym/internal/wide"
)

var parseMatchCase bool

var parseCmd = &cobra.Command{
	Use:   "parse <type> <names>",
	Short: "Parse a comma-separated member list into a combined value",
	Long:  "Parse a comma-separated list of member names into a combined value. Matching is case-insensitive unless --match-case is given.",
	Args:  cobra.ExactArgs(2),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseMatchCase, "match-case", false, "match member names case-sensitively")
}

func runParse(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry(cmd)
	if err != nil {
		return err
	}
	desc, err := resolveDescriptor(cmd, reg, args[0])
	if err != nil {
		return err
	}

	var opts []codec.Option
	if parseMatchCase {
		opts = append(opts, codec.MatchCase())
	}
	raw, err := codec.Parse(desc, args[1], opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%s (0x%x)\n", raw, raw.Bits()&wide.Mask(desc.Width().Bits()))
	return nil
}
