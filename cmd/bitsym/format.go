package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bitsym/internal/codec"
)

var formatCmd = &cobra.Command{
	Use:   "format <type> <value>",
	Short: "Render a combined value as a comma-separated member list",
	Args:  cobra.ExactArgs(2),
	RunE:  runFormat,
}

func runFormat(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry(cmd)
	if err != nil {
		return err
	}
	desc, err := resolveDescriptor(cmd, reg, args[0])
	if err != nil {
		return err
	}
	raw, err := parseValueArg(args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, codec.Format(desc, raw))
	return nil
}
