package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bitsym/internal/bridge"
)

var convertChecked bool

var convertCmd = &cobra.Command{
	Use:   "convert <type> <value>",
	Short: "Convert a value to and from the type's underlying integral width",
	Long: `Convert a value through the type's integral bridge: first to the
underlying integral representation (failing on overflow), then back through
the permissive width reinterpretation. With --checked the reverse conversion
also requires the value to be a declared member or an exact flag union.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().BoolVar(&convertChecked, "checked", false, "validate membership on the reverse conversion")
}

func runConvert(cmd *cobra.Command, args []string) error {
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

	integral, err := bridge.ToIntegral(desc, raw)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "integral: %s\n", integral)

	if convertChecked {
		back, err := bridge.FromIntegralChecked(desc, integral)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "symbolic: %s (checked)\n", back)
		return nil
	}
	back := bridge.FromIntegral(desc, integral)
	fmt.Fprintf(os.Stdout, "symbolic: %s\n", back)
	return nil
}
