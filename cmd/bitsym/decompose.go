package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bitsym/internal/flagbits"
	"bitsym/internal/wide"
)

var decomposeStrict bool

var decomposeCmd = &cobra.Command{
	Use:   "decompose <type> <value>",
	Short: "Split a combined value into declared single-bit members",
	Long:  "Split a combined value into the declared atomic members it contains, in declaration order, reporting any bits that match no declared member.",
	Args:  cobra.ExactArgs(2),
	RunE:  runDecompose,
}

func init() {
	decomposeCmd.Flags().BoolVar(&decomposeStrict, "strict", false, "fail when the value is not an exact union of declared members")
}

func runDecompose(cmd *cobra.Command, args []string) error {
	configureColor(cmd)
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

	dec := flagbits.Decompose(desc, raw)
	memberColor := color.New(color.FgGreen)
	mask := wide.Mask(desc.Width().Bits())
	for _, m := range dec.Members {
		fmt.Fprintf(os.Stdout, "%s\t0x%x\n", memberColor.Sprint(m.Name), m.Value.Bits()&mask)
	}
	if dec.Remainder != 0 {
		warn := color.New(color.FgRed)
		fmt.Fprintf(os.Stdout, "%s\t0x%x\n", warn.Sprint("unrecognized bits"), dec.Remainder)
		if decomposeStrict {
			return fmt.Errorf("value %s is not an exact union of %q members (leftover 0x%x)", raw, desc.TypeID(), dec.Remainder)
		}
	}
	return nil
}
