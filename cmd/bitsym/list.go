package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"bitsym/internal/flagbits"
)

var listMembers bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered symbolic types",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listMembers, "members", false, "also list each type's members in declaration order")
}

func runList(cmd *cobra.Command, _ []string) error {
	useColor := configureColor(cmd)
	reg, err := openRegistry(cmd)
	if err != nil {
		return err
	}
	if reg.Len() == 0 {
		fmt.Fprintln(os.Stdout, "no symbolic types registered")
		return nil
	}

	rows := make([][]string, 0, reg.Len())
	for _, id := range reg.TypeIDs() {
		desc, ok := reg.Lookup(id)
		if !ok {
			continue
		}
		shape := "plain"
		if flagbits.IsFlagShaped(desc) {
			shape = "flags"
		}
		underlying := fmt.Sprintf("%s %s", signedness(desc.Signed()), desc.Width())
		rows = append(rows, []string{id, underlying, fmt.Sprintf("%d", desc.Len()), shape})
	}
	printTable(os.Stdout, []string{"TYPE", "UNDERLYING", "MEMBERS", "SHAPE"}, rows, useColor)

	if !listMembers {
		return nil
	}
	for _, id := range reg.TypeIDs() {
		desc, ok := reg.Lookup(id)
		if !ok {
			continue
		}
		fmt.Fprintf(os.Stdout, "\n%s:\n", id)
		for _, m := range desc.Members() {
			fmt.Fprintf(os.Stdout, "  %s = %s\n", m.Name, m.Value)
		}
	}
	return nil
}

// printTable renders rows with runewidth-padded columns; the header line is
// styled when color is active.
func printTable(out io.Writer, header []string, rows [][]string, useColor bool) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	line := func(cells []string) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = runewidth.FillRight(cell, widths[i])
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	headerLine := line(header)
	if useColor {
		headerLine = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")).Render(headerLine)
	}
	fmt.Fprintln(out, headerLine)
	for _, row := range rows {
		fmt.Fprintln(out, line(row))
	}
}

func signedness(signed bool) string {
	if signed {
		return "signed"
	}
	return "unsigned"
}
