package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"bitsym/internal/ui"
)

var uiCmd = &cobra.Command{
	Use:   "ui <type>",
	Short: "Inspect a type's bitmask values interactively",
	Args:  cobra.ExactArgs(1),
	RunE:  runUI,
}

func runUI(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("ui requires a terminal")
	}
	reg, err := openRegistry(cmd)
	if err != nil {
		return err
	}
	desc, err := resolveDescriptor(cmd, reg, args[0])
	if err != nil {
		return err
	}
	model := ui.NewInspectorModel(desc)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, err = program.Run()
	return err
}
