package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bitsym/internal/registry"
	"bitsym/internal/snapshot"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Save or load a registry snapshot",
}

var snapshotSaveCmd = &cobra.Command{
	Use:   "save <file>",
	Short: "Write the registry built from manifests to a snapshot file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotSave,
}

var snapshotLoadCmd = &cobra.Command{
	Use:   "load <file>",
	Short: "Read a snapshot file and list the types it restores",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotLoad,
}

func init() {
	snapshotCmd.AddCommand(snapshotSaveCmd)
	snapshotCmd.AddCommand(snapshotLoadCmd)
}

func runSnapshotSave(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry(cmd)
	if err != nil {
		return err
	}
	if reg.Len() == 0 {
		return fmt.Errorf("nothing to snapshot: no types registered (see --manifest-dir)")
	}
	if err := snapshot.Save(args[0], reg); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "saved %d type(s) to %s\n", reg.Len(), args[0])
	return nil
}

func runSnapshotLoad(_ *cobra.Command, args []string) error {
	reg := registry.New()
	if err := snapshot.Load(args[0], reg); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "restored %d type(s):\n", reg.Len())
	for _, id := range reg.TypeIDs() {
		fmt.Fprintf(os.Stdout, "  %s\n", id)
	}
	return nil
}
