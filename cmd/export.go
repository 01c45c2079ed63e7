package cmd

import (
	"fmt"

	"xpense/internal/exporter"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Snapshot the ledger to a CSV report",
	Long:  "Write all records to a report file in the same CSV format as the store, overwriting any existing file at that path.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	dest := cfg.General.ExportFile
	if len(args) == 1 {
		dest = args[0]
	}

	result, err := openStore().List()
	if err != nil {
		return err
	}
	warnSkipped(result.Skipped)

	if err := exporter.Export(result.Records, dest); err != nil {
		return err
	}

	fmt.Printf("  Exported %d record(s) to %s\n", len(result.Records), dest)
	return nil
}
