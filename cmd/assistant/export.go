// Export and import commands for moving data between machines.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Export all datasets to a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.store.Export(args[0]); err != nil {
			return err
		}
		fmt.Printf("Exported data to %s\n", args[0])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import [dir]",
	Short: "Import datasets from an export directory",
	Long: `Import copies dataset files from a previous export into the data
directory. Current datasets are backed up first, and incoming files
must be valid JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.store.Import(args[0]); err != nil {
			return err
		}
		fmt.Printf("Imported data from %s\n", args[0])
		return nil
	},
}
