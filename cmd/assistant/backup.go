// Backup commands: list and restore dataset backups.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var backupAt string

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage dataset backups",
}

var backupListCmd = &cobra.Command{
	Use:   "list [dataset]",
	Short: "List backups for a dataset, newest first",
	Long: `List shows the timestamped backups kept for a dataset
("contacts" or "notes").`,
	Args: cobra.ExactArgs(1),
	RunE: runBackupList,
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore [dataset]",
	Short: "Restore a dataset from backup",
	Long: `Restore copies a backup over the live dataset file. Without --at
the most recent backup is used.

Example:
  assistant backup restore contacts
  assistant backup restore notes --at 20250812_143015`,
	Args: cobra.ExactArgs(1),
	RunE: runBackupRestore,
}

func init() {
	backupRestoreCmd.Flags().StringVar(&backupAt, "at", "", "backup timestamp (YYYYMMDD_HHMMSS, default: most recent)")

	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupRestoreCmd)
}

func runBackupList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	backups := a.store.ListBackups(args[0])
	if flagJSON {
		return printJSON(backups)
	}

	if len(backups) == 0 {
		fmt.Printf("No backups for %q.\n", args[0])
		return nil
	}
	for _, b := range backups {
		fmt.Printf("  %s  %6d bytes  %s\n",
			b.Timestamp.Format("2006-01-02 15:04:05"), b.Size, b.Path)
	}
	return nil
}

func runBackupRestore(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	var at *time.Time
	if backupAt != "" {
		t, err := time.Parse("20060102_150405", backupAt)
		if err != nil {
			return fmt.Errorf("invalid timestamp %q, expected YYYYMMDD_HHMMSS", backupAt)
		}
		at = &t
	}

	if !a.store.RestoreFromBackup(args[0], at) {
		return fmt.Errorf("no matching backup for %q", args[0])
	}
	fmt.Printf("Restored %s from backup.\n", args[0])
	return nil
}
