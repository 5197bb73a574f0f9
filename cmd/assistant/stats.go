package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		stats := map[string]int{
			"contacts": a.contacts.Count(),
			"notes":    a.notes.Count(),
			"tags":     len(a.notes.AllTags()),
		}
		if flagJSON {
			return printJSON(stats)
		}
		fmt.Printf("Contacts: %d\n", stats["contacts"])
		fmt.Printf("Notes:    %d\n", stats["notes"])
		fmt.Printf("Tags:     %d\n", stats["tags"])
		return nil
	},
}
