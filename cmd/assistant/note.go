// Note commands: add, list, search, edit, delete, tags.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkravets/assistant/pkg/types"
)

var (
	noteTitle   string
	noteTags    []string
	noteByTag   bool
	noteContent string
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes",
}

var noteAddCmd = &cobra.Command{
	Use:   "add [content]",
	Short: "Create a new note",
	Long: `Add creates a note with optional title and tags.

Example:
  assistant note add "Call the bank on Monday" --tag work --tag finance
  assistant note add "Gift ideas" --title Birthday`,
	Args: cobra.ExactArgs(1),
	RunE: runNoteAdd,
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes, newest first",
	RunE:  runNoteList,
}

var noteSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search notes by content, title, or tag",
	Long: `Search looks through note content and titles. With --by-tag the
query is treated as a comma-free tag name instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runNoteSearch,
}

var noteEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Replace a note's content",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteEdit,
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteDelete,
}

var noteTagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List all tags in use",
	RunE:  runNoteTags,
}

func init() {
	noteAddCmd.Flags().StringVar(&noteTitle, "title", "", "note title")
	noteAddCmd.Flags().StringSliceVar(&noteTags, "tag", nil, "tag (repeatable)")

	noteSearchCmd.Flags().BoolVar(&noteByTag, "by-tag", false, "search by tag instead of content")

	noteEditCmd.Flags().StringVar(&noteContent, "content", "", "new content (required)")
	noteEditCmd.Flags().StringVar(&noteTitle, "title", "", "new title")
	_ = noteEditCmd.MarkFlagRequired("content")

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteSearchCmd)
	noteCmd.AddCommand(noteEditCmd)
	noteCmd.AddCommand(noteDeleteCmd)
	noteCmd.AddCommand(noteTagsCmd)
}

func runNoteAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	note, err := a.notes.Create(args[0], noteTitle, noteTags)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(note.ToRecord())
	}
	fmt.Printf("Created note %.8s\n", note.ID)
	return nil
}

func runNoteList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	notes := a.notes.All()
	if flagJSON {
		records := make([]any, len(notes))
		for i, n := range notes {
			records[i] = n.ToRecord()
		}
		return printJSON(records)
	}

	if len(notes) == 0 {
		fmt.Println("No notes yet.")
		return nil
	}
	fmt.Printf("%d note(s):\n", len(notes))
	for _, n := range notes {
		printNote(n)
	}
	return nil
}

func runNoteSearch(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	var found []*types.Note
	if noteByTag {
		found = a.notes.SearchByAnyTag([]string{args[0]})
	} else {
		found = a.notes.Search(args[0])
	}

	if flagJSON {
		records := make([]any, len(found))
		for i, n := range found {
			records[i] = n.ToRecord()
		}
		return printJSON(records)
	}

	if len(found) == 0 {
		fmt.Printf("No notes matching %q.\n", args[0])
		return nil
	}
	for _, n := range found {
		printNote(n)
	}
	return nil
}

func runNoteEdit(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	var title *string
	if cmd.Flags().Changed("title") {
		title = &noteTitle
	}
	note, err := a.notes.Edit(args[0], noteContent, title)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(note.ToRecord())
	}
	fmt.Printf("Updated note %.8s\n", note.ID)
	return nil
}

func runNoteDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.notes.Delete(args[0]); err != nil {
		return err
	}
	fmt.Println("Deleted note")
	return nil
}

func runNoteTags(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	tags := a.notes.AllTags()
	if flagJSON {
		return printJSON(tags)
	}
	if len(tags) == 0 {
		fmt.Println("No tags in use.")
		return nil
	}
	for _, tag := range tags {
		fmt.Printf("  #%s\n", tag)
	}
	return nil
}
