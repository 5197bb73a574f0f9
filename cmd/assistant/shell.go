// Interactive shell: reads free-form lines, resolves them through the
// command parser, and routes the result through a dispatch table.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkravets/assistant/internal/parser"
	"github.com/mkravets/assistant/internal/service"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive shell",
	RunE:  runShell,
}

// handler executes one resolved command inside the shell. The raw
// input line is passed along so handlers can mine it for parameters.
type handler func(args parser.Args, line string) error

type shell struct {
	app      *app
	in       *bufio.Reader
	out      io.Writer
	handlers map[string]handler
	done     bool
}

func runShell(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	s := &shell{app: a, in: bufio.NewReader(os.Stdin), out: os.Stdout}
	s.handlers = s.dispatchTable()
	return s.run()
}

// dispatchTable maps canonical command ids to their handlers. The
// parser never calls these; it only returns the resolved command for
// the shell to route.
func (s *shell) dispatchTable() map[string]handler {
	return map[string]handler{
		parser.CmdAddContact:    s.addContact,
		parser.CmdSearchContact: s.searchContact,
		parser.CmdListContacts:  s.listContacts,
		parser.CmdEditContact:   s.editContact,
		parser.CmdDeleteContact: s.deleteContact,
		parser.CmdBirthdays:     s.birthdays,
		parser.CmdAddNote:       s.addNote,
		parser.CmdSearchNote:    s.searchNote,
		parser.CmdListNotes:     s.listNotes,
		parser.CmdEditNote:      s.editNote,
		parser.CmdDeleteNote:    s.deleteNote,
		parser.CmdSearchByTag:   s.searchByTag,
		parser.CmdListTags:      s.listTags,
		parser.CmdHelp:          s.help,
		parser.CmdStats:         s.stats,
		parser.CmdClear:         s.clear,
		parser.CmdExit:          s.exit,
	}
}

func (s *shell) run() error {
	fmt.Fprintln(s.out, "Assistant ready. Type 'help' for commands, 'exit' to quit.")

	for !s.done {
		fmt.Fprint(s.out, "assistant> ")
		line, err := s.in.ReadString('\n')
		if err == io.EOF {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parsed, ok := s.app.parser.Parse(line)
		if !ok {
			s.showSuggestions(line)
			continue
		}

		h, ok := s.handlers[parsed.Command]
		if !ok {
			fmt.Fprintf(s.out, "Command %q is not available here.\n", parsed.Command)
			continue
		}
		if err := h(parsed.Args, line); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
	return nil
}

// showSuggestions is the fallback for unrecognized input.
func (s *shell) showSuggestions(line string) {
	suggestions := s.app.parser.Suggest(line, 3)
	if len(suggestions) == 0 {
		fmt.Fprintln(s.out, "Unrecognized command. Type 'help' for a list of commands.")
		return
	}
	fmt.Fprintln(s.out, "Unrecognized command. Did you mean:")
	for _, sg := range suggestions {
		fmt.Fprintf(s.out, "  %s\n", sg)
	}
}

// prompt reads one line with a label, returning the trimmed input.
func (s *shell) prompt(label string) string {
	fmt.Fprintf(s.out, "%s: ", label)
	line, err := s.in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

// promptDefault returns fallback when the user enters nothing.
func (s *shell) promptDefault(label, fallback string) string {
	if v := s.prompt(fmt.Sprintf("%s [%s]", label, fallback)); v != "" {
		return v
	}
	return fallback
}

func (s *shell) addContact(args parser.Args, line string) error {
	// Free-form input often carries the parameters already.
	intent := parser.RecognizeIntent(line)
	name := intent.Params["name"]
	phone := intent.Params["phone"]
	email := intent.Params["email"]
	if len(args.Values) > 0 {
		name = args.Values[0]
	}

	if name == "" {
		name = s.prompt("Name")
	}
	if phone == "" {
		phone = s.prompt("Phone")
	}
	if email == "" {
		email = s.prompt("Email (optional)")
	}
	address := s.prompt("Address (optional)")

	var birthday *time.Time
	if raw := s.prompt("Birthday (YYYY-MM-DD, optional)"); raw != "" {
		t, err := parseBirthday(raw)
		if err != nil {
			return err
		}
		birthday = t
	}

	contact, err := s.app.contacts.Add(name, phone, email, address, birthday)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Added contact: %s\n", contact.Name)
	return nil
}

func (s *shell) searchContact(args parser.Args, line string) error {
	query := args.Query
	if len(args.Values) > 0 {
		query = args.Values[0]
	}
	if query == "" {
		query = s.prompt("Search query")
	}

	found := s.app.contacts.Search(query)
	if len(found) == 0 {
		fmt.Fprintf(s.out, "No contacts matching %q.\n", query)
		return nil
	}
	for _, c := range found {
		printContact(c)
	}
	return nil
}

func (s *shell) listContacts(parser.Args, string) error {
	contacts := s.app.contacts.All()
	if len(contacts) == 0 {
		fmt.Fprintln(s.out, "No contacts yet.")
		return nil
	}
	fmt.Fprintf(s.out, "%d contact(s):\n", len(contacts))
	for _, c := range contacts {
		printContact(c)
	}
	return nil
}

func (s *shell) editContact(args parser.Args, line string) error {
	name := ""
	if len(args.Values) > 0 {
		name = args.Values[0]
	}
	if name == "" {
		name = s.prompt("Contact name to edit")
	}
	contact, err := s.app.contacts.Get(name)
	if err != nil {
		return err
	}

	newName := s.promptDefault("Name", contact.Name)
	newPhone := s.promptDefault("Phone", contact.Phone)
	newEmail := s.promptDefault("Email", contact.Email)
	newAddress := s.promptDefault("Address", contact.Address)

	upd := service.ContactUpdate{
		Name:    &newName,
		Phone:   &newPhone,
		Email:   &newEmail,
		Address: &newAddress,
	}
	if _, err := s.app.contacts.Edit(name, upd); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Updated contact: %s\n", newName)
	return nil
}

func (s *shell) deleteContact(args parser.Args, line string) error {
	name := ""
	if len(args.Values) > 0 {
		name = args.Values[0]
	}
	if name == "" {
		name = s.prompt("Contact name to delete")
	}
	if err := s.app.contacts.Delete(name); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Deleted contact: %s\n", name)
	return nil
}

func (s *shell) birthdays(args parser.Args, line string) error {
	days := 7
	if raw, ok := args.Options["days"]; ok {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			days = n
		}
	}
	upcoming := s.app.contacts.UpcomingBirthdays(days)
	if len(upcoming) == 0 {
		fmt.Fprintf(s.out, "No birthdays in the next %d day(s).\n", days)
		return nil
	}
	for _, c := range upcoming {
		d, _ := c.DaysUntilBirthday()
		fmt.Fprintf(s.out, "  %s: in %d day(s)\n", c.Name, d)
	}
	return nil
}

func (s *shell) addNote(args parser.Args, line string) error {
	content := ""
	if len(args.Values) > 0 {
		content = args.Values[0]
	}
	if content == "" {
		content = s.prompt("Content")
	}
	title := s.prompt("Title (optional)")

	intent := parser.RecognizeIntent(line)
	tags := intent.Tags
	if raw := s.prompt("Tags (comma-separated, optional)"); raw != "" {
		tags = append(tags, strings.Split(raw, ",")...)
	}

	note, err := s.app.notes.Create(content, title, tags)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Created note %.8s\n", note.ID)
	return nil
}

func (s *shell) searchNote(args parser.Args, line string) error {
	query := args.Query
	if len(args.Values) > 0 {
		query = args.Values[0]
	}
	if query == "" {
		query = s.prompt("Search query")
	}
	found := s.app.notes.Search(query)
	if len(found) == 0 {
		fmt.Fprintf(s.out, "No notes matching %q.\n", query)
		return nil
	}
	for _, n := range found {
		printNote(n)
	}
	return nil
}

func (s *shell) listNotes(parser.Args, string) error {
	notes := s.app.notes.All()
	if len(notes) == 0 {
		fmt.Fprintln(s.out, "No notes yet.")
		return nil
	}
	fmt.Fprintf(s.out, "%d note(s):\n", len(notes))
	for _, n := range notes {
		printNote(n)
	}
	return nil
}

func (s *shell) editNote(args parser.Args, line string) error {
	id := ""
	if len(args.Values) > 0 {
		id = args.Values[0]
	}
	if id == "" {
		id = s.prompt("Note id")
	}
	content := s.prompt("New content")
	note, err := s.app.notes.Edit(id, content, nil)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Updated note %.8s\n", note.ID)
	return nil
}

func (s *shell) deleteNote(args parser.Args, line string) error {
	id := ""
	if len(args.Values) > 0 {
		id = args.Values[0]
	}
	if id == "" {
		id = s.prompt("Note id to delete")
	}
	if err := s.app.notes.Delete(id); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Deleted note")
	return nil
}

func (s *shell) searchByTag(args parser.Args, line string) error {
	intent := parser.RecognizeIntent(line)
	tags := intent.Tags
	if len(tags) == 0 {
		if raw := s.prompt("Tags (comma-separated)"); raw != "" {
			tags = strings.Split(raw, ",")
		}
	}
	found := s.app.notes.SearchByAnyTag(tags)
	if len(found) == 0 {
		fmt.Fprintln(s.out, "No notes with those tags.")
		return nil
	}
	for _, n := range found {
		printNote(n)
	}
	return nil
}

func (s *shell) listTags(parser.Args, string) error {
	tags := s.app.notes.AllTags()
	if len(tags) == 0 {
		fmt.Fprintln(s.out, "No tags in use.")
		return nil
	}
	for _, tag := range tags {
		fmt.Fprintf(s.out, "  #%s\n", tag)
	}
	return nil
}

func (s *shell) help(parser.Args, string) error {
	registry := parser.DefaultRegistry()
	fmt.Fprintln(s.out, "Commands (any listed phrasing works):")
	for _, command := range registry.Commands() {
		fmt.Fprintf(s.out, "  %-16s %s\n", command, strings.Join(registry.Phrases(command), ", "))
	}
	return nil
}

func (s *shell) stats(parser.Args, string) error {
	fmt.Fprintf(s.out, "Contacts: %d\n", s.app.contacts.Count())
	fmt.Fprintf(s.out, "Notes:    %d\n", s.app.notes.Count())
	fmt.Fprintf(s.out, "Tags:     %d\n", len(s.app.notes.AllTags()))
	if top := s.app.history.TopCommands(5); len(top) > 0 {
		fmt.Fprintf(s.out, "Most used this session: %s\n", strings.Join(top, ", "))
	}
	return nil
}

func (s *shell) clear(parser.Args, string) error {
	// ANSI clear screen + cursor home.
	fmt.Fprint(s.out, "\033[2J\033[H")
	return nil
}

func (s *shell) exit(parser.Args, string) error {
	fmt.Fprintln(s.out, "Goodbye.")
	s.done = true
	return nil
}
