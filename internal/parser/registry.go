// Package parser turns free-form user input into structured commands.
// Resolution runs exact match, then fuzzy similarity, then regex-based
// natural-language intent extraction, with scored suggestions as the
// caller's fallback.
package parser

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Canonical command identifiers.
const (
	CmdAddContact    = "add-contact"
	CmdSearchContact = "search-contact"
	CmdListContacts  = "list-contacts"
	CmdEditContact   = "edit-contact"
	CmdDeleteContact = "delete-contact"
	CmdBirthdays     = "birthdays"
	CmdAddNote       = "add-note"
	CmdSearchNote    = "search-note"
	CmdListNotes     = "list-notes"
	CmdEditNote      = "edit-note"
	CmdDeleteNote    = "delete-note"
	CmdSearchByTag   = "search-by-tag"
	CmdListTags      = "list-tags"
	CmdHelp          = "help"
	CmdStats         = "stats"
	CmdClear         = "clear"
	CmdExit          = "exit"
)

// ErrDuplicatePhrase marks a registry configuration error: the same
// phrase mapped to more than one command.
var ErrDuplicatePhrase = errors.New("phrase maps to more than one command")

// commandPatterns is the built-in table of phrasings a user might type
// for each command.
var commandPatterns = map[string][]string{
	CmdAddContact: {
		"add contact", "new contact", "create contact",
		"add person", "new person", "save contact",
	},
	CmdSearchContact: {
		"find contact", "search contact", "look for contact",
		"find person", "search person", "where is",
	},
	CmdListContacts: {
		"list contacts", "show contacts", "all contacts",
		"show all contacts", "display contacts",
	},
	CmdEditContact: {
		"edit contact", "update contact", "change contact", "modify contact",
	},
	CmdDeleteContact: {
		"delete contact", "remove contact", "erase contact", "drop contact",
	},
	CmdBirthdays: {
		"birthdays", "upcoming birthdays", "show birthdays",
		"birthday reminder", "who has birthday",
	},
	CmdAddNote: {
		"add note", "new note", "create note", "write note", "save note",
	},
	CmdSearchNote: {
		"find note", "search note", "look for note", "search notes",
	},
	CmdListNotes: {
		"list notes", "show notes", "all notes",
		"show all notes", "display notes",
	},
	CmdEditNote: {
		"edit note", "update note", "change note", "modify note",
	},
	CmdDeleteNote: {
		"delete note", "remove note", "erase note", "drop note",
	},
	CmdSearchByTag: {
		"search by tag", "find by tag", "search tag",
		"notes with tag", "filter by tag",
	},
	CmdListTags: {
		"list tags", "show tags", "all tags", "available tags",
	},
	CmdHelp: {
		"help", "h", "?", "commands", "what can you do",
	},
	CmdStats: {
		"stats", "statistics", "show stats", "show statistics", "info",
	},
	CmdClear: {
		"clear", "cls", "clear screen", "clean",
	},
	CmdExit: {
		"exit", "quit", "bye", "goodbye", "q",
	},
}

// phraseEntry is one (phrase, command) pair in enumeration order.
type phraseEntry struct {
	phrase  string
	command string
}

// Registry maps canonical command ids to their known phrasings and
// holds the case-folded reverse index. It is immutable after
// construction.
type Registry struct {
	patterns map[string][]string
	index    map[string]string
	entries  []phraseEntry
}

// NewRegistry builds a registry from a patterns table. Phrases are
// case-folded; a phrase appearing under two commands is a
// configuration error.
func NewRegistry(patterns map[string][]string) (*Registry, error) {
	r := &Registry{
		patterns: make(map[string][]string, len(patterns)),
		index:    make(map[string]string),
	}

	// Deterministic enumeration order: commands sorted, phrases as declared.
	commands := make([]string, 0, len(patterns))
	for command := range patterns {
		commands = append(commands, command)
	}
	sort.Strings(commands)

	for _, command := range commands {
		for _, phrase := range patterns[command] {
			folded := strings.ToLower(strings.TrimSpace(phrase))
			if other, ok := r.index[folded]; ok && other != command {
				return nil, fmt.Errorf("%w: %q (%s, %s)", ErrDuplicatePhrase, folded, other, command)
			}
			r.index[folded] = command
			r.patterns[command] = append(r.patterns[command], folded)
			r.entries = append(r.entries, phraseEntry{phrase: folded, command: command})
		}
	}
	return r, nil
}

// DefaultRegistry returns the registry built from the built-in command
// table. The table is static, so a construction failure is a
// programming error.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(commandPatterns)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup resolves a case-folded phrase to its command id.
func (r *Registry) Lookup(phrase string) (string, bool) {
	command, ok := r.index[phrase]
	return command, ok
}

// Commands returns the canonical command ids in sorted order.
func (r *Registry) Commands() []string {
	commands := make([]string, 0, len(r.patterns))
	for command := range r.patterns {
		commands = append(commands, command)
	}
	sort.Strings(commands)
	return commands
}

// Phrases returns the phrase variants registered for a command.
func (r *Registry) Phrases(command string) []string {
	return append([]string(nil), r.patterns[command]...)
}
