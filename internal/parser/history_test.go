package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_Record(t *testing.T) {
	h := NewHistory()

	h.Record("add contact", CmdAddContact)
	h.Record("new contact", CmdAddContact)
	h.Record("ADD CONTACT", CmdAddContact) // same pattern, different case

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []string{"add contact", "new contact"}, h.Patterns(CmdAddContact))
	assert.Equal(t, map[string]int{CmdAddContact: 3}, h.Stats())
}

func TestHistory_TopCommands(t *testing.T) {
	h := NewHistory()

	h.Record("add contact", CmdAddContact)
	h.Record("add contact", CmdAddContact)
	h.Record("list notes", CmdListNotes)
	h.Record("list notes", CmdListNotes)
	h.Record("stats", CmdStats)

	// Ties break alphabetically: add-contact before list-notes.
	assert.Equal(t, []string{CmdAddContact, CmdListNotes, CmdStats}, h.TopCommands(5))
	assert.Equal(t, []string{CmdAddContact}, h.TopCommands(1))
	assert.Nil(t, h.TopCommands(0))
}

func TestHistory_Clear(t *testing.T) {
	h := NewHistory()
	h.Record("help", CmdHelp)

	h.Clear()
	assert.Equal(t, 0, h.Len())
	assert.Nil(t, h.TopCommands(3))
	assert.Empty(t, h.Patterns(CmdHelp))
}
