package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest_BestFirst(t *testing.T) {
	p := New(DefaultRegistry())

	suggestions := p.Suggest("add cntact", 3)
	require.NotEmpty(t, suggestions)
	assert.Equal(t, CmdAddContact, suggestions[0].Command)

	for i := 1; i < len(suggestions); i++ {
		assert.GreaterOrEqual(t, suggestions[i-1].Score, suggestions[i].Score)
	}
}

func TestSuggest_DedupesCommands(t *testing.T) {
	p := New(DefaultRegistry())

	// "add" scores several phrases of the same command; each command
	// may appear at most once.
	suggestions := p.Suggest("add", 5)
	seen := make(map[string]bool)
	for _, s := range suggestions {
		assert.False(t, seen[s.Command], "command %s suggested twice", s.Command)
		seen[s.Command] = true
	}
}

func TestSuggest_Floor(t *testing.T) {
	p := New(DefaultRegistry())

	// Gibberish scores below the floor against every phrase.
	assert.Empty(t, p.Suggest("xyzzyplugh", 3))

	for _, s := range p.Suggest("note", 10) {
		assert.Greater(t, s.Score, suggestFloor)
	}
}

func TestSuggest_MaxCap(t *testing.T) {
	p := New(DefaultRegistry())

	assert.LessOrEqual(t, len(p.Suggest("note", 2)), 2)
	assert.Nil(t, p.Suggest("note", 0))
	assert.Nil(t, p.Suggest("", 3))
}

func TestSuggestion_String(t *testing.T) {
	s := Suggestion{Command: CmdAddContact, Phrase: "add contact", Score: 0.9}
	assert.Equal(t, "add-contact (add contact)", s.String())
}
