package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ExactMatch(t *testing.T) {
	p := New(DefaultRegistry())

	tests := []struct {
		input   string
		command string
	}{
		{"add contact", CmdAddContact},
		{"ADD CONTACT", CmdAddContact},
		{"  list notes  ", CmdListNotes},
		{"quit", CmdExit},
		{"?", CmdHelp},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			parsed, ok := p.Parse(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.command, parsed.Command)
			assert.Equal(t, 1.0, parsed.Confidence)
			assert.Equal(t, OriginExact, parsed.Origin)
		})
	}
}

func TestParse_FuzzyMatch(t *testing.T) {
	p := New(DefaultRegistry())

	tests := []struct {
		input   string
		command string
	}{
		{"add conact", CmdAddContact},
		{"serch contact", CmdSearchContact},
		{"lst notes", CmdListNotes},
		{"birthdys", CmdBirthdays},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			parsed, ok := p.Parse(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.command, parsed.Command)
			assert.Equal(t, OriginFuzzy, parsed.Origin)
			assert.Greater(t, parsed.Confidence, 0.7)
			assert.LessOrEqual(t, parsed.Confidence, 1.0)
		})
	}
}

func TestParse_NaturalLanguage(t *testing.T) {
	p := New(DefaultRegistry())

	tests := []struct {
		input   string
		command string
	}{
		{"show me all contacts", CmdListContacts},
		{"please create a new contact", CmdAddContact},
		{"write a note about the meeting", CmdAddNote},
		{"who has a birthday soon", CmdBirthdays},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			parsed, ok := p.Parse(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.command, parsed.Command)
		})
	}
}

func TestParse_QueryExtraction(t *testing.T) {
	p := New(DefaultRegistry())

	parsed, ok := p.Parse("where is john's phone")
	require.True(t, ok)
	assert.Equal(t, CmdSearchContact, parsed.Command)
	if parsed.Origin == OriginNaturalLanguage {
		assert.Equal(t, "john's", parsed.Args.Query)
	}
}

func TestParse_QuotedArgsKeepCase(t *testing.T) {
	p := New(DefaultRegistry())

	parsed, ok := p.Parse(`search contact "John Doe"`)
	require.True(t, ok)
	assert.Equal(t, CmdSearchContact, parsed.Command)
	assert.Equal(t, []string{"John Doe"}, parsed.Args.Values)

	parsed, ok = p.Parse(`add note "Meeting Notes" --tag Work`)
	require.True(t, ok)
	assert.Equal(t, CmdAddNote, parsed.Command)
	assert.Equal(t, []string{"Meeting Notes"}, parsed.Args.Values)
}

func TestParse_NoMatch(t *testing.T) {
	p := New(DefaultRegistry())

	for _, input := range []string{"", "   ", "xyzzyplugh", "qqqqqq"} {
		parsed, ok := p.Parse(input)
		assert.False(t, ok, "input %q should not resolve", input)
		assert.Nil(t, parsed)
	}
}

func TestParse_Deterministic(t *testing.T) {
	p := New(DefaultRegistry())

	first, ok := p.Parse("add conact")
	require.True(t, ok)
	for i := 0; i < 5; i++ {
		again, ok := p.Parse("add conact")
		require.True(t, ok)
		assert.Equal(t, first.Command, again.Command)
		assert.Equal(t, first.Confidence, again.Confidence)
	}
}

func TestParse_RecordsHistory(t *testing.T) {
	h := NewHistory()
	p := New(DefaultRegistry(), WithHistory(h))

	_, ok := p.Parse("add contact")
	require.True(t, ok)
	_, ok = p.Parse("add contact")
	require.True(t, ok)
	_, ok = p.Parse("list notes")
	require.True(t, ok)

	// Unresolvable input leaves no trace.
	_, ok = p.Parse("xyzzyplugh")
	require.False(t, ok)

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []string{CmdAddContact, CmdListNotes}, h.TopCommands(2))
}

func TestWithThreshold(t *testing.T) {
	strict := New(DefaultRegistry(), WithThreshold(0.99))

	parsed, ok := strict.Parse("birthdys")
	// The near-miss fails a near-exact threshold, and no intent
	// pattern catches it, so it falls through entirely.
	assert.False(t, ok)
	assert.Nil(t, parsed)

	// Non-positive thresholds are ignored, keeping the default.
	p := New(DefaultRegistry(), WithThreshold(-1))
	assert.Equal(t, fuzzyThreshold, p.threshold)
}

func TestExtractArgs(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		values  []string
		options map[string]string
	}{
		{
			name:   "quoted value",
			input:  `search contact "John Doe"`,
			values: []string{"John Doe"},
		},
		{
			name:   "multiple quoted values",
			input:  `edit contact "Jane" "0501234567"`,
			values: []string{"Jane", "0501234567"},
		},
		{
			name:    "key value options",
			input:   `birthdays --days 14`,
			options: map[string]string{"days": "14"},
		},
		{
			name:    "mixed",
			input:   `add note "shopping list" --tag groceries`,
			values:  []string{"shopping list"},
			options: map[string]string{"tag": "groceries"},
		},
		{
			name:  "nothing to extract",
			input: "list contacts",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := extractArgs(tt.input)
			assert.Equal(t, tt.values, args.Values)
			assert.Equal(t, tt.options, args.Options)
		})
	}
}

func TestArgsEmpty(t *testing.T) {
	assert.True(t, Args{}.Empty())
	assert.False(t, Args{Values: []string{"x"}}.Empty())
	assert.False(t, Args{Options: map[string]string{"k": "v"}}.Empty())
	assert.False(t, Args{Query: "q"}.Empty())
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 1.0, ratio("add contact", "add contact"))
	assert.Equal(t, 0.0, ratio("", "add contact"))
	assert.Equal(t, 0.0, ratio("abc", "xyz"))

	// A one-character typo stays close to 1.
	score := ratio("add conact", "add contact")
	assert.Greater(t, score, 0.9)
	assert.Less(t, score, 1.0)
}

func TestWordOverlap(t *testing.T) {
	assert.Equal(t, 1.0, wordOverlap("add contact now", "add contact"))
	assert.Equal(t, 0.5, wordOverlap("add something", "add contact"))
	assert.Equal(t, 0.0, wordOverlap("hello world", "add contact"))
}
