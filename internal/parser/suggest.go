package parser

import (
	"fmt"
	"sort"
	"strings"
)

// Suggestion scoring: a lighter variant of the fuzzy tier with a small
// bonus when the phrase starts with the input's first two characters,
// and a floor below which matches are not worth showing.
const (
	suggestPrefixBonus = 0.2
	suggestFloor       = 0.4
)

// Suggestion is one candidate command for unrecognized input.
type Suggestion struct {
	Command string
	Phrase  string
	Score   float64
}

// String renders the suggestion as "command (matched phrase)".
func (s Suggestion) String() string {
	return fmt.Sprintf("%s (%s)", s.Command, s.Phrase)
}

// Suggest scores the input against every known phrase, keeps the best
// phrase per command, drops scores below the floor, and returns up to
// max suggestions ordered best first.
func (p *Parser) Suggest(raw string, max int) []Suggestion {
	input := strings.ToLower(strings.TrimSpace(raw))
	if input == "" || max <= 0 {
		return nil
	}

	scored := make([]Suggestion, 0, len(p.registry.entries))
	for _, entry := range p.registry.entries {
		score := ratio(input, entry.phrase)
		if len(input) >= 2 && strings.HasPrefix(entry.phrase, input[:2]) {
			score += suggestPrefixBonus
		}
		scored = append(scored, Suggestion{
			Command: entry.command,
			Phrase:  entry.phrase,
			Score:   score,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	var out []Suggestion
	seen := make(map[string]bool)
	for _, s := range scored {
		if s.Score <= suggestFloor || seen[s.Command] {
			continue
		}
		seen[s.Command] = true
		out = append(out, s)
		if len(out) >= max {
			break
		}
	}
	return out
}
