package parser

import (
	"sort"
	"strings"
	"time"
)

// HistoryEntry records one successfully resolved input line.
type HistoryEntry struct {
	Input   string
	Command string
	At      time.Time
}

// History tracks how commands are invoked so the shell can rank
// frequently used commands and recall the phrasings a user favors.
// It lives in memory for the process lifetime only.
type History struct {
	entries  []HistoryEntry
	patterns map[string][]string
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{patterns: make(map[string][]string)}
}

// Record notes that input resolved to command.
func (h *History) Record(input, command string) {
	pattern := strings.ToLower(strings.TrimSpace(input))

	known := false
	for _, p := range h.patterns[command] {
		if p == pattern {
			known = true
			break
		}
	}
	if !known {
		h.patterns[command] = append(h.patterns[command], pattern)
	}

	h.entries = append(h.entries, HistoryEntry{
		Input:   input,
		Command: command,
		At:      time.Now(),
	})
}

// TopCommands returns up to n command ids ordered by usage frequency,
// most used first. Ties break alphabetically for stable output.
func (h *History) TopCommands(n int) []string {
	if len(h.entries) == 0 || n <= 0 {
		return nil
	}
	counts := h.Stats()

	commands := make([]string, 0, len(counts))
	for command := range counts {
		commands = append(commands, command)
	}
	sort.Slice(commands, func(i, j int) bool {
		if counts[commands[i]] != counts[commands[j]] {
			return counts[commands[i]] > counts[commands[j]]
		}
		return commands[i] < commands[j]
	})

	if len(commands) > n {
		commands = commands[:n]
	}
	return commands
}

// Stats returns usage counts per command.
func (h *History) Stats() map[string]int {
	counts := make(map[string]int)
	for _, e := range h.entries {
		counts[e.Command]++
	}
	return counts
}

// Patterns returns the distinct phrasings recorded for a command.
func (h *History) Patterns(command string) []string {
	return append([]string(nil), h.patterns[command]...)
}

// Len returns the number of recorded entries.
func (h *History) Len() int { return len(h.entries) }

// Clear drops all recorded usage.
func (h *History) Clear() {
	h.entries = nil
	h.patterns = make(map[string][]string)
}
