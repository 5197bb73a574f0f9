package parser

import (
	"regexp"
	"strings"
)

// Scoring constants for the fuzzy tier. The prefix bonus rewards input
// that starts with a known phrase; the word bonus scales with the
// fraction of phrase words present in the input.
const (
	fuzzyThreshold   = 0.7
	prefixBonus      = 0.2
	wordBonusWeight  = 0.3
	intentConfidence = 0.85
)

// Origin records which resolution tier produced a match.
type Origin string

const (
	OriginExact           Origin = "exact"
	OriginFuzzy           Origin = "fuzzy"
	OriginNaturalLanguage Origin = "natural-language"
)

// Args holds arguments extracted from the input line.
type Args struct {
	Values  []string          // double-quoted positional values
	Options map[string]string // --key value pairs
	Query   string            // free text captured by an intent pattern
}

// Empty reports whether no argument of any kind was extracted.
func (a Args) Empty() bool {
	return len(a.Values) == 0 && len(a.Options) == 0 && a.Query == ""
}

// ParsedCommand is the result of resolving one input line. It is
// constructed fresh per line and immediately consumed by the
// dispatcher, never persisted.
type ParsedCommand struct {
	Command    string
	Args       Args
	Confidence float64
	Origin     Origin
}

// Parser resolves raw input against an immutable registry. Each Parse
// call is stateless given the registry; the same input always resolves
// to the same outcome.
type Parser struct {
	registry  *Registry
	threshold float64
	history   *History
}

// Option configures a Parser.
type Option func(*Parser)

// WithThreshold overrides the fuzzy acceptance threshold.
func WithThreshold(t float64) Option {
	return func(p *Parser) {
		if t > 0 {
			p.threshold = t
		}
	}
}

// WithHistory attaches a usage history; successful parses are recorded
// into it.
func WithHistory(h *History) Option {
	return func(p *Parser) { p.history = h }
}

// New creates a parser over the given registry.
func New(registry *Registry, opts ...Option) *Parser {
	p := &Parser{registry: registry, threshold: fuzzyThreshold}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse resolves raw input to a command. Tiers run cheapest and most
// precise first: exact phrase match, fuzzy similarity, then
// natural-language intent patterns. The second result is false when
// nothing matched; callers are expected to fall back to Suggest.
//
// Case-folding applies to matching only; arguments are extracted from
// the trimmed original so quoted values keep their casing.
func (p *Parser) Parse(raw string) (*ParsedCommand, bool) {
	trimmed := strings.TrimSpace(raw)
	input := strings.ToLower(trimmed)
	if input == "" {
		return nil, false
	}

	if command, ok := p.registry.Lookup(input); ok {
		return p.learned(raw, &ParsedCommand{
			Command:    command,
			Confidence: 1.0,
			Origin:     OriginExact,
		}), true
	}

	if command, score := p.fuzzyMatch(input); command != "" && score > p.threshold {
		return p.learned(raw, &ParsedCommand{
			Command:    command,
			Args:       extractArgs(trimmed),
			Confidence: clamp01(score),
			Origin:     OriginFuzzy,
		}), true
	}

	if parsed := matchIntent(input); parsed != nil {
		if parsed.Args.Empty() {
			parsed.Args = extractArgs(trimmed)
			parsed.Args.Query = ""
		}
		return p.learned(raw, parsed), true
	}

	return nil, false
}

// learned records a successful resolution into the attached history.
func (p *Parser) learned(raw string, parsed *ParsedCommand) *ParsedCommand {
	if p.history != nil {
		p.history.Record(raw, parsed.Command)
	}
	return parsed
}

// fuzzyMatch scores the input against every known phrase and returns
// the best command with its adjusted score.
func (p *Parser) fuzzyMatch(input string) (string, float64) {
	var bestCommand string
	var bestScore float64

	for _, entry := range p.registry.entries {
		score := ratio(input, entry.phrase)
		if strings.HasPrefix(input, entry.phrase) {
			score += prefixBonus
		}
		score += wordOverlap(input, entry.phrase) * wordBonusWeight

		if score > bestScore {
			bestScore = score
			bestCommand = entry.command
		}
	}
	return bestCommand, bestScore
}

// intentPattern is one natural-language intent rule. queryGroup names
// the submatch (if any) captured as the free-text query.
type intentPattern struct {
	command    string
	re         *regexp.Regexp
	queryGroup int
}

// intentPatterns is the ordered rule list for the natural-language
// tier; the first match wins. These engage only after fuzzy matching
// proves inconclusive, so they can afford to be permissive.
var intentPatterns = []intentPattern{
	{CmdAddContact, regexp.MustCompile(`(add|create|new|save)\s+(a\s+)?(contact|person)`), 0},
	{CmdSearchContact, regexp.MustCompile(`(find|search|look\s+for|where\s+is)\s+(.+?)(?:\s+(?:phone|email|contact))?$`), 2},
	{CmdListContacts, regexp.MustCompile(`(show|list|display)\s+(all\s+)?(contacts|people)`), 0},
	{CmdAddNote, regexp.MustCompile(`(add|create|new|write)\s+(a\s+)?note(\s+about)?`), 0},
	{CmdSearchNote, regexp.MustCompile(`(find|search|look\s+for)\s+notes?(\s+about)?`), 0},
	{CmdListNotes, regexp.MustCompile(`(show|list|display)\s+(all\s+)?notes`), 0},
	{CmdBirthdays, regexp.MustCompile(`(show|list|who\s+has)\s+.*birthday`), 0},
}

// matchIntent tests the input against the ordered intent patterns.
func matchIntent(input string) *ParsedCommand {
	for _, pattern := range intentPatterns {
		m := pattern.re.FindStringSubmatch(input)
		if m == nil {
			continue
		}
		var args Args
		if pattern.queryGroup > 0 && pattern.queryGroup < len(m) {
			args.Query = strings.TrimSpace(m[pattern.queryGroup])
		}
		return &ParsedCommand{
			Command:    pattern.command,
			Args:       args,
			Confidence: intentConfidence,
			Origin:     OriginNaturalLanguage,
		}
	}
	return nil
}

var (
	quotedValueRe = regexp.MustCompile(`"([^"]*)"`)
	optionRe      = regexp.MustCompile(`--(\w+)\s+([^\s-]+)`)
)

// extractArgs pulls double-quoted substrings as positional values and
// --key value tokens as named options.
func extractArgs(input string) Args {
	var args Args

	for _, m := range quotedValueRe.FindAllStringSubmatch(input, -1) {
		args.Values = append(args.Values, m[1])
	}
	for _, m := range optionRe.FindAllStringSubmatch(input, -1) {
		if args.Options == nil {
			args.Options = make(map[string]string)
		}
		args.Options[m[1]] = m[2]
	}
	return args
}
