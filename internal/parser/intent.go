package parser

import (
	"regexp"
	"strings"
)

// Intent is a coarse reading of free-form input: the action the user
// wants, the entity it targets, and any parameters mentioned inline.
// The shell uses it to prefill prompts; it is advisory, not a command
// resolution.
type Intent struct {
	Action     string // add, search, edit, delete, list
	Entity     string // contact, note, birthday, tag
	Confidence float64
	Params     map[string]string // name, phone, email
	Tags       []string          // #tag mentions
}

// actionKeywords maps actions to trigger words, checked in order.
var actionKeywords = []struct {
	action   string
	keywords []string
}{
	{"add", []string{"add", "create", "new", "make", "insert", "save"}},
	{"search", []string{"find", "search", "look for", "where", "locate"}},
	{"edit", []string{"edit", "update", "change", "modify", "alter"}},
	{"delete", []string{"delete", "remove", "erase", "drop", "destroy"}},
	{"list", []string{"list", "show", "display", "view", "all"}},
}

// entityKeywords maps entities to trigger words. More specific
// entities come first so "tag" is not swallowed by "note".
var entityKeywords = []struct {
	entity   string
	keywords []string
}{
	{"tag", []string{"tag", "label", "category"}},
	{"birthday", []string{"birthday", "birth date", "born"}},
	{"contact", []string{"contact", "person", "phone", "number"}},
	{"note", []string{"note", "memo", "reminder", "text"}},
}

var (
	// Capitalized word runs are name candidates.
	nameRe = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)

	// Phones in parenthesized form first, then a general digit run.
	phoneParenRe   = regexp.MustCompile(`\(\d{2,4}\)\s*\d{3}[-\s]?\d{4}`)
	phoneGeneralRe = regexp.MustCompile(`\+?[\d\s-]{7,}`)

	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	tagRe   = regexp.MustCompile(`#(\w+)`)
)

// commandWords are capitalized verbs and nouns that look like names
// but are part of the command itself.
var commandWords = map[string]bool{
	"Add": true, "Create": true, "New": true, "Find": true, "Search": true,
	"Edit": true, "Update": true, "Delete": true, "Remove": true,
	"List": true, "Show": true, "Display": true, "Phone": true,
	"Email": true, "Contact": true, "Note": true, "Tag": true, "Birthday": true,
}

// RecognizeIntent extracts the action, entity, and inline parameters
// from free-form text. Confidence is 0.8 when both action and entity
// were found, 0.5 otherwise.
func RecognizeIntent(text string) Intent {
	lower := strings.ToLower(text)

	intent := Intent{Confidence: 0.5, Params: make(map[string]string)}

	for _, a := range actionKeywords {
		if containsAny(lower, a.keywords) {
			intent.Action = a.action
			break
		}
	}
	for _, e := range entityKeywords {
		if containsAny(lower, e.keywords) {
			intent.Entity = e.entity
			break
		}
	}
	if intent.Action != "" && intent.Entity != "" {
		intent.Confidence = 0.8
	}

	if name := extractName(text); name != "" {
		intent.Params["name"] = name
	}
	if phone := extractPhone(text); phone != "" {
		intent.Params["phone"] = phone
	}
	if email := emailRe.FindString(text); email != "" {
		intent.Params["email"] = email
	}
	for _, m := range tagRe.FindAllStringSubmatch(text, -1) {
		intent.Tags = append(intent.Tags, m[1])
	}

	return intent
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// extractName finds the first run of capitalized words that is not
// made of command vocabulary.
func extractName(text string) string {
	for _, match := range nameRe.FindAllString(text, -1) {
		var kept []string
		for _, word := range strings.Fields(match) {
			if !commandWords[word] {
				kept = append(kept, word)
			}
		}
		if len(kept) > 0 {
			return strings.Join(kept, " ")
		}
	}
	return ""
}

// extractPhone prefers the parenthesized form, falling back to a
// general digit-run pattern covering +380501234567, 050 123 4567 and
// 050-123-4567 styles.
func extractPhone(text string) string {
	if m := phoneParenRe.FindString(text); m != "" {
		return strings.TrimSpace(m)
	}
	if m := phoneGeneralRe.FindString(text); m != "" {
		m = strings.TrimSpace(m)
		// The general pattern is permissive; require enough digits to
		// be a plausible phone number.
		digits := 0
		for _, r := range m {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits >= 7 {
			return m
		}
	}
	return ""
}
