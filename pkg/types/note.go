package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Note represents a text note with optional title and tags.
type Note struct {
	ID        string    // UUID, generated on creation.
	Title     string    // Optional title.
	Content   string    // Main text (required, non-empty).
	Tags      []string  // Normalized lowercase tags, no duplicates.
	CreatedAt time.Time // Timestamp of creation.
	UpdatedAt time.Time // Timestamp of last modification.
}

// NewNote creates a note with a fresh UUID and normalized tags.
func NewNote(content, title string, tags []string) (*Note, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	now := time.Now()
	return &Note{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Tags:      normalizeTags(tags),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// normalizeTags lowercases and trims tags, dropping empties and
// duplicates while keeping first-seen order.
func normalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

// AddTag adds a normalized tag if not already present.
func (n *Note) AddTag(tag string) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" || n.HasTag(tag) {
		return
	}
	n.Tags = append(n.Tags, tag)
	n.UpdatedAt = time.Now()
}

// RemoveTag removes a tag if present.
func (n *Note) RemoveTag(tag string) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for i, t := range n.Tags {
		if t == tag {
			n.Tags = append(n.Tags[:i], n.Tags[i+1:]...)
			n.UpdatedAt = time.Now()
			return
		}
	}
}

// HasTag reports whether the note carries the given tag.
func (n *Note) HasTag(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// UpdateContent replaces the note content and, when title is non-nil,
// the title. Empty content is rejected.
func (n *Note) UpdateContent(content string, title *string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	n.Content = content
	if title != nil {
		n.Title = *title
	}
	n.UpdatedAt = time.Now()
	return nil
}

// ToRecord converts the note to its storage representation. Timestamps
// are serialized as RFC 3339 strings.
func (n *Note) ToRecord() Record {
	tags := make([]any, len(n.Tags))
	for i, t := range n.Tags {
		tags[i] = t
	}
	rec := Record{
		"id":         n.ID,
		"title":      nil,
		"content":    n.Content,
		"tags":       tags,
		"created_at": n.CreatedAt.Format(time.RFC3339),
		"updated_at": n.UpdatedAt.Format(time.RFC3339),
	}
	if n.Title != "" {
		rec["title"] = n.Title
	}
	return rec
}

// NoteFromRecord reconstructs a note from its storage representation.
// A missing ID gets a fresh UUID; unparseable timestamps fall back to
// the current time.
func NoteFromRecord(rec Record) (*Note, error) {
	n, err := NewNote(rec.Str("content"), rec.Str("title"), rec.Strs("tags"))
	if err != nil {
		return nil, err
	}
	if id := rec.Str("id"); id != "" {
		n.ID = id
	}
	if t, err := time.Parse(time.RFC3339, rec.Str("created_at")); err == nil {
		n.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, rec.Str("updated_at")); err == nil {
		n.UpdatedAt = t
	}
	return n, nil
}
