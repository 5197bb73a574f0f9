package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mkravets/assistant/internal/storage"
	"github.com/mkravets/assistant/pkg/types"
)

// notesDataset is the storage dataset name for notes.
const notesDataset = "notes"

// Notes manages the note collection.
type Notes struct {
	store *storage.Store
	notes []*types.Note
}

// NewNotes loads notes from storage, skipping records that fail to
// convert.
func NewNotes(store *storage.Store) *Notes {
	n := &Notes{store: store}
	for _, rec := range store.Load(notesDataset) {
		note, err := types.NoteFromRecord(rec)
		if err != nil {
			continue
		}
		n.notes = append(n.notes, note)
	}
	return n
}

func (n *Notes) save() error {
	records := make([]types.Record, len(n.notes))
	for i, note := range n.notes {
		records[i] = note.ToRecord()
	}
	return n.store.Save(notesDataset, records)
}

// Create stores a new note.
func (n *Notes) Create(content, title string, tags []string) (*types.Note, error) {
	note, err := types.NewNote(content, title, tags)
	if err != nil {
		return nil, err
	}
	n.notes = append(n.notes, note)
	if err := n.save(); err != nil {
		n.notes = n.notes[:len(n.notes)-1]
		return nil, err
	}
	return note, nil
}

// Get returns the note with the given ID. A unique ID prefix of at
// least four characters also matches, for CLI convenience.
func (n *Notes) Get(id string) (*types.Note, error) {
	var match *types.Note
	for _, note := range n.notes {
		if note.ID == id {
			return note, nil
		}
		if len(id) >= 4 && strings.HasPrefix(note.ID, id) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous note id prefix %q", id)
			}
			match = note
		}
	}
	if match != nil {
		return match, nil
	}
	return nil, fmt.Errorf("%w: note %q", types.ErrNotFound, id)
}

// Search finds notes whose content or title contains the query
// (case-insensitive).
func (n *Notes) Search(query string) []*types.Note {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var found []*types.Note
	for _, note := range n.notes {
		if strings.Contains(strings.ToLower(note.Content), query) ||
			strings.Contains(strings.ToLower(note.Title), query) {
			found = append(found, note)
		}
	}
	return found
}

// SearchByTags finds notes carrying every given tag.
func (n *Notes) SearchByTags(tags []string) []*types.Note {
	return n.searchTags(tags, true)
}

// SearchByAnyTag finds notes carrying at least one of the given tags.
func (n *Notes) SearchByAnyTag(tags []string) []*types.Note {
	return n.searchTags(tags, false)
}

func (n *Notes) searchTags(tags []string, all bool) []*types.Note {
	if len(tags) == 0 {
		return nil
	}
	var found []*types.Note
	for _, note := range n.notes {
		matched := 0
		for _, tag := range tags {
			if note.HasTag(tag) {
				matched++
			}
		}
		if (all && matched == len(tags)) || (!all && matched > 0) {
			found = append(found, note)
		}
	}
	return found
}

// Edit replaces a note's content and optionally its title.
func (n *Notes) Edit(id, content string, title *string) (*types.Note, error) {
	note, err := n.Get(id)
	if err != nil {
		return nil, err
	}
	prev := *note
	if err := note.UpdateContent(content, title); err != nil {
		return nil, err
	}
	if err := n.save(); err != nil {
		*note = prev
		return nil, err
	}
	return note, nil
}

// Delete removes a note by ID.
func (n *Notes) Delete(id string) error {
	note, err := n.Get(id)
	if err != nil {
		return err
	}
	for i, candidate := range n.notes {
		if candidate == note {
			n.notes = append(n.notes[:i], n.notes[i+1:]...)
			return n.save()
		}
	}
	return fmt.Errorf("%w: note %q", types.ErrNotFound, id)
}

// AddTag adds a tag to a note and persists. A failed save rolls the
// tag change back.
func (n *Notes) AddTag(id, tag string) (*types.Note, error) {
	note, err := n.Get(id)
	if err != nil {
		return nil, err
	}
	prev := snapshotTags(note)
	note.AddTag(tag)
	if err := n.save(); err != nil {
		note.Tags = prev
		return nil, err
	}
	return note, nil
}

// RemoveTag removes a tag from a note and persists. A failed save
// rolls the tag change back.
func (n *Notes) RemoveTag(id, tag string) (*types.Note, error) {
	note, err := n.Get(id)
	if err != nil {
		return nil, err
	}
	prev := snapshotTags(note)
	note.RemoveTag(tag)
	if err := n.save(); err != nil {
		note.Tags = prev
		return nil, err
	}
	return note, nil
}

// snapshotTags copies the tag slice. RemoveTag shifts elements within
// the backing array, so restoring the slice header alone is not
// enough.
func snapshotTags(note *types.Note) []string {
	return append([]string(nil), note.Tags...)
}

// AllTags returns every distinct tag in use, sorted.
func (n *Notes) AllTags() []string {
	seen := make(map[string]bool)
	for _, note := range n.notes {
		for _, tag := range note.Tags {
			seen[tag] = true
		}
	}
	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// All returns the notes, newest first.
func (n *Notes) All() []*types.Note {
	out := append([]*types.Note(nil), n.notes...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Count returns the number of notes.
func (n *Notes) Count() int { return len(n.notes) }
