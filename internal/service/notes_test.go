package service

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/assistant/internal/storage"
	"github.com/mkravets/assistant/pkg/types"
)

func TestNotes_Create(t *testing.T) {
	n := NewNotes(testStore(t))

	note, err := n.Create("buy milk", "groceries", []string{"Shopping"})
	require.NoError(t, err)
	assert.NotEmpty(t, note.ID)
	assert.Equal(t, []string{"shopping"}, note.Tags)
	assert.Equal(t, 1, n.Count())

	_, err = n.Create("", "", nil)
	assert.ErrorIs(t, err, types.ErrEmptyContent)
	assert.Equal(t, 1, n.Count())
}

func TestNotes_Persistence(t *testing.T) {
	store := testStore(t)

	n := NewNotes(store)
	note, err := n.Create("buy milk", "groceries", []string{"shopping"})
	require.NoError(t, err)

	reloaded := NewNotes(store)
	require.Equal(t, 1, reloaded.Count())

	got, err := reloaded.Get(note.ID)
	require.NoError(t, err)
	assert.Equal(t, "buy milk", got.Content)
	assert.Equal(t, []string{"shopping"}, got.Tags)
}

func TestNotes_Get_Prefix(t *testing.T) {
	n := NewNotes(testStore(t))
	note, err := n.Create("content", "", nil)
	require.NoError(t, err)

	got, err := n.Get(note.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, note.ID, got.ID)

	// Prefixes shorter than four characters never match.
	_, err = n.Get(note.ID[:3])
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = n.Get("ffffffff")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestNotes_Search(t *testing.T) {
	n := NewNotes(testStore(t))
	_, err := n.Create("buy milk and bread", "groceries", nil)
	require.NoError(t, err)
	_, err = n.Create("quarterly report draft", "Work Plans", nil)
	require.NoError(t, err)

	assert.Len(t, n.Search("MILK"), 1)
	assert.Len(t, n.Search("work"), 1, "title matches too")
	assert.Empty(t, n.Search("vacation"))
	assert.Empty(t, n.Search(""))
}

func TestNotes_SearchByTags(t *testing.T) {
	n := NewNotes(testStore(t))
	_, err := n.Create("a", "", []string{"work", "urgent"})
	require.NoError(t, err)
	_, err = n.Create("b", "", []string{"work"})
	require.NoError(t, err)
	_, err = n.Create("c", "", []string{"home"})
	require.NoError(t, err)

	assert.Len(t, n.SearchByTags([]string{"work", "urgent"}), 1, "all tags required")
	assert.Len(t, n.SearchByAnyTag([]string{"work", "home"}), 3, "any tag suffices")
	assert.Empty(t, n.SearchByTags(nil))
}

func TestNotes_Edit(t *testing.T) {
	n := NewNotes(testStore(t))
	note, err := n.Create("old", "title", nil)
	require.NoError(t, err)

	updated, err := n.Edit(note.ID, "new content", nil)
	require.NoError(t, err)
	assert.Equal(t, "new content", updated.Content)
	assert.Equal(t, "title", updated.Title)

	_, err = n.Edit(note.ID, "", nil)
	assert.ErrorIs(t, err, types.ErrEmptyContent)

	_, err = n.Edit("ffffffff", "x", nil)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestNotes_Delete(t *testing.T) {
	n := NewNotes(testStore(t))
	note, err := n.Create("content", "", nil)
	require.NoError(t, err)

	require.NoError(t, n.Delete(note.ID))
	assert.Equal(t, 0, n.Count())

	assert.ErrorIs(t, n.Delete(note.ID), types.ErrNotFound)
}

func TestNotes_TagOperations(t *testing.T) {
	n := NewNotes(testStore(t))
	note, err := n.Create("content", "", []string{"work"})
	require.NoError(t, err)

	updated, err := n.AddTag(note.ID, "Urgent")
	require.NoError(t, err)
	assert.Equal(t, []string{"work", "urgent"}, updated.Tags)

	updated, err = n.RemoveTag(note.ID, "work")
	require.NoError(t, err)
	assert.Equal(t, []string{"urgent"}, updated.Tags)

	_, err = n.AddTag("ffffffff", "x")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestNotes_TagRollbackOnSaveFailure(t *testing.T) {
	store := testStore(t)
	n := NewNotes(store)
	note, err := n.Create("content", "", []string{"work", "urgent"})
	require.NoError(t, err)

	// Removing the data directory makes every subsequent save fail.
	require.NoError(t, os.RemoveAll(store.BaseDir()))

	_, err = n.AddTag(note.ID, "later")
	require.ErrorIs(t, err, storage.ErrSaveFailed)
	assert.Equal(t, []string{"work", "urgent"}, note.Tags)

	_, err = n.RemoveTag(note.ID, "work")
	require.ErrorIs(t, err, storage.ErrSaveFailed)
	assert.Equal(t, []string{"work", "urgent"}, note.Tags)
}

func TestNotes_AllTags(t *testing.T) {
	n := NewNotes(testStore(t))
	_, err := n.Create("a", "", []string{"work", "urgent"})
	require.NoError(t, err)
	_, err = n.Create("b", "", []string{"home", "work"})
	require.NoError(t, err)

	assert.Equal(t, []string{"home", "urgent", "work"}, n.AllTags())
}
