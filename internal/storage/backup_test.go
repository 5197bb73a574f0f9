package storage

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/assistant/pkg/types"
)

func TestCreateBackup(t *testing.T) {
	useFakeClock(t)
	s := testStore(t)

	assert.False(t, s.CreateBackup("contacts"), "no source file yet")

	require.NoError(t, s.Save("contacts", []types.Record{{"name": "Olena"}}))
	assert.True(t, s.CreateBackup("contacts"))

	backups := s.ListBackups("contacts")
	require.Len(t, backups, 1)
	assert.Equal(t, "contacts", backups[0].Dataset)
	assert.Greater(t, backups[0].Size, int64(0))
}

func TestListBackups_NewestFirst(t *testing.T) {
	useFakeClock(t)
	s := testStore(t)

	require.NoError(t, s.Save("contacts", []types.Record{{"name": "v1"}}))
	for i := 0; i < 3; i++ {
		require.True(t, s.CreateBackup("contacts"))
	}

	backups := s.ListBackups("contacts")
	require.Len(t, backups, 3)
	for i := 1; i < len(backups); i++ {
		assert.True(t, backups[i-1].Timestamp.After(backups[i].Timestamp))
	}
}

func TestListBackups_SkipsForeignFiles(t *testing.T) {
	useFakeClock(t)
	s := testStore(t)

	require.NoError(t, s.Save("contacts", []types.Record{{"name": "v1"}}))
	require.True(t, s.CreateBackup("contacts"))
	require.NoError(t, s.Save("notes", []types.Record{{"title": "n1"}}))
	require.True(t, s.CreateBackup("notes"))

	// A file without a parseable timestamp is ignored.
	require.NoError(t, os.WriteFile(s.backupDir+"/contacts_garbage.json", []byte("[]"), 0o600))

	backups := s.ListBackups("contacts")
	require.Len(t, backups, 1)
	assert.Equal(t, "contacts", backups[0].Dataset)
}

func TestRetention(t *testing.T) {
	useFakeClock(t)
	s := testStore(t, WithKeepCount(3))

	// First save has no backup; each following save backs up its
	// predecessor.
	for i := 0; i < 6; i++ {
		require.NoError(t, s.Save("contacts", []types.Record{{"v": time.Now().String()}}))
	}

	backups := s.ListBackups("contacts")
	assert.Len(t, backups, 3)
}

func TestDeleteOldBackups(t *testing.T) {
	useFakeClock(t)
	s := testStore(t)

	require.NoError(t, s.Save("contacts", []types.Record{{"name": "v1"}}))
	for i := 0; i < 5; i++ {
		require.True(t, s.CreateBackup("contacts"))
	}
	require.Len(t, s.ListBackups("contacts"), 5)

	s.DeleteOldBackups("contacts", 2)
	remaining := s.ListBackups("contacts")
	require.Len(t, remaining, 2)

	s.DeleteOldBackups("contacts", -1)
	assert.Empty(t, s.ListBackups("contacts"))
}

func TestRestoreFromBackup_Newest(t *testing.T) {
	useFakeClock(t)
	s := testStore(t)

	require.NoError(t, s.Save("contacts", []types.Record{{"name": "v1"}}))
	require.NoError(t, s.Save("contacts", []types.Record{{"name": "v2"}}))
	require.NoError(t, s.Save("contacts", []types.Record{{"name": "v3"}}))

	// Newest backup holds v2 (made just before the v3 save).
	require.True(t, s.RestoreFromBackup("contacts", nil))

	loaded := s.Load("contacts")
	require.Len(t, loaded, 1)
	assert.Equal(t, "v2", loaded[0].Str("name"))
}

func TestRestoreFromBackup_ExactTimestamp(t *testing.T) {
	useFakeClock(t)
	s := testStore(t)

	require.NoError(t, s.Save("contacts", []types.Record{{"name": "v1"}}))
	require.NoError(t, s.Save("contacts", []types.Record{{"name": "v2"}}))
	require.NoError(t, s.Save("contacts", []types.Record{{"name": "v3"}}))

	backups := s.ListBackups("contacts")
	require.Len(t, backups, 2)

	// The oldest backup holds v1.
	oldest := backups[len(backups)-1].Timestamp
	require.True(t, s.RestoreFromBackup("contacts", &oldest))

	loaded := s.Load("contacts")
	require.Len(t, loaded, 1)
	assert.Equal(t, "v1", loaded[0].Str("name"))
}

func TestRestoreFromBackup_NoMatch(t *testing.T) {
	useFakeClock(t)
	s := testStore(t)

	assert.False(t, s.RestoreFromBackup("contacts", nil), "no backups at all")

	require.NoError(t, s.Save("contacts", []types.Record{{"name": "v1"}}))
	require.True(t, s.CreateBackup("contacts"))

	missing := time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, s.RestoreFromBackup("contacts", &missing))

	// The live file is untouched on a failed restore.
	loaded := s.Load("contacts")
	require.Len(t, loaded, 1)
	assert.Equal(t, "v1", loaded[0].Str("name"))
}
