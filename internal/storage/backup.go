package storage

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// backupTimeLayout is the second-resolution timestamp embedded in
// backup filenames: <dataset>_20060102_150405.json.
const backupTimeLayout = "20060102_150405"

// BackupInfo describes one backup file for a dataset.
type BackupInfo struct {
	Dataset   string
	Timestamp time.Time
	Size      int64
	Path      string
}

// backupClock is the time source for backup names; overridden in tests
// to produce distinct second-resolution timestamps.
var backupClock = time.Now

// CreateBackup copies the current dataset file to a timestamped backup
// and prunes backups beyond the retention count. It returns false when
// the source file is absent or the copy fails; a pruning failure does
// not undo an already created backup.
func (s *Store) CreateBackup(dataset string) bool {
	source := s.datasetPath(dataset)
	if _, err := os.Stat(source); err != nil {
		s.logger.Warn("cannot backup, source missing", "dataset", dataset)
		return false
	}

	name := dataset + "_" + backupClock().Format(backupTimeLayout) + datasetExt
	backupPath := filepath.Join(s.backupDir, name)

	if err := copyFile(source, backupPath); err != nil {
		s.logger.Error("backup failed", "dataset", dataset, "error", err)
		return false
	}

	s.logger.Info("created backup", "dataset", dataset, "backup", name)
	s.DeleteOldBackups(dataset, s.keepCount)
	return true
}

// ListBackups enumerates the backups for a dataset, newest first.
// Files whose names do not carry a parseable timestamp are skipped.
func (s *Store) ListBackups(dataset string) []BackupInfo {
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		s.logger.Error("list backups failed", "dataset", dataset, "error", err)
		return nil
	}

	prefix := dataset + "_"
	var backups []BackupInfo
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, datasetExt) {
			continue
		}
		stamp := strings.TrimSuffix(strings.TrimPrefix(name, prefix), datasetExt)
		ts, err := time.Parse(backupTimeLayout, stamp)
		if err != nil {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			Dataset:   dataset,
			Timestamp: ts,
			Size:      info.Size(),
			Path:      filepath.Join(s.backupDir, name),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups
}

// RestoreFromBackup copies a backup over the live dataset file: the
// most recent backup when at is nil, otherwise the backup whose
// timestamp matches exactly. Returns false when no matching backup
// exists; the live file is not touched in that case.
func (s *Store) RestoreFromBackup(dataset string, at *time.Time) bool {
	backups := s.ListBackups(dataset)
	if len(backups) == 0 {
		s.logger.Error("no backups found", "dataset", dataset)
		return false
	}

	var chosen *BackupInfo
	if at == nil {
		chosen = &backups[0]
	} else {
		for i := range backups {
			if backups[i].Timestamp.Equal(*at) {
				chosen = &backups[i]
				break
			}
		}
		if chosen == nil {
			s.logger.Error("backup not found for timestamp", "dataset", dataset, "timestamp", *at)
			return false
		}
	}

	if err := copyFile(chosen.Path, s.datasetPath(dataset)); err != nil {
		s.logger.Error("restore failed", "dataset", dataset, "error", err)
		return false
	}

	s.logger.Info("restored from backup", "dataset", dataset, "backup", filepath.Base(chosen.Path))
	return true
}

// DeleteOldBackups removes all but the keep most recent backups for a
// dataset.
func (s *Store) DeleteOldBackups(dataset string, keep int) {
	if keep < 0 {
		keep = 0
	}
	backups := s.ListBackups(dataset)
	for _, b := range backups[min(keep, len(backups)):] {
		if err := os.Remove(b.Path); err != nil {
			s.logger.Error("delete old backup failed", "path", b.Path, "error", err)
			continue
		}
		s.logger.Info("deleted old backup", "backup", filepath.Base(b.Path))
	}
}
