// Package storage provides the file-backed persistence layer: atomic
// JSON dataset writes, timestamped backups with retention, and
// corruption recovery on load.
//
// A Store exclusively owns the files under its base directory:
//
//	<base_dir>/<dataset>.json
//	<base_dir>/backups/<dataset>_<YYYYMMDD_HHMMSS>.json
//	<base_dir>/storage.log
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mkravets/assistant/pkg/types"
)

// ErrSaveFailed wraps any failure to persist a dataset. Callers can
// match it with errors.Is; the message is what the user sees.
var ErrSaveFailed = errors.New("could not save data")

// DefaultKeepCount is the number of backups retained per dataset.
const DefaultKeepCount = 10

const (
	datasetExt    = ".json"
	backupDirName = "backups"
	logFileName   = "storage.log"
)

// Store persists named datasets as pretty-printed JSON arrays.
// It is safe for the single-process, synchronous use the CLI makes of
// it; it is not a concurrent database.
type Store struct {
	baseDir   string
	backupDir string
	keepCount int

	logger  *slog.Logger
	logFile *os.File
}

// Option configures a Store.
type Option func(*Store)

// WithKeepCount overrides the backup retention count.
func WithKeepCount(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.keepCount = n
		}
	}
}

// WithLogger replaces the default storage.log logger. Intended for
// tests and for routing storage events into the application logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// Open creates the base and backup directories if needed and opens the
// append-only operation log.
func Open(baseDir string, opts ...Option) (*Store, error) {
	s := &Store{
		baseDir:   baseDir,
		backupDir: filepath.Join(baseDir, backupDirName),
		keepCount: DefaultKeepCount,
	}

	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directories: %w", err)
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		f, err := os.OpenFile(filepath.Join(baseDir, logFileName),
			os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open storage log: %w", err)
		}
		s.logFile = f
		s.logger = slog.New(slog.NewTextHandler(f, nil))
	}

	return s, nil
}

// Close releases the operation log file handle, if the Store owns one.
func (s *Store) Close() error {
	if s.logFile != nil {
		return s.logFile.Close()
	}
	return nil
}

// BaseDir returns the directory the store owns.
func (s *Store) BaseDir() string { return s.baseDir }

// datasetPath returns the live file path for a dataset name.
func (s *Store) datasetPath(dataset string) string {
	return filepath.Join(s.baseDir, dataset+datasetExt)
}

// Save serializes records and writes them to the dataset file. An
// existing target is backed up first (best effort). The write goes to
// a temp file in the same directory, is fsynced, then atomically
// renamed onto the target, so the target is always either the fully
// old or the fully new content. On failure the previous file is left
// untouched.
func (s *Store) Save(dataset string, records []types.Record) error {
	if records == nil {
		records = []types.Record{}
	}
	target := s.datasetPath(dataset)

	if _, err := os.Stat(target); err == nil {
		// Backup failure must not block the save; it is logged inside.
		s.CreateBackup(dataset)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		s.logger.Error("marshal failed", "dataset", dataset, "error", err)
		return fmt.Errorf("%w: marshal %s: %v", ErrSaveFailed, dataset, err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(target, data, 0o600); err != nil {
		s.logger.Error("save failed", "dataset", dataset, "error", err)
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, dataset, err)
	}

	s.logger.Info("saved dataset", "dataset", dataset, "records", len(records))
	return nil
}

// Load reads a dataset. A missing file is a fresh install, not an
// error: it yields an empty collection. Unparseable content never
// escapes as an error; it is funneled through the recovery chain,
// which worst-case yields an empty collection.
func (s *Store) Load(dataset string) []types.Record {
	data, err := os.ReadFile(s.datasetPath(dataset))
	if os.IsNotExist(err) {
		s.logger.Info("dataset does not exist, returning empty", "dataset", dataset)
		return []types.Record{}
	}
	if err != nil {
		s.logger.Error("load failed", "dataset", dataset, "error", err)
		return []types.Record{}
	}

	var records []types.Record
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Error("corrupted dataset", "dataset", dataset, "error", err)
		return s.recover(dataset, data)
	}
	if records == nil {
		records = []types.Record{}
	}

	s.logger.Info("loaded dataset", "dataset", dataset, "records", len(records))
	return records
}

// writeFileAtomic writes data through a same-directory temp file with
// an fsync before the rename, guaranteeing same-filesystem rename
// semantics. The temp file is removed on any failure.
func writeFileAtomic(target string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(target)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// copyFile copies src to dst, preserving content only. The destination
// is synced before close so a backup is durable once reported created.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("copy: %w", err)
	}
	if err := out.Sync(); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("sync destination: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return fmt.Errorf("close destination: %w", err)
	}
	return nil
}
