package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// manifestName is the metadata file written alongside exported datasets.
const manifestName = "export_manifest.json"

// exportManifest describes an export directory.
type exportManifest struct {
	ExportDate string   `json:"export_date"`
	Files      []string `json:"files"`
	Version    string   `json:"version"`
}

// Export copies every dataset file to dir and writes a manifest.
func (s *Store) Export(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.logger.Error("export failed", "dir", dir, "error", err)
		return fmt.Errorf("create export dir: %w", err)
	}

	files, err := s.datasetFiles(s.baseDir)
	if err != nil {
		s.logger.Error("export failed", "dir", dir, "error", err)
		return err
	}

	manifest := exportManifest{
		ExportDate: time.Now().Format(time.RFC3339),
		Version:    "1.0.0",
	}
	for _, src := range files {
		name := filepath.Base(src)
		if err := copyFile(src, filepath.Join(dir, name)); err != nil {
			s.logger.Error("export copy failed", "file", name, "error", err)
			return fmt.Errorf("export %s: %w", name, err)
		}
		manifest.Files = append(manifest.Files, name)
		s.logger.Info("exported dataset file", "file", name)
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, manifestName), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	s.logger.Info("export completed", "dir", dir, "files", len(manifest.Files))
	return nil
}

// Import copies dataset files from dir into the base directory. The
// current datasets are backed up first, and each incoming file must be
// valid JSON before it replaces anything.
func (s *Store) Import(dir string) error {
	if _, err := os.Stat(dir); err != nil {
		s.logger.Error("import path missing", "dir", dir, "error", err)
		return fmt.Errorf("import path: %w", err)
	}

	current, err := s.datasetFiles(s.baseDir)
	if err != nil {
		return err
	}
	for _, f := range current {
		dataset := strings.TrimSuffix(filepath.Base(f), datasetExt)
		s.CreateBackup(dataset)
	}

	incoming, err := s.datasetFiles(dir)
	if err != nil {
		return err
	}
	for _, src := range incoming {
		name := filepath.Base(src)
		if name == manifestName {
			continue
		}
		data, err := os.ReadFile(src)
		if err != nil {
			s.logger.Error("import read failed", "file", name, "error", err)
			return fmt.Errorf("import %s: %w", name, err)
		}
		if !json.Valid(data) {
			s.logger.Error("import rejected invalid JSON", "file", name)
			return fmt.Errorf("import %s: not valid JSON", name)
		}
		if err := writeFileAtomic(filepath.Join(s.baseDir, name), data, 0o600); err != nil {
			s.logger.Error("import write failed", "file", name, "error", err)
			return fmt.Errorf("import %s: %w", name, err)
		}
		s.logger.Info("imported dataset file", "file", name)
	}

	s.logger.Info("import completed", "dir", dir)
	return nil
}

// datasetFiles lists the *.json files directly under dir.
func (s *Store) datasetFiles(dir string) ([]string, error) {
	// filepath.Glob returns lexically sorted paths.
	files, err := filepath.Glob(filepath.Join(dir, "*"+datasetExt))
	if err != nil {
		return nil, fmt.Errorf("glob datasets: %w", err)
	}
	return files, nil
}
