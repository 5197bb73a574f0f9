package storage

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/mkravets/assistant/pkg/types"
)

// recover is the corruption-recovery chain invoked from Load when JSON
// parsing fails: lenient repair of the raw bytes, then the newest
// backup, then progressively older backups, then give up with an empty
// dataset. The corrupted live file is only overwritten when a backup
// restore succeeds; when every avenue fails it is left in place for
// inspection.
func (s *Store) recover(dataset string, raw []byte) []types.Record {
	s.logger.Warn("attempting recovery of corrupted dataset", "dataset", dataset)

	if records, ok := repairJSON(raw); ok {
		s.logger.Info("recovered via lenient repair", "dataset", dataset, "records", len(records))
		return records
	}

	for _, backup := range s.ListBackups(dataset) {
		data, err := os.ReadFile(backup.Path)
		if err != nil {
			s.logger.Warn("backup unreadable", "path", backup.Path, "error", err)
			continue
		}
		var records []types.Record
		if err := json.Unmarshal(data, &records); err != nil {
			s.logger.Warn("backup also corrupted", "path", backup.Path, "error", err)
			continue
		}
		ts := backup.Timestamp
		if s.RestoreFromBackup(dataset, &ts) {
			s.logger.Info("recovered from backup", "dataset", dataset, "timestamp", ts)
			if records == nil {
				records = []types.Record{}
			}
			return records
		}
	}

	s.logger.Error("all recovery attempts failed", "dataset", dataset)
	return []types.Record{}
}

// repairJSON attempts a best-effort repair of malformed dataset bytes
// by truncating trailing garbage after the final closing bracket.
// It is deliberately conservative: anything it cannot fix falls
// through to the backup chain, which is the authoritative path.
func repairJSON(raw []byte) ([]types.Record, bool) {
	idx := bytes.LastIndexByte(raw, ']')
	if idx < 0 {
		return nil, false
	}
	var records []types.Record
	if err := json.Unmarshal(raw[:idx+1], &records); err != nil {
		return nil, false
	}
	if records == nil {
		records = []types.Record{}
	}
	return records, true
}
