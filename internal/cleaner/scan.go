package cleaner

import (
	"fmt"
	"os"
	"sort"
)

// listFiles snapshots the direct file entries of dir as FileRecords.
// Subdirectories are skipped, never descended into.
//
// Determinism: records are sorted ascending by creation time, ties broken by
// name. The ordering only makes the report readable; it carries no semantics.
func listFiles(dir string) ([]FileRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	records := make([]FileRecord, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// Entry vanished between ReadDir and stat; it is no longer a
			// candidate.
			continue
		}
		records = append(records, newFileRecord(dir, info))
	}

	sort.Slice(records, func(i, k int) bool {
		if records[i].CreationTime.Equal(records[k].CreationTime) {
			return records[i].Name < records[k].Name
		}
		return records[i].CreationTime.Before(records[k].CreationTime)
	})
	return records, nil
}
