// Package cleaner implements the selection-and-retention pipeline: listing a
// target directory, matching files against substring+extension patterns and an
// age cutoff, and deleting matches in live mode.
package cleaner

import (
	"os"
	"path/filepath"
	"time"

	"github.com/djherbis/times"
)

// FileRecord is a read-only snapshot of one directory entry, taken once at
// scan time and never re-queried.
type FileRecord struct {
	FullPath  string
	Name      string
	Extension string

	CreationTime time.Time
	ModTime      time.Time
	AccessTime   time.Time
}

// newFileRecord builds a snapshot from a stat result.
//
// Creation time is the file's birth time where the filesystem records one.
// Where it does not (most Linux filesystems through os.FileInfo), the
// modification time stands in, which is the conventional conservative proxy:
// a file cannot have been created after it was last written.
func newFileRecord(dir string, info os.FileInfo) FileRecord {
	ts := times.Get(info)
	rec := FileRecord{
		FullPath:   filepath.Join(dir, info.Name()),
		Name:       info.Name(),
		Extension:  filepath.Ext(info.Name()),
		ModTime:    info.ModTime(),
		AccessTime: ts.AccessTime(),
	}
	if ts.HasBirthTime() {
		rec.CreationTime = ts.BirthTime()
	} else {
		rec.CreationTime = info.ModTime()
	}
	return rec
}
