package journal

import (
	"os"
	"path/filepath"
)

// Sweep deletes journal artifacts in this journal's directory whose modified
// time is strictly older than retentionDays before now. Only entries matching
// the artifact naming conventions are considered; anything else in the log
// directory is left alone.
//
// The sweep is best-effort end to end. A failure to remove one artifact (a
// lock held elsewhere, a concurrent delete) is tolerated silently and the
// remaining artifacts are still evaluated. A failure to enumerate the
// directory at all is reported at WARN through the journal itself and the run
// continues without retention cleanup.
func (j *Journal) Sweep(retentionDays int) {
	if j == nil || retentionDays <= 0 {
		return
	}
	entries, err := os.ReadDir(j.dir)
	if err != nil {
		j.Recordf(LevelWarn, "retention sweep skipped, cannot list %s: %v", j.dir, err)
		return
	}

	cutoff := j.now().AddDate(0, 0, -retentionDays)
	for _, entry := range entries {
		if !isArtifactName(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}
		// The artifact currently being written is younger than any sane
		// retention window, so it never removes itself.
		_ = os.Remove(filepath.Join(j.dir, entry.Name()))
	}
}
