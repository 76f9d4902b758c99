package cleaner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/zarraq-dev/windows-scheduled-file-cleaner-script/internal/journal"
)

// Mode selects whether matched files are deleted or only reported.
type Mode string

const (
	// ModeTest reports matches without deleting anything.
	ModeTest Mode = "TEST"
	// ModeLive deletes matched files.
	ModeLive Mode = "LIVE"
)

// ParseMode canonicalizes a configured mode string. Matching is
// case-insensitive; the empty string defaults to TEST.
func ParseMode(raw string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "", string(ModeTest):
		return ModeTest, nil
	case string(ModeLive):
		return ModeLive, nil
	default:
		return "", fmt.Errorf("invalid mode %q (expected TEST or LIVE)", raw)
	}
}

// RunCounters accumulate over one run. They are owned exclusively by the Run
// that produced them and only ever increase.
type RunCounters struct {
	Scanned int
	Matched int
	Deleted int
}

// ErrTargetMissing is returned when the target directory does not exist at
// the precondition check. It is the only error that aborts a run.
var ErrTargetMissing = errors.New("target directory does not exist")

// reportTimestampLayout matches the journal line timestamps so reports and
// records read uniformly.
const reportTimestampLayout = "2006-01-02T15:04:05-07:00"

// Run is the per-run context: configuration, collaborators and counters for
// one cleanup pass. A fresh Run is constructed per invocation; nothing here is
// process-global.
type Run struct {
	TargetDir string
	Patterns  []Pattern
	AgeHours  int
	Mode      Mode

	// Journal receives the run's records. It is contractually fail-safe, so
	// every call site below logs unconditionally.
	Journal *journal.Journal

	// Console mirrors match reports and the final summary for a human
	// operator; it is never machine-parsed.
	Console io.Writer

	// Now is the clock; nil means time.Now.
	Now func() time.Time

	// remove performs the deletion; tests replace it to observe (or forbid)
	// deletion calls. Nil means os.Remove.
	remove func(path string) error
}

// Execute performs one cleanup pass and returns the final counters.
//
// The only returned error is the fatal missing-target precondition (wrapped
// ErrTargetMissing) or a listing failure on an existing target; every other
// failure mode is absorbed per item and the pass continues.
func (r *Run) Execute() (RunCounters, error) {
	now := r.Now
	if now == nil {
		now = time.Now
	}
	if r.remove == nil {
		r.remove = os.Remove
	}
	if r.Console == nil {
		r.Console = io.Discard
	}

	start := now()
	var counters RunCounters

	info, err := os.Stat(r.TargetDir)
	if err != nil || !info.IsDir() {
		r.Journal.Recordf(journal.LevelError, "target directory missing: %s", r.TargetDir)
		return counters, fmt.Errorf("%w: %s", ErrTargetMissing, r.TargetDir)
	}

	records, err := listFiles(r.TargetDir)
	if err != nil {
		r.Journal.Recordf(journal.LevelError, "listing failed: %v", err)
		return counters, err
	}

	cutoff := start.Add(-time.Duration(r.AgeHours) * time.Hour)
	for _, rec := range records {
		counters.Scanned++
		if !Matches(rec, r.Patterns) || !Eligible(rec, cutoff) {
			continue
		}
		counters.Matched++

		report := matchReport(rec)
		r.Journal.Record(journal.LevelInfo, report)
		fmt.Fprintln(r.Console, report)

		if r.Mode != ModeLive {
			continue
		}
		if err := r.remove(rec.FullPath); err != nil {
			// One stubborn file never aborts the pass.
			r.Journal.Recordf(journal.LevelError, "delete failed: %s: %v", rec.FullPath, err)
			continue
		}
		counters.Deleted++
		r.Journal.Recordf(journal.LevelInfo, "deleted %s", rec.FullPath)
	}

	elapsed := now().Sub(start)
	summary := fmt.Sprintf("scanned=%d matched=%d deleted=%d mode=%s",
		counters.Scanned, counters.Matched, counters.Deleted, r.Mode)
	r.Journal.Record(journal.LevelSummary, summary)
	r.Journal.Recordf(journal.LevelInfo, "run duration %s", elapsed)
	fmt.Fprintln(r.Console, summary)
	fmt.Fprintf(r.Console, "run duration %s\n", elapsed)

	return counters, nil
}

// matchReport renders the multi-line report for one matched file.
func matchReport(rec FileRecord) string {
	return fmt.Sprintf("match: %s\n  created:  %s\n  modified: %s\n  accessed: %s",
		rec.FullPath,
		rec.CreationTime.Format(reportTimestampLayout),
		rec.ModTime.Format(reportTimestampLayout),
		rec.AccessTime.Format(reportTimestampLayout))
}
